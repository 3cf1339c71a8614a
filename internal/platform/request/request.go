// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and body decoding so that
malformed input always surfaces as a VALIDATION_ERROR.
*/
package requestutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/uuid"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 1 << 20

var idMessage = fmt.Sprintf("Must be an integer between 1 and %d", validate.MaxInteger)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns validate.ErrInvalidJSON if decoding fails.
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)

	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID parses a SERIAL primary key from a named URL parameter.
Values beyond the INTEGER column range are rejected before reaching storage.
*/
func IntID(request *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(request, name))
	if err != nil || !validate.ValidID(id) {
		return 0, validate.FieldError(name, idMessage)
	}
	return id, nil
}

/*
UUID reads a UUID primary key from a named URL parameter.
*/
func UUID(request *http.Request, name string) (string, error) {
	id := chi.URLParam(request, name)
	if !uuid.Valid(id) {
		return "", validate.FieldError(name, "Must be a valid UUID")
	}
	return id, nil
}

/*
QueryInt parses an optional SERIAL key from the query string.
It returns nil when the parameter is absent.
*/
func QueryInt(request *http.Request, name string) (*int, error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || !validate.ValidID(value) {
		return nil, validate.FieldError(name, idMessage)
	}
	return &value, nil
}
