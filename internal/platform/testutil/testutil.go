// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package testutil holds helpers shared by handler and service tests.
package testutil

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/platform/ctxutil"
	"github.com/taibuivan/epicdb/internal/platform/sec"
)

// UserID is the account ID carried by [AsUser] claims.
const UserID = "0190a3c2-6f1e-7cc0-9a8e-3b1f2d4c5e6f"

// Logger returns a logger that drops every record.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// AsUser returns a copy of request authenticated with the given role.
func AsUser(request *http.Request, role sec.UserRole) *http.Request {
	claims := &sec.AuthClaims{UserID: UserID, Username: "tester", Role: string(role)}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

// Do sends a request with an optional JSON body through handler.
func Do(handler http.Handler, method, target, body string, role sec.UserRole) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, target, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	if role != "" {
		request = AsUser(request, role)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// Data decodes the "data" member of a success envelope.
func Data[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope), recorder.Body.String())
	return envelope.Data
}

// ErrorCode decodes the "code" member of an error envelope.
func ErrorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope), recorder.Body.String())
	return envelope.Code
}
