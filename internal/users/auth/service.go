// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/constants"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/validate"
	"github.com/taibuivan/epicdb/pkg/uuid"
)

// # Contracts & Types

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	logger         *slog.Logger
}

func NewService(userRepo UserRepository, tokenProv TokenProvider, logger *slog.Logger) *Service {
	return &Service{userRepository: userRepo, tokenProvider: tokenProv, logger: logger}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

/*
Register validates, hashes, and persists a brand new member account.

Returns:
  - *User: Created entity
  - err: VALIDATION_ERROR, or CONFLICT if the username or email exists
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	input.Username = strings.TrimSpace(input.Username)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	validator := &validate.Validator{}
	validator.
		Required(FieldUsername, input.Username).
		MinLen(FieldUsername, input.Username, MinUsernameLength).
		MaxLen(FieldUsername, input.Username, MaxUsernameLength).
		Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		MaxLen(FieldEmail, input.Email, MaxEmailLength).
		MinLen(FieldPassword, input.Password, MinPasswordLength).
		Custom(FieldPassword, len(input.Password) > MaxPasswordLength, fmt.Sprintf("Maximum %d bytes", MaxPasswordLength)).
		MaxLen(FieldFirstName, input.FirstName, MaxNameLength).
		MaxLen(FieldLastName, input.LastName, MaxNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Friendly messages first; the UNIQUE constraints still catch races.
	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if _, err := service.userRepository.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := &User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         sec.RoleMember,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_registered", slog.String("user_id", user.ID), slog.String("username", user.Username))
	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string `json:"login"` // username or email
	Password string `json:"password"`
}

// LoginResult is a successfully issued access token.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	User        *User  `json:"user"`
}

/*
Login validates user credentials and issues an RS256 access token.

Unknown accounts and wrong passwords fail with the same UNAUTHORIZED error.
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {
	validator := &validate.Validator{}
	validator.Required(FieldLogin, input.Login).Required(FieldPassword, input.Password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	login := strings.TrimSpace(input.Login)
	user, err := service.userRepository.FindByEmail(context, strings.ToLower(login))
	if err != nil {
		user, err = service.userRepository.FindByUsername(context, login)
	}
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.logger.WarnContext(context, "login_failed", slog.String("user_id", user.ID))
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role), constants.AccessTokenTTL)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_token_generation_failed: %w", err))
	}

	service.logger.InfoContext(context, "user_logged_in", slog.String("user_id", user.ID))
	return &LoginResult{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int(constants.AccessTokenTTL.Seconds()),
		User:        user,
	}, nil
}
