// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/epicdb/internal/platform/apperr"
	"github.com/taibuivan/epicdb/internal/platform/dberr"
	"github.com/taibuivan/epicdb/internal/platform/sec"
	"github.com/taibuivan/epicdb/internal/platform/testutil"
	"github.com/taibuivan/epicdb/internal/users/auth"
)

type memoryUserRepository struct {
	users []*auth.User
}

func (m *memoryUserRepository) find(match func(*auth.User) bool) (*auth.User, error) {
	for _, u := range m.users {
		if match(u) {
			return u, nil
		}
	}
	return nil, dberr.ErrNotFound
}

func (m *memoryUserRepository) FindByID(_ context.Context, id string) (*auth.User, error) {
	return m.find(func(u *auth.User) bool { return u.ID == id })
}

func (m *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	return m.find(func(u *auth.User) bool { return u.Email == email })
}

func (m *memoryUserRepository) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	return m.find(func(u *auth.User) bool { return u.Username == username })
}

func (m *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	m.users = append(m.users, user)
	return nil
}

func newService(t *testing.T) (*auth.Service, *sec.TokenService) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tokens := sec.NewTokenServiceFromKey(key, &key.PublicKey, "epicdb")
	return auth.NewService(&memoryUserRepository{}, tokens, testutil.Logger()), tokens
}

var herodotus = auth.RegisterInput{
	Username: "herodotus",
	Email:    "Herodotus@Halicarnassus.gr",
	Password: "histories-430bc",
}

/*
TestRegister_HashesAndNormalises stores a bcrypt hash and a lowercase email.
*/
func TestRegister_HashesAndNormalises(t *testing.T) {
	service, _ := newService(t)

	user, err := service.Register(context.Background(), herodotus)
	require.NoError(t, err)

	assert.Equal(t, "herodotus@halicarnassus.gr", user.Email)
	assert.Equal(t, sec.RoleMember, user.Role)
	assert.NotEqual(t, herodotus.Password, user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash(herodotus.Password, user.PasswordHash))

	_, err = service.Register(context.Background(), herodotus)
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

/*
TestRegister_Validation rejects short passwords and malformed emails.
*/
func TestRegister_Validation(t *testing.T) {
	service, _ := newService(t)

	_, err := service.Register(context.Background(), auth.RegisterInput{Username: "hx", Email: "nope", Password: "short"})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}

/*
TestLogin_IssuesToken accepts username or email and hides which one failed.
*/
func TestLogin_IssuesToken(t *testing.T) {
	service, tokens := newService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, herodotus)
	require.NoError(t, err)

	for _, login := range []string{"herodotus", "HERODOTUS@halicarnassus.gr"} {
		result, err := service.Login(ctx, auth.LoginInput{Login: login, Password: herodotus.Password})
		require.NoError(t, err, login)

		claims, err := tokens.VerifyToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
		assert.Equal(t, string(sec.RoleMember), claims.Role)
	}

	_, wrongPassword := service.Login(ctx, auth.LoginInput{Login: "herodotus", Password: "wrong-password"})
	_, unknownUser := service.Login(ctx, auth.LoginInput{Login: "thucydides", Password: "wrong-password"})
	assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	assert.True(t, apperr.HasCode(unknownUser, apperr.CodeUnauthorized))
}

/*
TestHandler_AuthRoutes never serialises the password hash.
*/
func TestHandler_AuthRoutes(t *testing.T) {
	service, _ := newService(t)
	routes := auth.NewHandler(service).Routes()

	body := `{"username":"sappho","email":"sappho@lesbos.gr","password":"fragments-31"}`
	rec := testutil.Do(routes, http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	rec = testutil.Do(routes, http.MethodPost, "/login", `{"login":"sappho","password":"fragments-31"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, testutil.Data[auth.LoginResult](t, rec).AccessToken)
}
