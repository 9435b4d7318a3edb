package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	domainerrors "stockroom/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountHandler_Signup(t *testing.T) {
	uc := &stubAccountUsecase{}
	h := NewAccountHandler(uc, newTestLogger())

	c, rec := newTestContext(http.MethodPost, "/signup", `{"name":"Alice","username":"alice","password":"secret"}`)

	require.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User registered successfully")

	require.NotNil(t, uc.lastSignup)
	assert.Equal(t, "alice", uc.lastSignup.Username)
	// The password hash must never leak into the response body.
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestAccountHandler_Signup_MissingFields(t *testing.T) {
	h := NewAccountHandler(&stubAccountUsecase{}, newTestLogger())

	c, _ := newTestContext(http.MethodPost, "/signup", `{"username":"alice"}`)

	err := h.Signup(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestAccountHandler_Signup_DuplicateUsername(t *testing.T) {
	uc := &stubAccountUsecase{signupErr: domainerrors.ErrUserAlreadyExists}
	h := NewAccountHandler(uc, newTestLogger())

	c, _ := newTestContext(http.MethodPost, "/signup", `{"name":"Alice","username":"alice","password":"secret"}`)

	err := h.Signup(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAccountHandler_Login(t *testing.T) {
	uc := &stubAccountUsecase{token: "issued-access-token"}
	h := NewAccountHandler(uc, newTestLogger())

	c, rec := newTestContext(http.MethodPost, "/login", `{"username":"alice","password":"secret"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "issued-access-token", body.Data.AccessToken)
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	uc := &stubAccountUsecase{loginErr: domainerrors.ErrInvalidCredentials}
	h := NewAccountHandler(uc, newTestLogger())

	c, _ := newTestContext(http.MethodPost, "/login", `{"username":"alice","password":"wrong"}`)

	err := h.Login(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountHandler_Login_BadJSON(t *testing.T) {
	h := NewAccountHandler(&stubAccountUsecase{}, newTestLogger())

	c, rec := newTestContext(http.MethodPost, "/login", `{"username":`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
