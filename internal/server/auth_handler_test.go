package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sproutapp/carbon-coach/internal/config"
	"github.com/sproutapp/carbon-coach/internal/types"
)

func testAuthHandler(t *testing.T) *AuthHandler {
	t.Helper()
	userService, _ := testUserService(t)
	jwtService := NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-key",
		ExpirationHours: 24,
	})
	return NewAuthHandler(userService, jwtService)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestAuthHandler_Register(t *testing.T) {
	handler := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name:     "Maya",
		Email:    "maya@example.com",
		Password: "hunter2hunter2",
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "maya@example.com", resp.User.Email)
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	handler := testAuthHandler(t)

	req := httptest.NewRequest("POST", "/auth/register", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_ValidationFailures(t *testing.T) {
	cases := []struct {
		name string
		req  types.CreateUserRequest
	}{
		{"missing name", types.CreateUserRequest{Email: "a@b.com", Password: "hunter2hunter2"}},
		{"bad email", types.CreateUserRequest{Name: "Maya", Email: "not-an-email", Password: "hunter2hunter2"}},
		{"short password", types.CreateUserRequest{Name: "Maya", Email: "a@b.com", Password: "short"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := testAuthHandler(t)
			rec := postJSON(t, handler.Register, tc.req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	handler := testAuthHandler(t)
	req := types.CreateUserRequest{Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2"}

	rec := postJSON(t, handler.Register, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Register, req)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, types.LoginRequest{
		Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	handler := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, handler.Login, types.LoginRequest{
		Email: "maya@example.com", Password: "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	handler := testAuthHandler(t)

	rec := postJSON(t, handler.Register, types.CreateUserRequest{
		Name: "Maya", Email: "maya@example.com", Password: "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var registered types.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))

	body, err := json.Marshal(types.UpdatePasswordRequest{
		CurrentPassword: "hunter2hunter2",
		NewPassword:     "newpassword123",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("PUT", "/auth/password", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	handler.UpdatePasswordWithUserID(rec, req, registered.User.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(t, handler.Login, types.LoginRequest{
		Email: "maya@example.com", Password: "newpassword123",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
