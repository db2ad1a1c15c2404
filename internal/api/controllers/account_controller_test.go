package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

func setupAccountRouter(svc *MockAccountService) *gin.Engine {
	r := gin.New()
	ctrl := NewAccountController(svc)
	r.POST("/auth/register", ctrl.Register)
	r.POST("/auth/login", ctrl.Login)
	authed := r.Group("/", withUser("user-1"))
	authed.GET("/profile", ctrl.GetProfile)
	authed.PUT("/profile", ctrl.UpdateProfile)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestAccountController_Register(t *testing.T) {
	svc := &MockAccountService{}
	svc.On("Register", mock.Anything, request_models.SignUpRequest{
		Username: "traveler", Email: "t@example.com", Password: "secret1",
	}).Return(nil)

	w := doJSON(setupAccountRouter(svc), http.MethodPost, "/auth/register",
		`{"username":"traveler","email":"t@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Registration successful! Please login.", decode(t, w).Message)
}

func TestAccountController_Register_Errors(t *testing.T) {
	tests := []struct {
		name     string
		svcErr   error
		wantCode int
		wantMsg  string
	}{
		{"duplicate email", utils.ErrEmailAlreadyExists, http.StatusBadRequest, "Email already registered"},
		{"duplicate username", utils.ErrUsernameTaken, http.StatusBadRequest, "Username already taken"},
		{"field errors", utils.NewValidationError(map[string]string{"email": "Please enter a valid email address"}), http.StatusBadRequest, "Validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAccountService{}
			svc.On("Register", mock.Anything, mock.Anything).Return(tt.svcErr)

			w := doJSON(setupAccountRouter(svc), http.MethodPost, "/auth/register", `{"username":"x"}`)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantMsg, decode(t, w).Message)
		})
	}
}

func TestAccountController_Register_MalformedBody(t *testing.T) {
	svc := &MockAccountService{}

	w := doJSON(setupAccountRouter(svc), http.MethodPost, "/auth/register", `{"username":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", decode(t, w).Message)
	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAccountController_Login(t *testing.T) {
	svc := &MockAccountService{}
	svc.On("Login", mock.Anything, request_models.LoginRequest{Email: "t@example.com", Password: "secret1"}).
		Return(&response_models.LoginResponse{
			Token: "signed.jwt",
			User:  response_models.AccountSummary{ID: "user-1", Username: "traveler", Email: "t@example.com"},
		}, nil)

	w := doJSON(setupAccountRouter(svc), http.MethodPost, "/auth/login", `{"email":"t@example.com","password":"secret1"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"status": "success",
		"code": 200,
		"message": "Login successful",
		"data": {"token": "signed.jwt", "user": {"id": "user-1", "username": "traveler", "email": "t@example.com"}}
	}`, w.Body.String())
}

func TestAccountController_Login_MissingFields(t *testing.T) {
	svc := &MockAccountService{}

	w := doJSON(setupAccountRouter(svc), http.MethodPost, "/auth/login", `{"email":"t@example.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation failed", body.Message)
	assert.Equal(t, map[string]interface{}{
		"errors": map[string]interface{}{"password": "password is required"},
	}, body.Data)
}

func TestAccountController_Login_BadCredentials(t *testing.T) {
	svc := &MockAccountService{}
	svc.On("Login", mock.Anything, mock.Anything).Return(nil, utils.ErrInvalidCredentials)

	w := doJSON(setupAccountRouter(svc), http.MethodPost, "/auth/login", `{"email":"t@example.com","password":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email or password", decode(t, w).Message)
}

func TestAccountController_Profile(t *testing.T) {
	svc := &MockAccountService{}
	profile := &response_models.ProfileResponse{ID: "user-1", Username: "traveler", Preferences: []string{"food"}}
	svc.On("GetProfile", mock.Anything, "user-1").Return(profile, nil)
	svc.On("UpdateProfile", mock.Anything, "user-1", request_models.UpdateProfileRequest{
		Phone: "123", Preferences: "food, museums",
	}).Return(profile, nil)
	r := setupAccountRouter(svc)

	w := doJSON(r, http.MethodGet, "/profile", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPut, "/profile", `{"phone":"123","preferences":["food","museums"]}`)
	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
