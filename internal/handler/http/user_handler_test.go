package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"
	handler "github.com/nebiyou-tadesse/go-user-service/internal/handler/http"
	dto "github.com/nebiyou-tadesse/go-user-service/internal/handler/http/dto"
	"github.com/nebiyou-tadesse/go-user-service/internal/handler/http/middleware"
	mocks "github.com/nebiyou-tadesse/go-user-service/internal/handler/http/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// setupRouter wires the handler behind a stub that injects an authenticated
// identity, standing in for the access-control middleware.
func setupRouter(h handler.UserHandlerInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/register", h.CreateUser)
	r.POST("/login", h.Login)

	authed := r.Group("/")
	authed.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, "mock-user-id")
		c.Set(middleware.ContextAccessTokenKey, "issued-token")
	})
	authed.POST("/logout", h.Logout)
	authed.POST("/change-password", h.ChangePassword)
	authed.POST("/delete-profile", h.DeleteProfilePicture)
	authed.GET("/users", h.ListUsers)
	authed.GET("/users/email/:email", h.GetUserByEmail)
	authed.GET("/users/:id", h.GetUser)
	authed.PUT("/users/:id", h.UpdateUser)
	authed.DELETE("/users/:id", h.DeleteUser)
	return r
}

func postJSON(r *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/register", dto.CreateUserRequest{
		Username:  "testuser",
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
		Password:  "secret1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_token")
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestCreateUser_MissingFields(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	// FirstName and LastName omitted intentionally
	w := postJSON(r, "/register", dto.CreateUserRequest{
		Username: "testuser",
		Email:    "test@example.com",
		Password: "secret1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'FirstName' failed on the 'required' tag")
	assert.Contains(t, w.Body.String(), "Field validation for 'LastName' failed on the 'required' tag")
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.RegisterErr = entity.ErrDuplicateEmail
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/register", dto.CreateUserRequest{
		Username:  "testuser",
		FirstName: "Test",
		LastName:  "User",
		Email:     "a@x.com",
		Password:  "secret1",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already exists")
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "secret1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_token")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.LoginErr = entity.ErrInvalidCredentials
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/login", dto.LoginRequest{
		Email:    "a@x.com",
		Password: "wrongpass",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestLogout(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logout successful")
	assert.Equal(t, []string{"issued-token"}, mockUsecase.RevokedTokens)
}

func TestChangePassword(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/change-password", dto.ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "secret2",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password changed successfully")
}

func TestChangePassword_TooShort(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/change-password", dto.ChangePasswordRequest{
		CurrentPassword: "secret1",
		NewPassword:     "short",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'NewPassword' failed on the 'min' tag")
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ChangePasswordErr = entity.ErrInvalidCredentials
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/change-password", dto.ChangePasswordRequest{
		CurrentPassword: "wrongpass",
		NewPassword:     "secret2",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestDeleteProfilePicture_NoPicture(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.ClearProfilePictureErr = entity.ErrNotFound
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := postJSON(r, "/delete-profile", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/mock-user-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestGetUser_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.GetUserByIDErr = entity.ErrNotFound
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not found")
}

func TestGetUserByEmail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/email/test@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
}

func TestListUsers(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "testuser")
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.UpdateUserErr = entity.ErrDuplicateEmail
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	body, _ := json.Marshal(dto.UpdateUserRequest{Email: "taken@example.com"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/users/mock-user-id", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email already exists")
}

func TestDeleteUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupRouter(handler.NewUserHandler(mockUsecase))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/users/mock-user-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-user-id")
}
