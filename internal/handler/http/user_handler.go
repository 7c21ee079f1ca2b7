package http

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nebiyou-tadesse/go-user-service/internal/handler/http/dto"
	"github.com/nebiyou-tadesse/go-user-service/internal/handler/http/middleware"
	usecasecontract "github.com/nebiyou-tadesse/go-user-service/internal/usecase/contract"
)

// UserHandlerInterface defines the methods for user handler to allow interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	CreateUser(*gin.Context)
	Login(*gin.Context)
	Logout(*gin.Context)
	ChangePassword(*gin.Context)
	UploadProfilePicture(*gin.Context)
	DeleteProfilePicture(*gin.Context)
	GetUser(*gin.Context)
	GetUserByEmail(*gin.Context)
	ListUsers(*gin.Context)
	UpdateUser(*gin.Context)
	DeleteUser(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// CreateUser handles user registration (signup)
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Register(c.Request.Context(), req.Username, req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(*user),
		Token: token,
	})
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(*user),
		Token: token,
	})
}

// Logout revokes the bearer token the request was authenticated with.
func (h *UserHandler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextAccessTokenKey)
	if err := h.userUsecase.Logout(c.Request.Context(), token); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Logout successful")
}

// ChangePassword handles a password change for the authenticated user.
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	var req dto.ChangePasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.ChangePassword(c.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Password changed successfully")
}

// UploadProfilePicture accepts a multipart image, stages it in a temp file,
// and hands it to the usecase. The temp copy is removed whether the upload
// succeeds or not.
func (h *UserHandler) UploadProfilePicture(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		ErrorHandler(c, http.StatusBadRequest, "No file uploaded")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		ErrorHandler(c, http.StatusUnsupportedMediaType, "Only image files are allowed")
		return
	}

	localPath := filepath.Join(os.TempDir(), fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveUploadedFile(fileHeader, localPath); err != nil {
		ErrorHandler(c, http.StatusInternalServerError, "Server error")
		return
	}
	defer os.Remove(localPath)

	secureURL, err := h.userUsecase.SetProfilePicture(c.Request.Context(), userID, localPath)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}

	SuccessHandler(c, http.StatusOK, gin.H{
		"message":         "Profile picture updated successfully",
		"profile_picture": secureURL,
	})
}

// DeleteProfilePicture removes the hosted image and clears the stored reference.
func (h *UserHandler) DeleteProfilePicture(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserIDKey)

	if err := h.userUsecase.ClearProfilePicture(c.Request.Context(), userID); err != nil {
		DomainErrorHandler(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Profile picture deleted successfully")
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetUserByEmail handles retrieving user by email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.userUsecase.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// ListUsers handles retrieving every user
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUsecase.ListUsers(c.Request.Context())
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponses(users))
}

// UpdateUser handles updating a user's profile fields
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updated, err := h.userUsecase.UpdateUser(c.Request.Context(), c.Param("id"), req.FirstName, req.LastName, req.Email)
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updated))
}

// DeleteUser handles deleting a user record
func (h *UserHandler) DeleteUser(c *gin.Context) {
	deleted, err := h.userUsecase.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*deleted))
}
