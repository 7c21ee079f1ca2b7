package mocks

import (
	"context"

	"github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"
	usecasecontract "github.com/nebiyou-tadesse/go-user-service/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the IUserUseCase interface
type MockUserUsecase struct {
	// Errors returned when set
	RegisterErr             error
	LoginErr                error
	LogoutErr               error
	ChangePasswordErr       error
	SetProfilePictureErr    error
	ClearProfilePictureErr  error
	LoginWithOAuthErr       error
	GetUserByIDErr          error
	GetUserByEmailErr       error
	ListUsersErr            error
	UpdateUserErr           error
	DeleteUserErr           error

	// Return values
	MockUser       entity.User
	MockToken      string
	MockPictureURL string

	// Call recording
	RevokedTokens []string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:        "mock-user-id",
			Username:  "testuser",
			FirstName: "Test",
			LastName:  "User",
			Email:     "test@example.com",
			Role:      entity.UserRoleUser,
			IsActive:  true,
		},
		MockToken:      "mock_token",
		MockPictureURL: "https://res.cloudinary.com/demo/image/upload/v1/profile_pictures/mock.jpg",
	}
}

func (m *MockUserUsecase) Register(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, string, error) {
	if m.RegisterErr != nil {
		return nil, "", m.RegisterErr
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.LoginErr != nil {
		return nil, "", m.LoginErr
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) Logout(ctx context.Context, token string) error {
	if m.LogoutErr != nil {
		return m.LogoutErr
	}
	m.RevokedTokens = append(m.RevokedTokens, token)
	return nil
}

func (m *MockUserUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return m.ChangePasswordErr
}

func (m *MockUserUsecase) SetProfilePicture(ctx context.Context, userID, localPath string) (string, error) {
	if m.SetProfilePictureErr != nil {
		return "", m.SetProfilePictureErr
	}
	return m.MockPictureURL, nil
}

func (m *MockUserUsecase) ClearProfilePicture(ctx context.Context, userID string) error {
	return m.ClearProfilePictureErr
}

func (m *MockUserUsecase) LoginWithOAuth(ctx context.Context, profile *entity.GoogleProfile) (*entity.User, string, error) {
	if m.LoginWithOAuthErr != nil {
		return nil, "", m.LoginWithOAuthErr
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.GetUserByIDErr != nil {
		return nil, m.GetUserByIDErr
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.GetUserByEmailErr != nil {
		return nil, m.GetUserByEmailErr
	}
	return &m.MockUser, nil
}

func (m *MockUserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	if m.ListUsersErr != nil {
		return nil, m.ListUsersErr
	}
	return []*entity.User{&m.MockUser}, nil
}

func (m *MockUserUsecase) UpdateUser(ctx context.Context, userID, firstName, lastName, email string) (*entity.User, error) {
	if m.UpdateUserErr != nil {
		return nil, m.UpdateUserErr
	}
	user := m.MockUser
	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if email != "" {
		user.Email = email
	}
	return &user, nil
}

func (m *MockUserUsecase) DeleteUser(ctx context.Context, userID string) (*entity.User, error) {
	if m.DeleteUserErr != nil {
		return nil, m.DeleteUserErr
	}
	return &m.MockUser, nil
}
