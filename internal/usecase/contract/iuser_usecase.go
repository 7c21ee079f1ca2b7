package usecasecontract

import (
	"context"

	"github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"
)

// IUserUseCase defines the interface for user-account operations.
type IUserUseCase interface {
	Register(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	Logout(ctx context.Context, token string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	SetProfilePicture(ctx context.Context, userID, localPath string) (string, error)
	ClearProfilePicture(ctx context.Context, userID string) error
	LoginWithOAuth(ctx context.Context, profile *entity.GoogleProfile) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	UpdateUser(ctx context.Context, userID, firstName, lastName, email string) (*entity.User, error)
	DeleteUser(ctx context.Context, userID string) (*entity.User, error)
}
