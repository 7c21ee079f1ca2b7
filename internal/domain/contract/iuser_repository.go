package contract

import (
	"context"

	"github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"
)

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByEmailExcludingID retrieves a user holding the given email whose
	// ID differs from id. Used for uniqueness checks on update.
	GetUserByEmailExcludingID(ctx context.Context, id, email string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// UpdateUserPassword updates user's password by ID with the provided hashed password.
	UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error
	// ListUsers retrieves every user record.
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// DeleteUser removes a user by ID.
	DeleteUser(ctx context.Context, id string) error
}
