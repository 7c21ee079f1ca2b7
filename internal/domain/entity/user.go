package entity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User represents a registered account in the system
type User struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Username       string    `bson:"username" json:"username"`
	FirstName      string    `bson:"first_name" json:"first_name"`
	LastName       string    `bson:"last_name" json:"last_name"`
	Email          string    `bson:"email" json:"email"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	Role           UserRole  `bson:"role" json:"role"`
	IsActive       bool      `bson:"is_active" json:"is_active"`
	ProfilePicture *string   `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	GoogleID       *string   `bson:"google_id,omitempty" json:"-"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleUser  UserRole = "user"
)

func DefaultRole() UserRole {
	return UserRoleUser
}

// Claims is the payload carried by an access token.
type Claims struct {
	UserID string
	jwt.RegisteredClaims
}

// GoogleProfile is what the OAuth provider hands back after a successful
// external authentication.
type GoogleProfile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"name"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
}
