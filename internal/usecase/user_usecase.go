package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nebiyou-tadesse/go-user-service/internal/domain/contract"
	"github.com/nebiyou-tadesse/go-user-service/internal/domain/entity"
	usecasecontract "github.com/nebiyou-tadesse/go-user-service/internal/usecase/contract"
)

const minPasswordLength = 6

// UserUsecase implements the IUserUseCase interface. It orchestrates the
// credential store, password hasher, token service, revocation registry and
// media host.
type UserUsecase struct {
	userRepo      contract.IUserRepository
	hasher        contract.IHasher
	jwtService    JWTService
	blacklist     contract.ITokenBlacklist
	mediaStorage  contract.IMediaStorage
	logger        usecasecontract.IAppLogger
	config        usecasecontract.IConfigProvider
	validator     usecasecontract.IValidator
	uuidGenerator contract.IUUIDGenerator
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	jwtService JWTService,
	blacklist contract.ITokenBlacklist,
	mediaStorage contract.IMediaStorage,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
	uuidGenerator contract.IUUIDGenerator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:      userRepo,
		hasher:        hasher,
		jwtService:    jwtService,
		blacklist:     blacklist,
		mediaStorage:  mediaStorage,
		logger:        logger,
		config:        cfg,
		validator:     validator,
		uuidGenerator: uuidGenerator,
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// Register creates a new local account and issues a bearer token for it.
func (uc *UserUsecase) Register(ctx context.Context, username, firstName, lastName, email, password string) (*entity.User, string, error) {
	if username == "" || firstName == "" || lastName == "" || email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: all fields are required", entity.ErrValidation)
	}
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, "", fmt.Errorf("%w: invalid email format", entity.ErrValidation)
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return nil, "", fmt.Errorf("%w: %v", entity.ErrValidation, err)
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	if existing != nil {
		return nil, "", entity.ErrDuplicateEmail
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uc.uuidGenerator.NewUUID(),
		Username:     username,
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.DefaultRole(),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, "", entity.ErrDuplicateEmail
		}
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate access token for user %s: %v", user.ID, err)
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	return user, token, nil
}

// Login verifies the credentials and issues a bearer token. An unknown email
// and a wrong password produce the identical error so callers cannot
// enumerate accounts.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, "", entity.ErrInvalidCredentials
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate access token: %v", err)
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	return user, token, nil
}

// Logout records the token in the revocation registry. The registry entry
// lives exactly as long as the token itself would have; a token that no
// longer parses is still revoked for a full token lifetime so the operation
// stays idempotent.
func (uc *UserUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: no token provided", entity.ErrValidation)
	}

	expiresAt := time.Now().Add(uc.config.GetAccessTokenExpiry())
	if claims, err := uc.jwtService.ParseAccessToken(token); err == nil && claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	if err := uc.blacklist.Revoke(ctx, token, expiresAt); err != nil {
		uc.logger.Errorf("failed to revoke token: %v", err)
		return fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return nil
}

// ChangePassword verifies the current password and persists a new hash.
func (uc *UserUsecase) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return fmt.Errorf("%w: current and new password are required", entity.ErrValidation)
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: new password must be at least %d characters long", entity.ErrValidation, minPasswordLength)
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user for password change: %v", err)
		return fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	if err := uc.hasher.ComparePasswordHash(currentPassword, user.PasswordHash); err != nil {
		return entity.ErrInvalidCredentials
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash new password: %v", err)
		return fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	if err := uc.userRepo.UpdateUserPassword(ctx, user.ID, hashedPassword); err != nil {
		uc.logger.Errorf("failed to update password for user %s: %v", user.ID, err)
		return fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return nil
}

// SetProfilePicture uploads the local file to the media host and persists the
// returned secure URL. The caller owns the local file and removes it
// regardless of the outcome.
func (uc *UserUsecase) SetProfilePicture(ctx context.Context, userID, localPath string) (string, error) {
	if localPath == "" {
		return "", fmt.Errorf("%w: no file uploaded", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user for picture upload: %v", err)
		return "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	media, err := uc.mediaStorage.UploadImage(ctx, localPath, uc.config.GetUploadFolder())
	if err != nil {
		uc.logger.Errorf("failed to upload profile picture for user %s: %v", user.ID, err)
		return "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	user.ProfilePicture = &media.SecureURL
	if _, err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to persist profile picture for user %s: %v", user.ID, err)
		return "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return media.SecureURL, nil
}

// ClearProfilePicture asks the media host to delete the hosted image and then
// clears the stored reference. A media-host failure aborts the clear.
func (uc *UserUsecase) ClearProfilePicture(ctx context.Context, userID string) error {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user for picture delete: %v", err)
		return fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	if user.ProfilePicture == nil {
		return fmt.Errorf("%w: no profile picture to delete", entity.ErrNotFound)
	}

	publicID := uc.mediaStorage.PublicIDFromURL(*user.ProfilePicture)
	if err := uc.mediaStorage.DeleteImage(ctx, publicID); err != nil {
		uc.logger.Errorf("failed to delete profile picture %s for user %s: %v", publicID, user.ID, err)
		return fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	user.ProfilePicture = nil
	if _, err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to clear profile picture for user %s: %v", user.ID, err)
		return fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return nil
}

// LoginWithOAuth logs in (or first creates) the account matching an external
// profile's email. Accounts created here carry no local password.
func (uc *UserUsecase) LoginWithOAuth(ctx context.Context, profile *entity.GoogleProfile) (*entity.User, string, error) {
	if profile == nil || profile.Email == "" {
		return nil, "", fmt.Errorf("%w: external profile has no email", entity.ErrValidation)
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, profile.Email)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	if user == nil {
		username := profile.DisplayName
		if username == "" {
			username = profile.Email
		}
		googleID := profile.ID
		now := time.Now()
		user = &entity.User{
			ID:        uc.uuidGenerator.NewUUID(),
			Username:  username,
			FirstName: profile.GivenName,
			LastName:  profile.FamilyName,
			Email:     profile.Email,
			Role:      entity.DefaultRole(),
			IsActive:  true,
			GoogleID:  &googleID,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.userRepo.CreateUser(ctx, user); err != nil {
			uc.logger.Errorf("failed to create user from OAuth profile: %v", err)
			return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
		}
	}

	token, err := uc.jwtService.GenerateAccessToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate access token for OAuth user: %v", err)
		return nil, "", fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	return user, token, nil
}

// GetUserByID retrieves a single user.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user by ID: %v", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return user, nil
}

// GetUserByEmail retrieves a single user by email.
func (uc *UserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user by email: %v", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return user, nil
}

// ListUsers retrieves every user record.
func (uc *UserUsecase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.ListUsers(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return users, nil
}

// UpdateUser updates the mutable profile fields of a user. A new email must
// not collide with a different existing account.
func (uc *UserUsecase) UpdateUser(ctx context.Context, userID, firstName, lastName, email string) (*entity.User, error) {
	if email != "" {
		if err := uc.validator.ValidateEmail(email); err != nil {
			return nil, fmt.Errorf("%w: invalid email format", entity.ErrValidation)
		}
		other, err := uc.userRepo.GetUserByEmailExcludingID(ctx, userID, email)
		if err != nil && !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Errorf("failed to check email uniqueness: %v", err)
			return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
		}
		if other != nil {
			return nil, entity.ErrDuplicateEmail
		}
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user for update: %v", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if email != "" {
		user.Email = email
	}

	updated, err := uc.userRepo.UpdateUser(ctx, user)
	if err != nil {
		uc.logger.Errorf("failed to update user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return updated, nil
}

// DeleteUser physically removes a user record and returns the removed user.
func (uc *UserUsecase) DeleteUser(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to retrieve user for delete: %v", err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}

	if err := uc.userRepo.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		uc.logger.Errorf("failed to delete user %s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstream, err)
	}
	return user, nil
}
