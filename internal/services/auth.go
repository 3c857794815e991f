package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/validation"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, passwordHash string) (uuid.UUID, error)
}

// ProfileByUserReader loads the profile attached to a user identity.
type ProfileByUserReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfileDB, error)
}

// TokenIssuer defines the token operations the auth service needs.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error)
	GenerateRefresh(ctx context.Context, userID uuid.UUID) (string, error)
	GetRefreshUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// AuthService handles registration, login and token refresh.
type AuthService struct {
	reader        UserReader
	writer        UserWriter
	profileReader ProfileByUserReader
	jwt           TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, profileReader ProfileByUserReader, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader:        reader,
		writer:        writer,
		profileReader: profileReader,
		jwt:           jwt,
	}
}

// Register registers a new user and returns the assigned identifier.
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (uuid.UUID, error) {
	errs := validation.New()
	if username == "" {
		errs.Add("username", "Username must not be empty.")
	}
	if email == "" || !strings.Contains(email, "@") {
		errs.Add("email", "Enter a valid email address.")
	}
	if len(password) < 8 {
		errs.Add("password", "Password must be at least 8 characters.")
	}
	if err := errs.Err(); err != nil {
		return uuid.Nil, err
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, &email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return uuid.Nil, err
	}
	if user != nil {
		return uuid.Nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return uuid.Nil, err
	}

	userID, err := svc.writer.Save(ctx, username, email, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Login authenticates a user and returns an access and a refresh token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (access, refresh string, err error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		return "", "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	access, err = svc.jwt.Generate(ctx, user.UserID, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}
	refresh, err = svc.jwt.GenerateRefresh(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	return access, refresh, nil
}

// Refresh exchanges a valid refresh token for a fresh access token.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	userID, err := svc.jwt.GetRefreshUserID(ctx, refreshToken)
	if err != nil {
		return "", ErrInvalidToken
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		return "", ErrInvalidToken
	}

	return svc.jwt.Generate(ctx, user.UserID, user.IsAdmin)
}

// GetMe returns the caller's user row and profile, if one exists.
func (svc *AuthService) GetMe(ctx context.Context, userID uuid.UUID) (*models.UserDB, *models.UserProfileDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrNotFound
	}

	profile, err := svc.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	return user, profile, nil
}
