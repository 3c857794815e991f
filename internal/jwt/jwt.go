package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "typ" claim.
const (
	typeAccess  = "access"
	typeRefresh = "refresh"
)

// Claims are the verified fields handlers care about.
type Claims struct {
	UserID  uuid.UUID
	IsAdmin bool
}

// JWT provides methods to generate and validate JWT tokens.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	Exp        time.Duration // Access token expiration duration
	RefreshExp time.Duration // Refresh token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration, refreshExpiration time.Duration) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		Exp:        expiration,
		RefreshExp: refreshExpiration,
	}
}

// Generate creates an access token for a given user.
func (j *JWT) Generate(ctx context.Context, userID uuid.UUID, isAdmin bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"is_admin": isAdmin,
		"typ":      typeAccess,
		"exp":      time.Now().Add(j.Exp).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GenerateRefresh creates a refresh token for a given user.
func (j *JWT) GenerateRefresh(ctx context.Context, userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"typ":     typeRefresh,
		"exp":     time.Now().Add(j.RefreshExp).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses an access token string and returns its claims if valid.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	mapClaims, err := j.parse(tokenString, typeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := userIDFromClaims(mapClaims)
	if err != nil {
		return nil, err
	}

	isAdmin, _ := mapClaims["is_admin"].(bool)
	return &Claims{UserID: userID, IsAdmin: isAdmin}, nil
}

// GetRefreshUserID parses a refresh token string and returns the user it was
// issued to.
func (j *JWT) GetRefreshUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	mapClaims, err := j.parse(tokenString, typeRefresh)
	if err != nil {
		return uuid.Nil, err
	}
	return userIDFromClaims(mapClaims)
}

// Validate checks that tokenString is a valid access token.
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.parse(tokenString, typeAccess)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func (j *JWT) parse(tokenString, wantType string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if typ, _ := claims["typ"].(string); typ != wantType {
		return nil, errors.New("unexpected token type")
	}

	return claims, nil
}

func userIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("user_id not found in token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid user_id format")
	}
	return userID, nil
}
