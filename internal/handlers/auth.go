package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (uuid.UUID, error)
}

// LoginRefresher defines the token exchange operations.
type LoginRefresher interface {
	Login(ctx context.Context, username, password string) (access, refresh string, err error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// MeGetter loads the caller's own user and profile.
type MeGetter interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*models.UserDB, *models.UserProfileDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Identifier of the created user
	UserID uuid.UUID `json:"user_id"`

	// Success message
	// default: User registered successfully
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Ensures unique username and email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / invalid request"
// @Router /auth/users [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		userID, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			if err == services.ErrUserAlreadyExists {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Username or email already exists"})
				return
			}
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			UserID:  userID,
			Message: "User registered successfully",
		})
	}
}

// TokenRequest represents the JSON body for obtaining a token pair
// swagger:model TokenRequest
type TokenRequest struct {
	// Username
	// required: true
	Username string `json:"username"`

	// Password
	// required: true
	Password string `json:"password"`
}

// TokenResponse represents an issued token pair
// swagger:model TokenResponse
type TokenResponse struct {
	// Access token
	Access string `json:"access"`

	// Refresh token
	Refresh string `json:"refresh,omitempty"`
}

// NewTokenHandler returns an HTTP handler exchanging credentials for tokens.
// @Summary Obtain a token pair
// @Description Authenticates with username and password and returns access and refresh tokens.
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenRequest body handlers.TokenRequest true "Credentials"
// @Success 200 {object} handlers.TokenResponse "Token pair"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Router /auth/token [post]
func NewTokenHandler(svc LoginRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		access, refresh, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch err {
			case services.ErrUserDoesNotExist, services.ErrInvalidCredentials:
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			default:
				writeServiceError(w, err)
			}
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Access: access, Refresh: refresh})
	}
}

// TokenRefreshRequest represents the JSON body for refreshing an access token
// swagger:model TokenRefreshRequest
type TokenRefreshRequest struct {
	// Refresh token
	// required: true
	Refresh string `json:"refresh"`
}

// NewTokenRefreshHandler returns an HTTP handler exchanging a refresh token
// for a new access token.
// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param tokenRefreshRequest body handlers.TokenRefreshRequest true "Refresh token"
// @Success 200 {object} handlers.TokenResponse "New access token"
// @Failure 401 {object} handlers.ErrorResponse "Invalid refresh token"
// @Router /auth/token/refresh [post]
func NewTokenRefreshHandler(svc LoginRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRefreshRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		access, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			if err == services.ErrInvalidToken {
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid refresh token"})
				return
			}
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{Access: access})
	}
}

// MeResponse represents the caller's own user with the profile embedded
// swagger:model MeResponse
type MeResponse struct {
	UserID   uuid.UUID        `json:"user_id"`
	Username string           `json:"username"`
	Email    string           `json:"email"`
	Profile  *ProfileResponse `json:"user_profile,omitempty"`
}

// NewMeHandler returns an HTTP handler serving the caller's own user.
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /auth/users/me [get]
// @Security BearerAuth
func NewMeHandler(svc MeGetter, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		user, profile, err := svc.GetMe(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := MeResponse{
			UserID:   user.UserID,
			Username: user.Username,
			Email:    user.Email,
		}
		if profile != nil {
			pr := profileResponseFrom(profile)
			resp.Profile = &pr
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
