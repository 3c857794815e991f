package handlers

import (
	"context"
	"net/http"

	"github.com/Trkcnl/twacktwack/internal/jwt"
	"github.com/Trkcnl/twacktwack/internal/logger"
)

// Tokener defines the token operations protected handlers need to resolve the
// caller's identity.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// claimsFromRequest resolves the caller's verified claims, or writes a 401
// and returns nil.
func claimsFromRequest(w http.ResponseWriter, r *http.Request, tokenGetter Tokener) *jwt.Claims {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil
	}

	return claims
}

// optionalClaims resolves claims for catalog listings that work with and
// without a caller. No bearer token means an anonymous caller; a token that
// fails verification is bad credentials, so a 401 is written and ok is false.
func optionalClaims(w http.ResponseWriter, r *http.Request, tokenGetter Tokener) (claims *jwt.Claims, ok bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil, true
	}

	claims, err = tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}
