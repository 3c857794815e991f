package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/models"
)

// ProfileServicer defines the interface that the profile service must implement.
type ProfileServicer interface {
	Get(ctx context.Context, callerID uuid.UUID, id int64) (*models.UserProfileDB, error)
	List(ctx context.Context) ([]models.UserProfileDB, error)
	Create(ctx context.Context, callerID uuid.UUID, name string, birthdate time.Time, heightCm float64, bio string) (*models.UserProfileDB, error)
	Update(ctx context.Context, callerID uuid.UUID, id int64, name string, birthdate time.Time, heightCm float64, bio string) (*models.UserProfileDB, error)
}

// ProfileRequest represents the JSON body for creating or updating a profile
// swagger:model ProfileRequest
type ProfileRequest struct {
	// Display name
	// required: true
	Name string `json:"name"`

	// Birthdate, must yield age of at least 16
	// required: true
	Birthdate DateOnly `json:"birthdate"`

	// Height in centimeters, between 0 and 300
	HeightCm Decimal `json:"height_cm"`

	// Free-form biography
	Bio string `json:"bio"`
}

// ProfileResponse represents a profile in the read shape
// swagger:model ProfileResponse
type ProfileResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Birthdate DateOnly  `json:"birthdate"`
	HeightCm  Decimal   `json:"height_cm"`
	Bio       string    `json:"bio"`
	CreatedAt time.Time `json:"created"`
	UpdatedAt time.Time `json:"modified"`
}

func profileResponseFrom(p *models.UserProfileDB) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Name:      p.Name,
		Birthdate: DateOnly(p.Birthdate),
		HeightCm:  Decimal(p.HeightCm),
		Bio:       p.Bio,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewProfileListHandler returns an HTTP handler listing every profile.
// Reserved for the elevated tier; a standard caller gets a 404 so the
// existence of other profiles never leaks.
// @Summary List all user profiles
// @Tags userprofiles
// @Produce json
// @Success 200 {array} handlers.ProfileResponse "Profiles"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /userprofiles [get]
// @Security BearerAuth
func NewProfileListHandler(svc ProfileServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}
		if !claims.IsAdmin {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		profiles, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]ProfileResponse, 0, len(profiles))
		for i := range profiles {
			resp = append(resp, profileResponseFrom(&profiles[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewProfileGetHandler returns an HTTP handler serving one owned profile.
// @Summary Get a user profile
// @Tags userprofiles
// @Produce json
// @Param id path int true "Profile ID"
// @Success 200 {object} handlers.ProfileResponse "Profile"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /userprofiles/{id} [get]
// @Security BearerAuth
func NewProfileGetHandler(svc ProfileServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		profile, err := svc.Get(r.Context(), claims.UserID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profileResponseFrom(profile))
	}
}

// NewProfileCreateHandler returns an HTTP handler creating the caller's profile.
// @Summary Create the caller's profile
// @Tags userprofiles
// @Accept json
// @Produce json
// @Param profileRequest body handlers.ProfileRequest true "Profile"
// @Success 201 {object} handlers.ProfileResponse "Created profile"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /userprofiles [post]
// @Security BearerAuth
func NewProfileCreateHandler(svc ProfileServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		profile, err := svc.Create(r.Context(), claims.UserID, req.Name, req.Birthdate.Time(), float64(req.HeightCm), req.Bio)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, profileResponseFrom(profile))
	}
}

// NewProfileUpdateHandler returns an HTTP handler updating one owned profile.
// @Summary Update a user profile
// @Tags userprofiles
// @Accept json
// @Produce json
// @Param id path int true "Profile ID"
// @Param profileRequest body handlers.ProfileRequest true "Profile"
// @Success 200 {object} handlers.ProfileResponse "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /userprofiles/{id} [put]
// @Security BearerAuth
func NewProfileUpdateHandler(svc ProfileServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		var req ProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		profile, err := svc.Update(r.Context(), claims.UserID, id, req.Name, req.Birthdate.Time(), float64(req.HeightCm), req.Bio)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, profileResponseFrom(profile))
	}
}
