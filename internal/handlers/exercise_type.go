package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/models"
)

// ExerciseTypeServicer defines the catalog operations for exercise types.
type ExerciseTypeServicer interface {
	ListExerciseTypes(ctx context.Context, userID *uuid.UUID) ([]models.ExerciseTypeDB, error)
	CreateExerciseType(ctx context.Context, callerID uuid.UUID, name string, muscleGroup models.MuscleGroup) (*models.ExerciseTypeDB, error)
}

// ExerciseTypeRequest represents the JSON body for creating a custom exercise type
// swagger:model ExerciseTypeRequest
type ExerciseTypeRequest struct {
	// Exercise name, unique per owner
	// required: true
	// example: Bench Press
	Name string `json:"name"`

	// Primary muscle group
	// required: true
	// example: chest
	MuscleGroup string `json:"muscle_group"`
}

// ExerciseTypeResponse represents an exercise type in the read shape
// swagger:model ExerciseTypeResponse
type ExerciseTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	MuscleGroup string `json:"muscle_group"`
	IsCustom    bool   `json:"is_custom"`
}

func exerciseTypeResponseFrom(t *models.ExerciseTypeDB) ExerciseTypeResponse {
	return ExerciseTypeResponse{
		ID:          t.ID,
		Name:        t.Name,
		MuscleGroup: string(t.MuscleGroup),
		IsCustom:    t.IsCustom,
	}
}

// NewExerciseTypeListHandler returns an HTTP handler listing exercise types.
// Anonymous callers see the built-in catalog, authenticated callers also see
// their own custom types.
// @Summary List exercise types
// @Tags catalog
// @Produce json
// @Success 200 {array} handlers.ExerciseTypeResponse "Exercise types"
// @Router /exercise-types [get]
// @Security BearerAuth
func NewExerciseTypeListHandler(svc ExerciseTypeServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := optionalClaims(w, r, tokenGetter)
		if !ok {
			return
		}
		var userID *uuid.UUID
		if claims != nil {
			userID = &claims.UserID
		}

		types, err := svc.ListExerciseTypes(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]ExerciseTypeResponse, 0, len(types))
		for i := range types {
			resp = append(resp, exerciseTypeResponseFrom(&types[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewExerciseTypeCreateHandler returns an HTTP handler creating a custom
// exercise type owned by the caller.
// @Summary Create a custom exercise type
// @Tags catalog
// @Accept json
// @Produce json
// @Param exerciseTypeRequest body handlers.ExerciseTypeRequest true "Exercise type"
// @Success 201 {object} handlers.ExerciseTypeResponse "Created exercise type"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /exercise-types [post]
// @Security BearerAuth
func NewExerciseTypeCreateHandler(svc ExerciseTypeServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req ExerciseTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		created, err := svc.CreateExerciseType(r.Context(), claims.UserID, req.Name, models.MuscleGroup(req.MuscleGroup))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, exerciseTypeResponseFrom(created))
	}
}
