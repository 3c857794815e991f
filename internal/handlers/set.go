package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Trkcnl/twacktwack/internal/models"
)

// ExerciseSetServicer defines the set operations of the exercise service.
type ExerciseSetServicer interface {
	ListSets(ctx context.Context, callerID uuid.UUID, exerciseLogID int64) ([]models.ExerciseSetDB, error)
	AddSet(ctx context.Context, callerID uuid.UUID, exerciseLogID int64, reps int, weightKg float64, rir int) (*models.ExerciseSetDB, error)
	GetSet(ctx context.Context, callerID uuid.UUID, id int64) (*models.ExerciseSetDB, error)
	UpdateSet(ctx context.Context, callerID uuid.UUID, id int64, reps int, weightKg float64, rir int) (*models.ExerciseSetDB, error)
	DeleteSet(ctx context.Context, callerID uuid.UUID, id int64) error
}

// ExerciseSetRequest represents the JSON body for adding or updating a set on
// its own, outside a full workout write
// swagger:model ExerciseSetRequest
type ExerciseSetRequest struct {
	// Repetitions, 0 to 100
	// required: true
	// example: 8
	Reps int `json:"reps"`

	// Load in kilograms, 0 to 300
	// required: true
	// example: 82.5
	WeightKg float64 `json:"weight_kg"`

	// Reps in reserve, 0 to 6
	// example: 2
	RIR int `json:"rir"`
}

// NewExerciseSetListHandler returns an HTTP handler listing the sets of one
// owned exercise log.
// @Summary List sets of an exercise log
// @Tags sets
// @Produce json
// @Param id path int true "Exercise log ID"
// @Success 200 {array} handlers.ExerciseSetResponse "Sets"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /exercises/{id}/sets [get]
// @Security BearerAuth
func NewExerciseSetListHandler(svc ExerciseSetServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		exerciseLogID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		sets, err := svc.ListSets(r.Context(), claims.UserID, exerciseLogID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]ExerciseSetResponse, 0, len(sets))
		for i := range sets {
			resp = append(resp, setResponseFrom(&sets[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewExerciseSetCreateHandler returns an HTTP handler adding one set to an
// owned exercise log.
// @Summary Add a set to an exercise log
// @Tags sets
// @Accept json
// @Produce json
// @Param id path int true "Exercise log ID"
// @Param exerciseSetRequest body handlers.ExerciseSetRequest true "Set"
// @Success 201 {object} handlers.ExerciseSetResponse "Created set"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /exercises/{id}/sets [post]
// @Security BearerAuth
func NewExerciseSetCreateHandler(svc ExerciseSetServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		exerciseLogID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		var req ExerciseSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		set, err := svc.AddSet(r.Context(), claims.UserID, exerciseLogID, req.Reps, req.WeightKg, req.RIR)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, setResponseFrom(set))
	}
}

// NewExerciseSetGetHandler returns an HTTP handler serving one owned set.
// @Summary Get a set
// @Tags sets
// @Produce json
// @Param id path int true "Set ID"
// @Success 200 {object} handlers.ExerciseSetResponse "Set"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /sets/{id} [get]
// @Security BearerAuth
func NewExerciseSetGetHandler(svc ExerciseSetServicer, tokenGetter Tokener) http.HandlerFunc {
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

		set, err := svc.GetSet(r.Context(), claims.UserID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, setResponseFrom(set))
	}
}

// NewExerciseSetUpdateHandler returns an HTTP handler updating one owned set.
// @Summary Update a set
// @Tags sets
// @Accept json
// @Produce json
// @Param id path int true "Set ID"
// @Param exerciseSetRequest body handlers.ExerciseSetRequest true "Set"
// @Success 200 {object} handlers.ExerciseSetResponse "Updated set"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /sets/{id} [put]
// @Security BearerAuth
func NewExerciseSetUpdateHandler(svc ExerciseSetServicer, tokenGetter Tokener) http.HandlerFunc {
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

		var req ExerciseSetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		set, err := svc.UpdateSet(r.Context(), claims.UserID, id, req.Reps, req.WeightKg, req.RIR)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, setResponseFrom(set))
	}
}

// NewExerciseSetDeleteHandler returns an HTTP handler deleting one owned set.
// @Summary Delete a set
// @Tags sets
// @Param id path int true "Set ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /sets/{id} [delete]
// @Security BearerAuth
func NewExerciseSetDeleteHandler(svc ExerciseSetServicer, tokenGetter Tokener) http.HandlerFunc {
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

		if err := svc.DeleteSet(r.Context(), claims.UserID, id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
