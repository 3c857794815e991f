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

// ExerciseLogServicer defines the exercise log operations of the exercise service.
type ExerciseLogServicer interface {
	ListLogs(ctx context.Context, callerID uuid.UUID, workoutID int64) ([]models.ExerciseLogDetail, error)
	AddLog(ctx context.Context, callerID uuid.UUID, workoutID, exerciseTypeID int64) (*models.ExerciseLogDetail, error)
	GetLog(ctx context.Context, callerID uuid.UUID, id int64) (*models.ExerciseLogDetail, error)
	UpdateLog(ctx context.Context, callerID uuid.UUID, id, exerciseTypeID int64) (*models.ExerciseLogDetail, error)
	DeleteLog(ctx context.Context, callerID uuid.UUID, id int64) error
}

// ExerciseLogRequest represents the JSON body for adding or retargeting an
// exercise log on its own, outside a full workout write
// swagger:model ExerciseLogRequest
type ExerciseLogRequest struct {
	// Exercise type identifier, must be built-in or owned by the caller
	// required: true
	ExerciseType int64 `json:"exercise_type"`
}

// NewExerciseLogListHandler returns an HTTP handler listing the logs of one
// owned workout.
// @Summary List exercise logs of a workout
// @Tags exercises
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {array} handlers.ExerciseLogResponse "Exercise logs"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /workouts/{id}/exercises [get]
// @Security BearerAuth
func NewExerciseLogListHandler(svc ExerciseLogServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		workoutID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		logs, err := svc.ListLogs(r.Context(), claims.UserID, workoutID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]ExerciseLogResponse, 0, len(logs))
		for i := range logs {
			resp = append(resp, exerciseLogResponseFrom(&logs[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewExerciseLogCreateHandler returns an HTTP handler adding one exercise log
// to an owned workout.
// @Summary Add an exercise log to a workout
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path int true "Workout ID"
// @Param exerciseLogRequest body handlers.ExerciseLogRequest true "Exercise log"
// @Success 201 {object} handlers.ExerciseLogResponse "Created exercise log"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /workouts/{id}/exercises [post]
// @Security BearerAuth
func NewExerciseLogCreateHandler(svc ExerciseLogServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		workoutID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		var req ExerciseLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		log, err := svc.AddLog(r.Context(), claims.UserID, workoutID, req.ExerciseType)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, exerciseLogResponseFrom(log))
	}
}

// NewExerciseLogGetHandler returns an HTTP handler serving one owned exercise log.
// @Summary Get an exercise log
// @Tags exercises
// @Produce json
// @Param id path int true "Exercise log ID"
// @Success 200 {object} handlers.ExerciseLogResponse "Exercise log"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /exercises/{id} [get]
// @Security BearerAuth
func NewExerciseLogGetHandler(svc ExerciseLogServicer, tokenGetter Tokener) http.HandlerFunc {
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

		log, err := svc.GetLog(r.Context(), claims.UserID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, exerciseLogResponseFrom(log))
	}
}

// NewExerciseLogUpdateHandler returns an HTTP handler retargeting one owned
// exercise log to another exercise type.
// @Summary Update an exercise log
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path int true "Exercise log ID"
// @Param exerciseLogRequest body handlers.ExerciseLogRequest true "Exercise log"
// @Success 200 {object} handlers.ExerciseLogResponse "Updated exercise log"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /exercises/{id} [put]
// @Security BearerAuth
func NewExerciseLogUpdateHandler(svc ExerciseLogServicer, tokenGetter Tokener) http.HandlerFunc {
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

		var req ExerciseLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		log, err := svc.UpdateLog(r.Context(), claims.UserID, id, req.ExerciseType)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, exerciseLogResponseFrom(log))
	}
}

// NewExerciseLogDeleteHandler returns an HTTP handler deleting one owned
// exercise log and its sets.
// @Summary Delete an exercise log
// @Tags exercises
// @Param id path int true "Exercise log ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /exercises/{id} [delete]
// @Security BearerAuth
func NewExerciseLogDeleteHandler(svc ExerciseLogServicer, tokenGetter Tokener) http.HandlerFunc {
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

		if err := svc.DeleteLog(r.Context(), claims.UserID, id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
