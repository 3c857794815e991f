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
	"github.com/Trkcnl/twacktwack/internal/services"
)

// WorkoutServicer defines the interface that the workout service must implement.
type WorkoutServicer interface {
	List(ctx context.Context, callerID uuid.UUID) ([]models.WorkoutDetail, error)
	Get(ctx context.Context, callerID uuid.UUID, id int64) (*models.WorkoutDetail, error)
	Create(ctx context.Context, callerID uuid.UUID, in services.WorkoutInput) (*models.WorkoutDetail, error)
	Update(ctx context.Context, callerID uuid.UUID, id int64, in services.WorkoutInput) (*models.WorkoutDetail, error)
	Delete(ctx context.Context, callerID uuid.UUID, id int64) error
}

// ExerciseSetPayload represents one set inside a workout write. An absent id
// means the set is inserted, a present id must match an existing set.
// swagger:model ExerciseSetPayload
type ExerciseSetPayload struct {
	ID       *int64  `json:"id,omitempty"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weight_kg"`
	RIR      int     `json:"rir"`
}

// ExerciseLogPayload represents one exercise log inside a workout write.
// swagger:model ExerciseLogPayload
type ExerciseLogPayload struct {
	ID           *int64               `json:"id,omitempty"`
	ExerciseType int64                `json:"exercise_type"`
	Sets         []ExerciseSetPayload `json:"exercise_sets"`
}

// WorkoutRequest represents the JSON body for creating or replacing a workout
// session with its full nested state
// swagger:model WorkoutRequest
type WorkoutRequest struct {
	// Session start
	// required: true
	Begintime time.Time `json:"begintime"`

	// Session end, must be after begintime
	// required: true
	Endtime time.Time `json:"endtime"`

	// Nested exercise logs, the stored state is reconciled against this list
	ExerciseLogs []ExerciseLogPayload `json:"exercise_logs"`
}

// ExerciseSetResponse represents a set in the read shape
// swagger:model ExerciseSetResponse
type ExerciseSetResponse struct {
	ID       int64   `json:"id"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weight_kg"`
	RIR      int     `json:"rir"`
}

// ExerciseLogResponse represents an exercise log in the read shape with the
// catalog type embedded as an object.
// swagger:model ExerciseLogResponse
type ExerciseLogResponse struct {
	ID           int64                 `json:"id"`
	ExerciseType ExerciseTypeResponse  `json:"exercise_type"`
	Sets         []ExerciseSetResponse `json:"exercise_sets"`
}

// WorkoutResponse represents a workout session in the read shape
// swagger:model WorkoutResponse
type WorkoutResponse struct {
	ID           int64                 `json:"id"`
	Begintime    time.Time             `json:"begintime"`
	Endtime      time.Time             `json:"endtime"`
	ExerciseLogs []ExerciseLogResponse `json:"exercise_logs"`
}

func setResponseFrom(s *models.ExerciseSetDB) ExerciseSetResponse {
	return ExerciseSetResponse{ID: s.ID, Reps: s.Reps, WeightKg: s.WeightKg, RIR: s.RIR}
}

func exerciseLogResponseFrom(l *models.ExerciseLogDetail) ExerciseLogResponse {
	resp := ExerciseLogResponse{
		ID: l.ID,
		ExerciseType: ExerciseTypeResponse{
			ID:          l.ExerciseTypeID,
			Name:        l.TypeName,
			MuscleGroup: string(l.TypeMuscleGroup),
		},
		Sets: make([]ExerciseSetResponse, 0, len(l.Sets)),
	}
	for i := range l.Sets {
		resp.Sets = append(resp.Sets, setResponseFrom(&l.Sets[i]))
	}
	return resp
}

func workoutResponseFrom(w *models.WorkoutDetail) WorkoutResponse {
	resp := WorkoutResponse{
		ID:           w.ID,
		Begintime:    w.Begintime,
		Endtime:      w.Endtime,
		ExerciseLogs: make([]ExerciseLogResponse, 0, len(w.ExerciseLogs)),
	}
	for i := range w.ExerciseLogs {
		resp.ExerciseLogs = append(resp.ExerciseLogs, exerciseLogResponseFrom(&w.ExerciseLogs[i]))
	}
	return resp
}

func workoutInputFrom(req WorkoutRequest) services.WorkoutInput {
	in := services.WorkoutInput{
		Begintime:    req.Begintime,
		Endtime:      req.Endtime,
		ExerciseLogs: make([]services.ExerciseLogInput, 0, len(req.ExerciseLogs)),
	}
	for _, log := range req.ExerciseLogs {
		logIn := services.ExerciseLogInput{
			ID:             log.ID,
			ExerciseTypeID: log.ExerciseType,
			Sets:           make([]services.ExerciseSetInput, 0, len(log.Sets)),
		}
		for _, set := range log.Sets {
			logIn.Sets = append(logIn.Sets, services.ExerciseSetInput{
				ID:       set.ID,
				Reps:     set.Reps,
				WeightKg: set.WeightKg,
				RIR:      set.RIR,
			})
		}
		in.ExerciseLogs = append(in.ExerciseLogs, logIn)
	}
	return in
}

// NewWorkoutListHandler returns an HTTP handler listing the caller's workouts
// with their full nested state.
// @Summary List workouts
// @Tags workouts
// @Produce json
// @Success 200 {array} handlers.WorkoutResponse "Workouts"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /workouts [get]
// @Security BearerAuth
func NewWorkoutListHandler(svc WorkoutServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		workouts, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]WorkoutResponse, 0, len(workouts))
		for i := range workouts {
			resp = append(resp, workoutResponseFrom(&workouts[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewWorkoutGetHandler returns an HTTP handler serving one owned workout.
// @Summary Get a workout
// @Tags workouts
// @Produce json
// @Param id path int true "Workout ID"
// @Success 200 {object} handlers.WorkoutResponse "Workout"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /workouts/{id} [get]
// @Security BearerAuth
func NewWorkoutGetHandler(svc WorkoutServicer, tokenGetter Tokener) http.HandlerFunc {
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

		workout, err := svc.Get(r.Context(), claims.UserID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, workoutResponseFrom(workout))
	}
}

// NewWorkoutCreateHandler returns an HTTP handler creating a workout with its
// nested exercise logs and sets in one request.
// @Summary Create a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param workoutRequest body handlers.WorkoutRequest true "Workout"
// @Success 201 {object} handlers.WorkoutResponse "Created workout"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /workouts [post]
// @Security BearerAuth
func NewWorkoutCreateHandler(svc WorkoutServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req WorkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		workout, err := svc.Create(r.Context(), claims.UserID, workoutInputFrom(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, workoutResponseFrom(workout))
	}
}

// NewWorkoutUpdateHandler returns an HTTP handler replacing a workout's state.
// The stored nested collections are reconciled against the payload: children
// missing from the payload are deleted, children with a known id are updated
// and children without an id are inserted.
// @Summary Update a workout
// @Tags workouts
// @Accept json
// @Produce json
// @Param id path int true "Workout ID"
// @Param workoutRequest body handlers.WorkoutRequest true "Workout"
// @Success 200 {object} handlers.WorkoutResponse "Updated workout"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /workouts/{id} [put]
// @Security BearerAuth
func NewWorkoutUpdateHandler(svc WorkoutServicer, tokenGetter Tokener) http.HandlerFunc {
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

		var req WorkoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		workout, err := svc.Update(r.Context(), claims.UserID, id, workoutInputFrom(req))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, workoutResponseFrom(workout))
	}
}

// NewWorkoutDeleteHandler returns an HTTP handler deleting one owned workout
// and, through the schema, everything nested under it.
// @Summary Delete a workout
// @Tags workouts
// @Param id path int true "Workout ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /workouts/{id} [delete]
// @Security BearerAuth
func NewWorkoutDeleteHandler(svc WorkoutServicer, tokenGetter Tokener) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), claims.UserID, id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
