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

// MeasurementServicer defines the interface that the measurement service must implement.
type MeasurementServicer interface {
	List(ctx context.Context, callerID uuid.UUID) ([]models.MeasurementDetail, error)
	Get(ctx context.Context, callerID uuid.UUID, id int64) (*models.MeasurementDetail, error)
	Create(ctx context.Context, callerID uuid.UUID, typeID int64, value float64, date time.Time) (*models.MeasurementDetail, error)
	Update(ctx context.Context, callerID uuid.UUID, id, typeID int64, value float64, date time.Time) (*models.MeasurementDetail, error)
	Delete(ctx context.Context, callerID uuid.UUID, id int64) error
}

// MeasurementRequest represents the JSON body for creating or updating a measurement
// swagger:model MeasurementRequest
type MeasurementRequest struct {
	// Measurement type identifier
	// required: true
	MeasurementType int64 `json:"measurement_type"`

	// Measured value, must not be negative
	// required: true
	// example: 82.50
	Value Decimal `json:"value"`

	// Measurement date, must not be in the future
	// required: true
	// example: 2026-08-01
	Date DateOnly `json:"date"`
}

// MeasurementResponse represents a measurement in the read shape. The
// measurement type is embedded as an object rather than a bare identifier.
// swagger:model MeasurementResponse
type MeasurementResponse struct {
	ID              int64                   `json:"id"`
	MeasurementType MeasurementTypeResponse `json:"measurement_type"`
	Value           Decimal                 `json:"value"`
	Date            DateOnly                `json:"date"`
}

func measurementResponseFrom(m *models.MeasurementDetail) MeasurementResponse {
	return MeasurementResponse{
		ID: m.ID,
		MeasurementType: MeasurementTypeResponse{
			ID:   m.TypeID,
			Name: m.TypeName,
			Unit: m.TypeUnit,
		},
		Value: Decimal(m.Value),
		Date:  DateOnly(m.Date),
	}
}

// NewMeasurementListHandler returns an HTTP handler listing the caller's measurements.
// @Summary List measurements
// @Tags measurements
// @Produce json
// @Success 200 {array} handlers.MeasurementResponse "Measurements"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /measurements [get]
// @Security BearerAuth
func NewMeasurementListHandler(svc MeasurementServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		measurements, err := svc.List(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]MeasurementResponse, 0, len(measurements))
		for i := range measurements {
			resp = append(resp, measurementResponseFrom(&measurements[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewMeasurementGetHandler returns an HTTP handler serving one owned measurement.
// @Summary Get a measurement
// @Tags measurements
// @Produce json
// @Param id path int true "Measurement ID"
// @Success 200 {object} handlers.MeasurementResponse "Measurement"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /measurements/{id} [get]
// @Security BearerAuth
func NewMeasurementGetHandler(svc MeasurementServicer, tokenGetter Tokener) http.HandlerFunc {
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

		m, err := svc.Get(r.Context(), claims.UserID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, measurementResponseFrom(m))
	}
}

// NewMeasurementCreateHandler returns an HTTP handler recording a measurement.
// @Summary Create a measurement
// @Tags measurements
// @Accept json
// @Produce json
// @Param measurementRequest body handlers.MeasurementRequest true "Measurement"
// @Success 201 {object} handlers.MeasurementResponse "Created measurement"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /measurements [post]
// @Security BearerAuth
func NewMeasurementCreateHandler(svc MeasurementServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}

		var req MeasurementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		m, err := svc.Create(r.Context(), claims.UserID, req.MeasurementType, float64(req.Value), req.Date.Time())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, measurementResponseFrom(m))
	}
}

// NewMeasurementUpdateHandler returns an HTTP handler updating one owned measurement.
// @Summary Update a measurement
// @Tags measurements
// @Accept json
// @Produce json
// @Param id path int true "Measurement ID"
// @Param measurementRequest body handlers.MeasurementRequest true "Measurement"
// @Success 200 {object} handlers.MeasurementResponse "Updated measurement"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /measurements/{id} [put]
// @Security BearerAuth
func NewMeasurementUpdateHandler(svc MeasurementServicer, tokenGetter Tokener) http.HandlerFunc {
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

		var req MeasurementRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		m, err := svc.Update(r.Context(), claims.UserID, id, req.MeasurementType, float64(req.Value), req.Date.Time())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, measurementResponseFrom(m))
	}
}

// NewMeasurementDeleteHandler returns an HTTP handler deleting one owned measurement.
// @Summary Delete a measurement
// @Tags measurements
// @Param id path int true "Measurement ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found or not owned"
// @Router /measurements/{id} [delete]
// @Security BearerAuth
func NewMeasurementDeleteHandler(svc MeasurementServicer, tokenGetter Tokener) http.HandlerFunc {
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
