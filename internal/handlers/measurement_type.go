package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Trkcnl/twacktwack/internal/models"
)

// MeasurementTypeServicer defines the catalog operations for measurement types.
type MeasurementTypeServicer interface {
	ListMeasurementTypes(ctx context.Context) ([]models.MeasurementTypeDB, error)
	CreateMeasurementType(ctx context.Context, name, unit string) (*models.MeasurementTypeDB, error)
}

// MeasurementTypeRequest represents the JSON body for creating a measurement type
// swagger:model MeasurementTypeRequest
type MeasurementTypeRequest struct {
	// Unique type name
	// required: true
	// example: Body weight
	Name string `json:"name"`

	// Unit of measure
	// example: kg
	Unit string `json:"unit"`
}

// MeasurementTypeResponse represents a measurement type in the read shape
// swagger:model MeasurementTypeResponse
type MeasurementTypeResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

func measurementTypeResponseFrom(t *models.MeasurementTypeDB) MeasurementTypeResponse {
	return MeasurementTypeResponse{ID: t.ID, Name: t.Name, Unit: t.Unit}
}

// NewMeasurementTypeListHandler returns an HTTP handler listing the
// measurement type catalog. The catalog is public.
// @Summary List measurement types
// @Tags catalog
// @Produce json
// @Success 200 {array} handlers.MeasurementTypeResponse "Measurement types"
// @Router /measurement-types [get]
func NewMeasurementTypeListHandler(svc MeasurementTypeServicer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.ListMeasurementTypes(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]MeasurementTypeResponse, 0, len(types))
		for i := range types {
			resp = append(resp, measurementTypeResponseFrom(&types[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewMeasurementTypeCreateHandler returns an HTTP handler adding a type to
// the catalog. Reserved for the elevated tier; everyone else gets a 404.
// @Summary Create a measurement type
// @Tags catalog
// @Accept json
// @Produce json
// @Param measurementTypeRequest body handlers.MeasurementTypeRequest true "Measurement type"
// @Success 201 {object} handlers.MeasurementTypeResponse "Created measurement type"
// @Failure 400 {object} handlers.ErrorResponse "Validation failure"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /measurement-types [post]
// @Security BearerAuth
func NewMeasurementTypeCreateHandler(svc MeasurementTypeServicer, tokenGetter Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFromRequest(w, r, tokenGetter)
		if claims == nil {
			return
		}
		if !claims.IsAdmin {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
			return
		}

		var req MeasurementTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
			return
		}

		created, err := svc.CreateMeasurementType(r.Context(), req.Name, req.Unit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, measurementTypeResponseFrom(created))
	}
}
