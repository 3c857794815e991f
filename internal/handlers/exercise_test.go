package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Trkcnl/twacktwack/internal/jwt"
	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/services"
)

func TestExerciseLogCreateHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(mockSvc *MockExerciseLogServicer, mockTokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name:        "added to owned workout",
			requestBody: `{"exercise_type":3}`,
			setupMocks: func(mockSvc *MockExerciseLogServicer, mockTokener *MockTokener) {
				expectClaims(mockTokener, &jwt.Claims{UserID: userID})
				mockSvc.EXPECT().AddLog(gomock.Any(), userID, int64(5), int64(3)).
					Return(&models.ExerciseLogDetail{ID: 10, ExerciseTypeID: 3, TypeName: "Bench press", TypeMuscleGroup: models.Chest}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "workout not owned",
			requestBody: `{"exercise_type":3}`,
			setupMocks: func(mockSvc *MockExerciseLogServicer, mockTokener *MockTokener) {
				expectClaims(mockTokener, &jwt.Claims{UserID: userID})
				mockSvc.EXPECT().AddLog(gomock.Any(), userID, int64(5), int64(3)).Return(nil, services.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
		},
		{
			name:        "type already in workout",
			requestBody: `{"exercise_type":3}`,
			setupMocks: func(mockSvc *MockExerciseLogServicer, mockTokener *MockTokener) {
				expectClaims(mockTokener, &jwt.Claims{UserID: userID})
				mockSvc.EXPECT().AddLog(gomock.Any(), userID, int64(5), int64(3)).
					Return(nil, validationErrs(map[string]string{"exercise_type": "Exercise type already present in this workout."}))
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockExerciseLogServicer(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts/5/exercises", bytes.NewReader([]byte(tt.requestBody)))
			req = withURLParam(req, "id", "5")
			rr := httptest.NewRecorder()

			NewExerciseLogCreateHandler(mockSvc, mockTokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestExerciseLogGetHandler(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExerciseLogServicer(ctrl)
	mockTokener := NewMockTokener(ctrl)
	expectClaims(mockTokener, &jwt.Claims{UserID: userID})
	mockSvc.EXPECT().GetLog(gomock.Any(), userID, int64(10)).
		Return(&models.ExerciseLogDetail{
			ID:              10,
			ExerciseTypeID:  3,
			TypeName:        "Bench press",
			TypeMuscleGroup: models.Chest,
			Sets:            []models.ExerciseSetDB{{ID: 100, ExerciseLogID: 10, Reps: 8, WeightKg: 100, RIR: 2}},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/exercises/10", nil)
	req = withURLParam(req, "id", "10")
	rr := httptest.NewRecorder()

	NewExerciseLogGetHandler(mockSvc, mockTokener).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ExerciseLogResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, "Bench press", resp.ExerciseType.Name)
	assert.Len(t, resp.Sets, 1)
}

func TestExerciseSetCreateHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name               string
		requestBody        string
		setupMocks         func(mockSvc *MockExerciseSetServicer, mockTokener *MockTokener)
		expectedStatusCode int
	}{
		{
			name:        "added",
			requestBody: `{"reps":8,"weight_kg":100,"rir":2}`,
			setupMocks: func(mockSvc *MockExerciseSetServicer, mockTokener *MockTokener) {
				expectClaims(mockTokener, &jwt.Claims{UserID: userID})
				mockSvc.EXPECT().AddSet(gomock.Any(), userID, int64(10), 8, 100.0, 2).
					Return(&models.ExerciseSetDB{ID: 100, ExerciseLogID: 10, Reps: 8, WeightKg: 100, RIR: 2}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "reps out of range",
			requestBody: `{"reps":101,"weight_kg":100,"rir":2}`,
			setupMocks: func(mockSvc *MockExerciseSetServicer, mockTokener *MockTokener) {
				expectClaims(mockTokener, &jwt.Claims{UserID: userID})
				mockSvc.EXPECT().AddSet(gomock.Any(), userID, int64(10), 101, 100.0, 2).
					Return(nil, validationErrs(map[string]string{"reps": "Ensure this value is less than or equal to 100."}))
			},
			expectedStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockExerciseSetServicer(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/exercises/10/sets", bytes.NewReader([]byte(tt.requestBody)))
			req = withURLParam(req, "id", "10")
			rr := httptest.NewRecorder()

			NewExerciseSetCreateHandler(mockSvc, mockTokener).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
		})
	}
}

func TestExerciseSetDeleteHandler(t *testing.T) {
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExerciseSetServicer(ctrl)
	mockTokener := NewMockTokener(ctrl)
	expectClaims(mockTokener, &jwt.Claims{UserID: userID})
	mockSvc.EXPECT().DeleteSet(gomock.Any(), userID, int64(100)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/sets/100", nil)
	req = withURLParam(req, "id", "100")
	rr := httptest.NewRecorder()

	NewExerciseSetDeleteHandler(mockSvc, mockTokener).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}
