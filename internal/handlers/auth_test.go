package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Trkcnl/twacktwack/internal/jwt"
	"github.com/Trkcnl/twacktwack/internal/models"
	"github.com/Trkcnl/twacktwack/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockRegisterer)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name: "successful registration",
			requestBody: RegisterRequest{
				Username: "john_doe",
				Email:    "john@example.com",
				Password: "secret123",
			},
			setupMocks: func(mockSvc *MockRegisterer) {
				mockSvc.EXPECT().Register(gomock.Any(), "john_doe", "john@example.com", "secret123").Return(userID, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedKey:        "message",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockRegisterer) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "username or email already exists",
			requestBody: RegisterRequest{
				Username: "john_doe",
				Email:    "john@example.com",
				Password: "secret123",
			},
			setupMocks: func(mockSvc *MockRegisterer) {
				mockSvc.EXPECT().Register(gomock.Any(), "john_doe", "john@example.com", "secret123").
					Return(uuid.Nil, services.ErrUserAlreadyExists)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name: "blank fields rejected",
			requestBody: RegisterRequest{
				Username: "",
				Email:    "",
				Password: "",
			},
			setupMocks: func(mockSvc *MockRegisterer) {
				errs := validationErrs(map[string]string{
					"username": "This field may not be blank.",
					"email":    "This field may not be blank.",
					"password": "This field may not be blank.",
				})
				mockSvc.EXPECT().Register(gomock.Any(), "", "", "").Return(uuid.Nil, errs)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "username",
		},
		{
			name: "internal server error",
			requestBody: RegisterRequest{
				Username: "john_doe",
				Email:    "john@example.com",
				Password: "secret123",
			},
			setupMocks: func(mockSvc *MockRegisterer) {
				mockSvc.EXPECT().Register(gomock.Any(), "john_doe", "john@example.com", "secret123").
					Return(uuid.Nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockRegisterer(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/users", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewRegisterHandler(mockSvc)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestTokenHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockLoginRefresher)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful login",
			requestBody: TokenRequest{Username: "john_doe", Password: "secret123"},
			setupMocks: func(mockSvc *MockLoginRefresher) {
				mockSvc.EXPECT().Login(gomock.Any(), "john_doe", "secret123").Return("access-token", "refresh-token", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "access",
		},
		{
			name:               "invalid request body",
			requestBody:        "invalid-json",
			setupMocks:         func(mockSvc *MockLoginRefresher) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedKey:        "error",
		},
		{
			name:        "unknown user",
			requestBody: TokenRequest{Username: "nobody", Password: "secret123"},
			setupMocks: func(mockSvc *MockLoginRefresher) {
				mockSvc.EXPECT().Login(gomock.Any(), "nobody", "secret123").Return("", "", services.ErrUserDoesNotExist)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
		{
			name:        "wrong password",
			requestBody: TokenRequest{Username: "john_doe", Password: "wrong"},
			setupMocks: func(mockSvc *MockLoginRefresher) {
				mockSvc.EXPECT().Login(gomock.Any(), "john_doe", "wrong").Return("", "", services.ErrInvalidCredentials)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginRefresher(ctrl)
			tt.setupMocks(mockSvc)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewTokenHandler(mockSvc)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestTokenRefreshHandler(t *testing.T) {
	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockLoginRefresher)
		expectedStatusCode int
		expectedKey        string
	}{
		{
			name:        "successful refresh",
			requestBody: TokenRefreshRequest{Refresh: "refresh-token"},
			setupMocks: func(mockSvc *MockLoginRefresher) {
				mockSvc.EXPECT().Refresh(gomock.Any(), "refresh-token").Return("new-access-token", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedKey:        "access",
		},
		{
			name:        "invalid refresh token",
			requestBody: TokenRefreshRequest{Refresh: "stale"},
			setupMocks: func(mockSvc *MockLoginRefresher) {
				mockSvc.EXPECT().Refresh(gomock.Any(), "stale").Return("", services.ErrInvalidToken)
			},
			expectedStatusCode: http.StatusUnauthorized,
			expectedKey:        "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockLoginRefresher(ctrl)
			tt.setupMocks(mockSvc)

			bodyBytes, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token/refresh", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewTokenRefreshHandler(mockSvc)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)

			_, ok := resp[tt.expectedKey]
			assert.True(t, ok, "response should contain key %s", tt.expectedKey)
		})
	}
}

func TestMeHandler(t *testing.T) {
	userID := uuid.New()
	validToken := "valid-token"
	user := &models.UserDB{UserID: userID, Username: "john_doe", Email: "john@example.com"}
	profile := &models.UserProfileDB{
		ID:        1,
		UserID:    userID,
		Name:      "John",
		Birthdate: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		HeightCm:  181.5,
	}

	tests := []struct {
		name               string
		setupMocks         func(mockSvc *MockMeGetter, mockTokener *MockTokener)
		expectedStatusCode int
		checkBody          func(t *testing.T, resp map[string]interface{})
	}{
		{
			name: "with profile",
			setupMocks: func(mockSvc *MockMeGetter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().GetMe(gomock.Any(), userID).Return(user, profile, nil)
			},
			expectedStatusCode: http.StatusOK,
			checkBody: func(t *testing.T, resp map[string]interface{}) {
				assert.Equal(t, "john_doe", resp["username"])
				embedded, ok := resp["user_profile"].(map[string]interface{})
				assert.True(t, ok)
				assert.Equal(t, "John", embedded["name"])
				assert.Equal(t, "181.50", embedded["height_cm"])
				assert.Equal(t, "1990-05-01", embedded["birthdate"])
			},
		},
		{
			name: "without profile",
			setupMocks: func(mockSvc *MockMeGetter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().GetMe(gomock.Any(), userID).Return(user, nil, nil)
			},
			expectedStatusCode: http.StatusOK,
			checkBody: func(t *testing.T, resp map[string]interface{}) {
				_, ok := resp["user_profile"]
				assert.False(t, ok)
			},
		},
		{
			name: "unauthorized missing token",
			setupMocks: func(mockSvc *MockMeGetter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
			checkBody:          func(t *testing.T, resp map[string]interface{}) {},
		},
		{
			name: "user deleted after token issued",
			setupMocks: func(mockSvc *MockMeGetter, mockTokener *MockTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{UserID: userID}, nil)
				mockSvc.EXPECT().GetMe(gomock.Any(), userID).Return(nil, nil, services.ErrNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			checkBody:          func(t *testing.T, resp map[string]interface{}) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockMeGetter(ctrl)
			mockTokener := NewMockTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/users/me", nil)
			rr := httptest.NewRecorder()

			handler := NewMeHandler(mockSvc, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			var resp map[string]interface{}
			err := json.NewDecoder(rr.Body).Decode(&resp)
			assert.NoError(t, err)
			tt.checkBody(t, resp)
		})
	}
}
