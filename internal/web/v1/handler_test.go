package v1_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ecilanotrub/users-microservice/internal/core/domain"
	webv1 "github.com/ecilanotrub/users-microservice/internal/web/v1"
	"github.com/ecilanotrub/users-microservice/internal/web/v1/mocks"
)

func newRouter(svc *mocks.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	webv1.NewUserHandler(svc).Register(r)
	return r
}

func TestUserHandler_CreateUser(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.UserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "Created",
			body: `{"username": "alice"}`,
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("CreateUser", mock.Anything, "alice").
					Return(domain.CreatedResponse("1"), nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"createdId":"1"`,
		},
		{
			name: "Conflict",
			body: `{"username": "alice"}`,
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("CreateUser", mock.Anything, "alice").
					Return(domain.ConflictResponse("Username alice already exists"), nil)
			},
			wantStatus: http.StatusConflict,
			wantBody:   "Username alice already exists",
		},
		{
			name:         "Bad request: missing username",
			body:         `{}`,
			mockBehavior: func(svc *mocks.UserService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:         "Bad request: malformed JSON",
			body:         `{"username": "alice`,
			mockBehavior: func(svc *mocks.UserService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"username": "alice"}`,
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("CreateUser", mock.Anything, "alice").
					Return(domain.ServiceResponse{}, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.UserService)
			tt.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			if tt.wantStatus == http.StatusInternalServerError {
				assert.Empty(t, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_CreateUser_SetsLocation(t *testing.T) {
	svc := new(mocks.UserService)
	svc.On("CreateUser", mock.Anything, "alice").
		Return(domain.CreatedResponse("7"), nil)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	newRouter(svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/users", w.Header().Get("Location"))
}

func TestUserHandler_GetAllUsers(t *testing.T) {
	tests := []struct {
		name         string
		mockBehavior func(svc *mocks.UserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "Returns users",
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("GetAllUsers", mock.Anything).Return([]domain.UserResponse{
					{UserID: 1, Username: "Bob1965"},
					{UserID: 2, Username: "Alice1991"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"userId":1,"username":"Bob1965"},{"userId":2,"username":"Alice1991"}]`,
		},
		{
			name: "Empty store returns empty array",
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("GetAllUsers", mock.Anything).Return([]domain.UserResponse{}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "Internal error",
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("GetAllUsers", mock.Anything).Return(nil, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.UserService)
			tt.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			w := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_UpdateUser(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		body         string
		mockBehavior func(svc *mocks.UserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "No content on success",
			path: "/users/1",
			body: `{"username": "bob"}`,
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("UpdateUser", mock.Anything, 1, "bob").
					Return(domain.SuccessResponse(), nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:         "Bad request: non-numeric id",
			path:         "/users/abc",
			body:         `{"username": "x"}`,
			mockBehavior: func(svc *mocks.UserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "User ID was either not specified or was invalid",
		},
		{
			name:         "Bad request: non-positive id",
			path:         "/users/0",
			body:         `{"username": "x"}`,
			mockBehavior: func(svc *mocks.UserService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "Conflict",
			path: "/users/1",
			body: `{"username": "taken"}`,
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("UpdateUser", mock.Anything, 1, "taken").
					Return(domain.ConflictResponse("Username taken already exists"), nil)
			},
			wantStatus: http.StatusConflict,
			wantBody:   "Username taken already exists",
		},
		{
			name: "Not found",
			path: "/users/42",
			body: `{"username": "bob"}`,
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("UpdateUser", mock.Anything, 42, "bob").
					Return(domain.NotFoundResponse("User not found with given ID 42"), nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "User not found with given ID 42",
		},
		{
			name: "Internal error",
			path: "/users/1",
			body: `{"username": "bob"}`,
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("UpdateUser", mock.Anything, 1, "bob").
					Return(domain.ServiceResponse{}, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.UserService)
			tt.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPut, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestUserHandler_DeleteUser(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		mockBehavior func(svc *mocks.UserService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "No content on success",
			path: "/users/1",
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("DeleteUser", mock.Anything, 1).Return(true, nil)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "Not found",
			path: "/users/42",
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("DeleteUser", mock.Anything, 42).Return(false, nil)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "User ID 42 not found",
		},
		{
			name:         "Bad request: non-numeric id",
			path:         "/users/abc",
			mockBehavior: func(svc *mocks.UserService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     "User ID was either not specified or was invalid",
		},
		{
			name: "Internal error",
			path: "/users/1",
			mockBehavior: func(svc *mocks.UserService) {
				svc.On("DeleteUser", mock.Anything, 1).Return(false, assert.AnError)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mocks.UserService)
			tt.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			w := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
			svc.AssertExpectations(t)
		})
	}
}
