package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/backend/internal/app/models/dto"
	"github.com/tutorhub/backend/internal/pkg/apperrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: 401, wantCode: dto.ErrorCodeInvalidCredentials},
		{name: "pending account", err: apperrors.ErrAccountPending, wantStatus: 401, wantCode: dto.ErrorCodeAccountPending},
		{name: "expired token", err: apperrors.ErrTokenExpired, wantStatus: 401, wantCode: dto.ErrorCodeExpiredToken},
		{name: "revoked token", err: apperrors.ErrTokenRevoked, wantStatus: 401, wantCode: dto.ErrorCodeInvalidToken},
		{name: "permission denied", err: apperrors.ErrPermissionDenied, wantStatus: 403, wantCode: dto.ErrorCodeForbidden},
		{name: "user not found", err: apperrors.ErrUserNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "class not found", err: apperrors.ErrClassNotFound, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "resource without file", err: apperrors.ErrResourceFileEmpty, wantStatus: 404, wantCode: dto.ErrorCodeResourceNotFound},
		{name: "duplicate email", err: apperrors.ErrEmailAlreadyExists, wantStatus: 400, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "duplicate enrollment", err: apperrors.ErrAlreadyEnrolled, wantStatus: 400, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "duplicate grading assignment", err: apperrors.ErrAlreadyGraded, wantStatus: 400, wantCode: dto.ErrorCodeResourceAlreadyExists},
		{name: "invalid role", err: apperrors.ErrInvalidRole, wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "bad request with message", err: apperrors.NewBadRequestError("cannot message yourself"), wantStatus: 400, wantCode: dto.ErrorCodeValidationFailed},
		{name: "unknown error", err: errors.New("boom"), wantStatus: 500, wantCode: dto.ErrorCodeInternalServer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := respondWith(t, tt.err)
			assert.Equal(t, tt.wantStatus, recorder.Code)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleAPIErrorWrappedErrors(t *testing.T) {
	wrapped := apperrors.NewConflictError("student is already assigned to this class")
	recorder, body := respondWith(t, wrapped)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
	assert.Equal(t, "student is already assigned to this class", body.Error.Message)
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	_, body := respondWith(t, errors.New("pq: connection refused"))
	assert.Equal(t, "Internal server error", body.Error.Message)
}
