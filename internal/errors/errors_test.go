package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{name: "not found", err: ErrTaskNotFound, wantStatus: http.StatusNotFound, wantCode: "TASK_NOT_FOUND"},
		{name: "wrapped not found", err: fmt.Errorf("update: %w", ErrTaskNotFound), wantStatus: http.StatusNotFound, wantCode: "TASK_NOT_FOUND"},
		{name: "description required", err: ErrDescriptionRequired, wantStatus: http.StatusBadRequest, wantCode: "DESCRIPTION_REQUIRED"},
		{name: "description too long", err: ErrDescriptionTooLong, wantStatus: http.StatusBadRequest, wantCode: "DESCRIPTION_TOO_LONG"},
		{name: "completed required", err: ErrCompletedRequired, wantStatus: http.StatusBadRequest, wantCode: "COMPLETED_REQUIRED"},
		{name: "invalid body", err: ErrInvalidBody, wantStatus: http.StatusBadRequest, wantCode: "INVALID_BODY"},
		{name: "unauthenticated", err: ErrUnauthenticated, wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHENTICATED"},
		{name: "unknown", err: errors.New("connection refused"), wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.wantStatus, httpErr.StatusCode)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, httpErr.Message, httpErr.ToErrorResponse().Error)
		})
	}
}

func TestMapErrorToHTTP_HidesInternalDetail(t *testing.T) {
	httpErr := MapErrorToHTTP(errors.New("dial tcp 10.0.0.3:3306: i/o timeout"))
	assert.Equal(t, "internal server error", httpErr.Error())
}
