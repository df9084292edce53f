package apperror_test

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and details", func(t *testing.T) {
		err := apperror.New(apperror.CodeInsufficientBalance, "insufficient leave balance", http.StatusBadRequest).
			WithDetails(map[string]any{"remaining": 5, "requested": 26})

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeInsufficientBalance, got.Code)
		assert.Equal(t, map[string]any{"remaining": 5, "requested": 26}, got.Details)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := errors.Join(errors.New("outer"), apperror.ErrNotFound)

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusNotFound, got.Status)
		assert.Equal(t, apperror.CodeNotFound, got.Code)
	})

	t.Run("unknown error becomes internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.NotContains(t, got.Message, "connection refused")
	})
}

func TestHasCodeAndIs(t *testing.T) {
	base := apperror.New(apperror.CodeIllegalTransition, "action not permitted in current state", http.StatusConflict)
	withDetails := base.WithDetails(map[string]any{"status": "APPROVED"})

	assert.True(t, apperror.HasCode(withDetails, apperror.CodeIllegalTransition))
	assert.False(t, apperror.HasCode(withDetails, apperror.CodeConflict))
	assert.True(t, errors.Is(withDetails, base))
	assert.Nil(t, base.Details)
}

func TestStorageUnavailableWrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: timeout")

	err := apperror.StorageUnavailable(cause)

	assert.Equal(t, apperror.CodeStorageUnavailable, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus)
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		LeaveTypeID string `json:"leave_type_id" validate:"required"`
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})
	err := v.Struct(payload{})

	mapped := apperror.MapValidationError(err)

	assert.True(t, apperror.HasCode(mapped, apperror.CodeValidationError))
	assert.Equal(t, "Leave Type Id is required", mapped.Error())
}
