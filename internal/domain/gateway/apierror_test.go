package gateway

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/cetler74/linkuupapp-sub002/internal/domain/errors"
)

func TestNewAPIError_MessageExtraction(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "direct message field",
			body: `{"message": "Employee not found"}`,
			want: "Employee not found",
		},
		{
			name: "detail string",
			body: `{"detail": "Schedule rejected"}`,
			want: "Schedule rejected",
		},
		{
			name: "flat error string",
			body: `{"error": "Invalid employee input"}`,
			want: "Invalid employee input",
		},
		{
			name: "message wins over error",
			body: `{"message": "primary", "error": "secondary"}`,
			want: "primary",
		},
		{
			name: "nested error object",
			body: `{"error": {"message": "Nested failure"}}`,
			want: "Nested failure",
		},
		{
			name: "validation entry list",
			body: `{"detail": [{"loc": ["body", "first_name"], "msg": "field required"}, {"loc": ["body", "email"], "msg": "invalid email"}]}`,
			want: "first_name: field required; email: invalid email",
		},
		{
			name: "validation entry without loc",
			body: `{"detail": [{"msg": "something broke"}]}`,
			want: "something broke",
		},
		{
			name: "status line fallback for unknown shape",
			body: `{"code": 17}`,
			want: "Bad Request",
		},
		{
			name: "status line fallback for non-json body",
			body: `<html>nope</html>`,
			want: "Bad Request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := NewAPIError(http.StatusBadRequest, []byte(tt.body))
			assert.Equal(t, tt.want, apiErr.Message())
		})
	}
}

func TestNewAPIError_GenericFallback(t *testing.T) {
	// Status 599 has no standard status text.
	apiErr := NewAPIError(599, []byte(`{}`))
	assert.Equal(t, "request failed (status 599)", apiErr.Message())
}

func TestAPIError_Is(t *testing.T) {
	quota := NewAPIError(http.StatusPaymentRequired, []byte(`{"currentPlan": "basic"}`))
	assert.True(t, errors.Is(quota, domainerrors.ErrQuotaExceeded))
	assert.False(t, errors.Is(quota, domainerrors.ErrNotFound))

	wrapped := errors.Wrap(quota, "employee write failed")
	assert.True(t, errors.Is(wrapped, domainerrors.ErrQuotaExceeded), "wrapping keeps the mapping")

	missing := NewAPIError(http.StatusNotFound, []byte(`{"error": "nope"}`))
	assert.True(t, errors.Is(missing, domainerrors.ErrNotFound))

	denied := NewAPIError(http.StatusUnauthorized, nil)
	assert.True(t, errors.Is(denied, domainerrors.ErrUnauthorized))
}

func TestAPIError_QuotaPayload(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		apiErr := NewAPIError(http.StatusPaymentRequired,
			[]byte(`{"currentPlan": "pro", "upgradePlan": "business", "currentCount": 4}`))

		payload, ok := apiErr.QuotaPayload()
		require.True(t, ok)
		assert.Equal(t, "pro", payload.CurrentPlan)
		assert.Equal(t, "business", payload.UpgradePlan)
		require.NotNil(t, payload.CurrentCount)
		assert.Equal(t, 4, *payload.CurrentCount)
	})

	t.Run("count absent", func(t *testing.T) {
		apiErr := NewAPIError(http.StatusPaymentRequired, []byte(`{"currentPlan": "basic"}`))

		payload, ok := apiErr.QuotaPayload()
		require.True(t, ok)
		assert.Nil(t, payload.CurrentCount)
	})

	t.Run("wrong status", func(t *testing.T) {
		apiErr := NewAPIError(http.StatusBadRequest, []byte(`{"currentPlan": "basic"}`))

		_, ok := apiErr.QuotaPayload()
		assert.False(t, ok)
	})
}
