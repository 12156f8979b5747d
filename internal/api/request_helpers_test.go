package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/api-wrapper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathInt(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    int
		expectedErr error
	}{
		{name: "positive", value: "42", expected: 42},
		{name: "negative", value: "-3", expected: -3},
		{name: "zero", value: "0", expected: 0},
		{name: "missing", value: "", expectedErr: domain.ErrValidation},
		{name: "letters", value: "abc", expectedErr: domain.ErrInvalidID},
		{name: "float", value: "1.5", expectedErr: domain.ErrInvalidID},
		{name: "overflow", value: "99999999999999999999999", expectedErr: domain.ErrInvalidID},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("post_id", tc.value)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			got, err := getPathInt(req, "post_id")
			if tc.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}
