package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{code: ErrReferenceNotFound, expected: http.StatusBadRequest},
		{code: ErrResourceNotFound, expected: http.StatusNotFound},
		{code: ErrResourceConflict, expected: http.StatusConflict},
		{code: ErrPayloadTooLarge, expected: http.StatusRequestEntityTooLarge},
		{code: ErrInvalidToken, expected: http.StatusUnauthorized},
		{code: "XYZ_999", expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusFor(tt.code))
		})
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrReferenceNotFound, "Loja não encontrada", map[string]any{"shop_id": "s9"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var apiErr APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	assert.Equal(t, "RES_003", apiErr.Code)
	assert.Equal(t, "Loja não encontrada", apiErr.Message)
	assert.Equal(t, map[string]any{"shop_id": "s9"}, apiErr.Details)
}
