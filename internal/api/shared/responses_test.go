package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithData(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		data         any
		expectedBody string
	}{
		{
			name:         "object payload",
			status:       http.StatusOK,
			data:         map[string]any{"id": 1},
			expectedBody: `{"success":true,"data":{"id":1}}`,
		},
		{
			name:         "array payload",
			status:       http.StatusOK,
			data:         []int{},
			expectedBody: `{"success":true,"data":[]}`,
		},
		{
			name:         "created payload",
			status:       http.StatusCreated,
			data:         map[string]any{"id": 42},
			expectedBody: `{"success":true,"data":{"id":42}}`,
		},
		{
			name:         "nil payload serializes as null",
			status:       http.StatusOK,
			data:         nil,
			expectedBody: `{"success":true,"data":null}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()

			RespondWithData(w, req, tc.status, tc.data)

			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.expectedBody, w.Body.String())
		})
	}
}

func TestRespondWithError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithError(w, req, http.StatusBadRequest, "user not found")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"err":"user not found"}`, w.Body.String())
}

func TestRespondWithErrorAndLogHidesCause(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	cause := errors.New("pq: password authentication failed for user postgres")
	RespondWithErrorAndLog(w, req, http.StatusInternalServerError, "internal server error", cause)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"err":"internal server error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "postgres")
}

// Every writer must produce one of the two fixed envelope shapes so callers
// can branch on success before inspecting data or err.
func TestEnvelopeShapes(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		RespondWithData(w, req, http.StatusOK, "value")

		var envelope map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Contains(t, envelope, "success")
		assert.Contains(t, envelope, "data")
		assert.NotContains(t, envelope, "err")
	})

	t.Run("error envelope", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		RespondWithError(w, req, http.StatusBadRequest, "nope")

		var envelope map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
		assert.Contains(t, envelope, "success")
		assert.Contains(t, envelope, "err")
		assert.NotContains(t, envelope, "data")
	})
}
