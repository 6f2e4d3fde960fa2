package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStatusError struct {
	status int
	msg    string
	field  string
}

func (e *testStatusError) Error() string     { return e.msg }
func (e *testStatusError) StatusCode() int   { return e.status }
func (e *testStatusError) FieldName() string { return e.field }

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, "Created", map[string]int{"id": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Created", body["message"])
	assert.Equal(t, float64(3), body["data"].(map[string]interface{})["id"])
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "not found",
			err:        &testStatusError{status: http.StatusNotFound, msg: "appointment not found"},
			wantStatus: http.StatusNotFound,
			wantMsg:    "appointment not found",
		},
		{
			name:       "wrapped conflict",
			err:        fmt.Errorf("delete: %w", &testStatusError{status: http.StatusConflict, msg: "slot is booked"}),
			wantStatus: http.StatusConflict,
			wantMsg:    "slot is booked",
		},
		{
			name:       "field validation",
			err:        &testStatusError{status: http.StatusBadRequest, msg: "schedules is required", field: "schedules"},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Validation failed",
		},
		{
			name:       "plain error hides details",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FromError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMsg, body["message"])
		})
	}
}

func TestFromErrorFieldPayload(t *testing.T) {
	rec := httptest.NewRecorder()
	FromError(rec, &testStatusError{status: http.StatusBadRequest, msg: "schedules is required", field: "schedules"})

	body := decode(t, rec)
	fields := body["error"].(map[string]interface{})
	assert.Equal(t, "schedules is required", fields["schedules"])
}
