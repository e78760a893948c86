package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewNotFound("project", "42"), http.StatusNotFound},
		{"invalid input", NewInvalidInput("bad body", nil), http.StatusBadRequest},
		{"conflict", NewConflict("skill", "value", "Go"), http.StatusConflict},
		{"unavailable", NewUnavailable("redis down", errors.New("dial tcp")), http.StatusServiceUnavailable},
		{"internal", NewInternal("boom", nil), http.StatusInternalServerError},
		{"plain error", errors.New("unknown"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToHTTPStatus(tc.err))
		})
	}
}

func TestAppErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUnavailable("read slot", cause)

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestToJSON(t *testing.T) {
	body := NewInvalidInput("unknown section 'foo'", nil).ToJSON()

	assert.Equal(t, "invalid input", body["error"])
	assert.Equal(t, "Invalid input provided", body["message"])
	assert.Equal(t, "unknown section 'foo'", body["details"])
}
