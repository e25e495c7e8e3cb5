package xerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"invalid input", InvalidInput("Wallet address required"), http.StatusBadRequest},
		{"not found", NotFound("No active loan"), http.StatusNotFound},
		{"not eligible", NotEligible("Active loan exists"), http.StatusUnprocessableEntity},
		{"store", StoreUnavailable("Failed to track user", errors.New("conn refused")), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("logic: %w", InvalidInput("bad")), http.StatusBadRequest},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestPublicMessageHidesCause(t *testing.T) {
	err := StoreUnavailable("Failed to check reputation", errors.New("dial tcp 10.0.0.1:5432: connection refused"))

	assert.Equal(t, "Failed to check reputation", PublicMessage(err))
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
	assert.Equal(t, "Internal server error", PublicMessage(errors.New("raw")))
}
