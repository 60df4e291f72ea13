package apperrors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsSentinelMatchable(t *testing.T) {
	err := Wrap(ErrCapacity, "ride %s", "abc")
	assert.True(t, errors.Is(err, ErrCapacity))
	assert.Contains(t, err.Error(), "ride abc")
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrUnauthorized, http.StatusForbidden},
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidTransition, http.StatusConflict},
		{ErrCapacity, http.StatusConflict},
		{ErrDuplicateBooking, http.StatusConflict},
		{ErrSelfBooking, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
		assert.Equal(t, tc.want, HTTPStatus(Wrap(tc.err, "wrapped")))
	}
}
