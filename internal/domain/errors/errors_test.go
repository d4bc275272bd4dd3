package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsMatchesSentinel(t *testing.T) {
	err := errors.Wrap(ErrNotFound.WithDetails("ad 5"), "failed to get ad")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrConflict))
	assert.Equal(t, http.StatusNotFound, StatusOf(err))
	assert.Equal(t, ErrNotFound.Message(), MessageOf(err))
}

func TestMessageOf_Unknown(t *testing.T) {
	err := errors.New("socket closed")

	assert.Equal(t, GenericMessage, MessageOf(err))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
}

func TestBaseError_Error(t *testing.T) {
	assert.Equal(t, "Nie znaleziono zasobu.", ErrNotFound.Error())
	assert.Equal(t, "Nie znaleziono zasobu.: ad 5", ErrNotFound.WithDetails("ad 5").Error())
}
