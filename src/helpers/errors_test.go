package helpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewFetchError("provider unreachable for ADBE", cause)

	assert.Equal(t, "provider unreachable for ADBE: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsFetchError(err))
	assert.False(t, IsMalformedColumnError(err))

	// Detection survives wrapping
	wrapped := fmt.Errorf("pipeline: %w", err)
	assert.True(t, IsFetchError(wrapped))
}

func TestMalformedColumnError(t *testing.T) {
	err := NewMalformedColumnError("close column length 5, expected 10", nil)

	assert.Equal(t, "close column length 5, expected 10", err.Error())
	assert.True(t, IsMalformedColumnError(err))
	assert.False(t, IsFetchError(err))
}

func TestSentinels(t *testing.T) {
	assert.True(t, errors.Is(fmt.Errorf("summarize: %w", ErrEmptyData), ErrEmptyData))
	assert.True(t, errors.Is(fmt.Errorf("summarize: %w", ErrZeroBaseline), ErrZeroBaseline))
}
