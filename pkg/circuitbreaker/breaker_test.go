package circuitbreaker

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream unavailable")

func TestExecute_ReturnsTypedResult(t *testing.T) {
	cb := NewCircuitBreaker(DefaultConfig("test"))

	got, err := Execute(cb, func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	ptr, err := Execute(cb, func() (*int, error) { return nil, nil })
	require.NoError(t, err)
	assert.Nil(t, ptr)
}

func TestExecute_OpensAfterRepeatedFailures(t *testing.T) {
	cb := NewCircuitBreaker(DefaultConfig("test"))

	for i := 0; i < 3; i++ {
		_, err := Execute(cb, func() (int, error) { return 0, errUpstream })
		assert.ErrorIs(t, err, errUpstream)
	}
	assert.True(t, IsCircuitOpen(cb))

	called := false
	_, err := Execute(cb, func() (int, error) {
		called = true
		return 1, nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Contains(t, err.Error(), "circuit breaker 'test' is open")
}

func TestExecute_CancelledCallsDoNotCount(t *testing.T) {
	cb := NewCircuitBreaker(DefaultConfig("test"))

	for i := 0; i < 5; i++ {
		_, err := Execute(cb, func() (int, error) { return 0, context.Canceled })
		assert.ErrorIs(t, err, context.Canceled)
	}
	assert.False(t, IsCircuitOpen(cb))
}
