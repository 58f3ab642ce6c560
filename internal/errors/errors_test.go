package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	errFirst  = New("first")
	errSecond = New("second")
)

func TestIsAny(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", Wrap(errSecond, "find"))

	assert.True(t, IsAny(wrapped, errFirst, errSecond))
	assert.False(t, IsAny(wrapped, errFirst))
	assert.False(t, IsAny(wrapped))
	assert.False(t, IsAny(nil, errFirst))
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestCause(t *testing.T) {
	err := Wrapf(Wrap(errFirst, "inner"), "outer %s", "call")

	assert.Same(t, errFirst, Cause(err))
	assert.Equal(t, "outer call: inner: first", err.Error())
}
