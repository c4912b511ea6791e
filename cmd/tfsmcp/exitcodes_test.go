package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError_CarriesCodeAndMessage(t *testing.T) {
	err := exitError(ExitServerError, "server failed: %v", errors.New("boom"))
	assert.Equal(t, ExitServerError, err.ExitCode())
	assert.Equal(t, "server failed: boom", err.Error())
}

func TestExitError_UnwrapsThroughErrorsAs(t *testing.T) {
	var wrapped error = exitError(ExitInvalidConfig, "bad port")
	var ece *exitCodeError
	assert.True(t, errors.As(wrapped, &ece))
	assert.Equal(t, ExitInvalidConfig, ece.ExitCode())
}
