package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "math-server")
	assert.Empty(t, stderr.String())
}

func TestRunUsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--port"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage error: flag needs an argument")
}

func TestRunStartupError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"--host", "127.0.0.1", "--port", "0", "-n", "0"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "An error occurred: server error: ")
}
