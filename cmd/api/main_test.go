package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountCommand_ReadsWithoutIncrementing(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "aws-config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "aws-credentials"))
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("MAIL_BACKEND", "log")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("BOLT_PATH", filepath.Join(dir, "visitors.bolt"))

	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		cmd := NewRootCmd()
		cmd.SetOut(&out)
		cmd.SetArgs([]string{"count", "--backend", "bolt"})

		require.NoError(t, cmd.Execute())
		assert.Equal(t, "0", strings.TrimSpace(out.String()))
	}
}

func TestRootCommand_RejectsUnknownMode(t *testing.T) {
	t.Setenv("MAIL_BACKEND", "log")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"count", "--backend", "memory", "--mode", "optimistic"})

	assert.Error(t, cmd.Execute())
}
