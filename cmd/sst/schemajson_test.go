package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaJSONCmd_Doc(t *testing.T) {
	// Not t.Parallel(): captureStdout swaps the process-global os.Stdout.
	cmd := newSchemaJSONCmd()
	cmd.SetArgs([]string{"doc"})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "SST Doc")
}

func TestSchemaJSONCmd_Instance(t *testing.T) {
	// Not t.Parallel(): captureStdout swaps the process-global os.Stdout.
	cmd := newSchemaJSONCmd()
	cmd.SetArgs([]string{"instance"})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "SST Instance")
}

func TestSchemaJSONCmd_InvalidName(t *testing.T) {
	t.Parallel()

	cmd := newSchemaJSONCmd()
	cmd.SetArgs([]string{"bogus"})

	require.Error(t, cmd.Execute())
}
