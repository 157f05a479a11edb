package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvalCmd(t *testing.T) {
	// Not t.Parallel(): captureStdout swaps the process-global os.Stdout.
	path := filepath.Join(t.TempDir(), "doc.sst")
	require.NoError(t, os.WriteFile(path, []byte(`\def{greet}{hi}\greet`), 0o600))

	cmd := newEvalCmd()
	cmd.SetArgs([]string{path})

	out := captureStdout(t, func() {
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, `"text": "hi"`)
}
