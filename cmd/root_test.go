package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_ShowsHelpWithoutSubcommand(t *testing.T) {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	t.Cleanup(func() { rebindGlobalFlags(t) })

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "markhound")
	assert.Contains(t, out.String(), "--exclude-markers")
}

func TestRootCmd_UnknownFlagFails(t *testing.T) {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	t.Cleanup(func() { rebindGlobalFlags(t) })

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--definitely-not-a-flag"})

	assert.Error(t, cmd.Execute())
}
