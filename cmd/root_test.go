package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh command tree with args and returns what it printed.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootCmd_Help(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "generate")
	assert.Contains(t, out, "render")
	assert.Contains(t, out, "version")
}

func TestBindFlagToConfig(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("sample", "fallback", "")
	bindFlagToConfig(flags.Lookup("sample"), "test.sample")
	assert.Equal(t, "fallback", viper.GetString("test.sample"))

	require.NoError(t, flags.Parse([]string{"--sample=given"}))
	assert.Equal(t, "given", viper.GetString("test.sample"))
}

func TestEnvironmentFeedsFlags(t *testing.T) {
	t.Setenv("CSFORGE_COMPILER", "/opt/csc")

	cmd := newRenderCmd()
	require.NoError(t, cmd.ParseFlags(nil))
	assert.Equal(t, "/opt/csc", viper.GetString(compilerKey))
}

func TestReadConfigWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	assert.NoError(t, readConfig())
	assert.NoFileExists(t, filepath.Join(dir, "csforge.yaml"))
}
