package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pkgward.dev/pkg/pkgward/internal/domain"
	m "pkgward.dev/pkg/pkgward/internal/model"
)

// setViperKey overrides a viper key for the duration of one test.
func setViperKey(t *testing.T, key string, value interface{}) {
	t.Helper()

	previous := viper.Get(key)
	viper.Set(key, value)
	t.Cleanup(func() { viper.Set(key, previous) })
}

func TestResolveRoot(t *testing.T) {
	assert.Equal(t, m.Path("some/dir"), resolveRoot([]string{"some/dir"}))

	setViperKey(t, srcConfigKey, "configured-src")
	assert.Equal(t, m.Path("configured-src"), resolveRoot(nil))

	setViperKey(t, srcConfigKey, defaultSrcRoot)
	assert.Equal(t, m.Path("src"), resolveRoot([]string{}))
}

func TestResolveMode(t *testing.T) {
	t.Run("default is path mode without advisory", func(t *testing.T) {
		setViperKey(t, prefixConfigKey, "")
		setViperKey(t, advisoryPrefixConfigKey, "")

		mode, ok := resolveMode().(domain.PathMode)
		require.True(t, ok)
		assert.True(t, mode.AdvisoryPrefix.IsEmpty())
	})

	t.Run("configured prefix selects prefix mode", func(t *testing.T) {
		setViperKey(t, prefixConfigKey, "com.example")

		mode, ok := resolveMode().(domain.PrefixMode)
		require.True(t, ok)
		assert.Equal(t, m.Namespace("com.example"), mode.Prefix)
	})

	t.Run("advisory prefix rides along in path mode", func(t *testing.T) {
		setViperKey(t, prefixConfigKey, "")
		setViperKey(t, advisoryPrefixConfigKey, "com.example")

		mode, ok := resolveMode().(domain.PathMode)
		require.True(t, ok)
		assert.Equal(t, m.Namespace("com.example"), mode.AdvisoryPrefix)
	})

	t.Run("prefix mode wins when both are configured", func(t *testing.T) {
		setViperKey(t, prefixConfigKey, "com.example")
		setViperKey(t, advisoryPrefixConfigKey, "org.other")

		_, ok := resolveMode().(domain.PrefixMode)
		require.True(t, ok)
	})
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "pkgward", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "path mode")
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances
	assert.NotNil(t, ui)
	assert.NotNil(t, fsAdapter)
	assert.NotNil(t, scanner)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, registry)
	assert.NotNil(t, vcs)
	assert.NotNil(t, workflow)
}
