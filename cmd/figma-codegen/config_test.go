package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T, flags map[string]string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	addSourceFlags(cmd)
	for name, value := range flags {
		require.NoError(t, cmd.Flags().Set(name, value))
	}
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "figma-codegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		cfg, err := loadConfig(newTestCmd(t, map[string]string{"file": "design.json", "node-ids": "1-2,3:4"}), "")
		require.NoError(t, err)
		assert.Equal(t, "design.json", cfg.File)
		assert.Equal(t, defaultOut, cfg.Out)

		opts := cfg.options(nil)
		assert.Equal(t, "design.json", opts.FilePath)
		assert.Equal(t, []string{"1:2", "3:4"}, opts.NodeIDs)
	})

	t.Run("config file", func(t *testing.T) {
		path := writeConfig(t, "file: design.json\nselect: \"**/Card\"\ncomponent: Card\nout: generated\n")
		cfg, err := loadConfig(newTestCmd(t, nil), path)
		require.NoError(t, err)
		assert.Equal(t, "**/Card", cfg.Select)
		assert.Equal(t, "Card", cfg.Component)
		assert.Equal(t, "generated", cfg.Out)
	})

	t.Run("flag beats config file", func(t *testing.T) {
		path := writeConfig(t, "file: design.json\nout: generated\n")
		cfg, err := loadConfig(newTestCmd(t, map[string]string{"out": "elsewhere"}), path)
		require.NoError(t, err)
		assert.Equal(t, "elsewhere", cfg.Out)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("FIGMA_CODEGEN_URL", "https://www.figma.com/design/KEY/Name")
		t.Setenv("FIGMA_CODEGEN_TOKEN", "secret")
		t.Setenv("FIGMA_CODEGEN_NODE_IDS", "5:6")

		cfg, err := loadConfig(newTestCmd(t, nil), "")
		require.NoError(t, err)
		assert.Equal(t, "secret", cfg.Token)
		assert.Equal(t, "5:6", cfg.NodeIDs)
	})

	t.Run("no source", func(t *testing.T) {
		_, err := loadConfig(newTestCmd(t, map[string]string{"url": "https://www.figma.com/design/KEY/Name"}), "")
		assert.ErrorIs(t, err, ErrNoSource)
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := loadConfig(newTestCmd(t, map[string]string{"file": "design.json"}), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}
