package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.True(t, config.Encode.Compress)
	assert.True(t, config.Encode.StripBinary)
	assert.True(t, config.Encode.Timestamps)
	assert.True(t, config.Decode.CheckSignature)
	assert.Empty(t, config.Decode.Fallback)
	assert.True(t, config.Warnings)
	assert.False(t, config.Verbose)
	assert.Empty(t, config.MetricsFile)
	assert.Equal(t, "info", config.Logging.Level)
	assert.NoError(t, config.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "palmdoc_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "config.yaml")
		expectedConfig := &Config{
			Encode: Encode{
				Compress:    false,
				StripBinary: true,
				Timestamps:  false,
			},
			Decode: Decode{
				CheckSignature: false,
				Fallback:       "U+FFFD",
			},
			Warnings:    false,
			Verbose:     true,
			MetricsFile: "/var/lib/node_exporter/palmdoc.prom",
			Logging: Logging{
				Level: "debug",
			},
		}

		err = SaveConfig(expectedConfig, configPath)
		require.NoError(t, err)

		loadedConfig, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.Equal(t, expectedConfig, loadedConfig)
	})

	t.Run("missing keys keep defaults", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "palmdoc_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "partial.yaml")
		err = os.WriteFile(configPath, []byte("encode:\n  compress: false\nverbose: true\n"), 0644)
		require.NoError(t, err)

		config, err := LoadConfig(configPath)
		require.NoError(t, err)
		assert.False(t, config.Encode.Compress)
		assert.True(t, config.Encode.StripBinary)
		assert.True(t, config.Decode.CheckSignature)
		assert.True(t, config.Verbose)
		assert.Equal(t, "info", config.Logging.Level)
	})

	t.Run("load non-existent config", func(t *testing.T) {
		_, err := LoadConfig("/non/existent/config.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "config file does not exist")
	})

	t.Run("load invalid yaml", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "palmdoc_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "invalid.yaml")
		err = os.WriteFile(configPath, []byte("invalid: yaml: content: ["), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("load invalid values", func(t *testing.T) {
		tmpDir, err := os.MkdirTemp("", "palmdoc_config_test")
		require.NoError(t, err)
		defer os.RemoveAll(tmpDir)

		configPath := filepath.Join(tmpDir, "bad.yaml")
		err = os.WriteFile(configPath, []byte("decode:\n  fallback: U+D800\n"), 0644)
		require.NoError(t, err)

		_, err = LoadConfig(configPath)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid decode fallback")
	})
}

func TestSaveConfig(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "palmdoc_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	configPath := filepath.Join(tmpDir, "nested", "config.yaml")
	config := DefaultConfig()

	err = SaveConfig(config, configPath)
	require.NoError(t, err)

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loadedConfig, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loadedConfig)
}

func TestConfig_LogLevel(t *testing.T) {
	testCases := []struct {
		level string
		want  slog.Level
	}{
		{level: "debug", want: slog.LevelDebug},
		{level: "info", want: slog.LevelInfo},
		{level: "WARN", want: slog.LevelWarn},
		{level: "error", want: slog.LevelError},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			config := DefaultConfig()
			config.Logging.Level = tc.level

			level, err := config.LogLevel()
			require.NoError(t, err)
			assert.Equal(t, tc.want, level)
		})
	}

	config := DefaultConfig()
	config.Logging.Level = "chatty"
	_, err := config.LogLevel()
	assert.Error(t, err)
	assert.Error(t, config.Validate())
}

func TestConfig_FallbackRune(t *testing.T) {
	config := DefaultConfig()

	r, err := config.FallbackRune()
	require.NoError(t, err)
	assert.Equal(t, rune(0), r)

	config.Decode.Fallback = "?"
	r, err = config.FallbackRune()
	require.NoError(t, err)
	assert.Equal(t, '?', r)

	config.Decode.Fallback = "0x110000"
	_, err = config.FallbackRune()
	assert.Error(t, err)
}

func TestGetDefaultConfigPath(t *testing.T) {
	path := GetDefaultConfigPath()
	assert.NotEmpty(t, path)
	assert.Contains(t, path, "palmdoc")
	assert.Contains(t, path, "config.yaml")
}

func TestConfigExists(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "palmdoc_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	existingPath := filepath.Join(tmpDir, "exists.yaml")
	nonExistentPath := filepath.Join(tmpDir, "does-not-exist.yaml")

	err = os.WriteFile(existingPath, []byte("test"), 0644)
	require.NoError(t, err)

	assert.True(t, ConfigExists(existingPath))
	assert.False(t, ConfigExists(nonExistentPath))
}

func TestConfigYAMLKeys(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, yaml.Unmarshal(data, &raw))

	assert.Contains(t, raw, "encode")
	assert.Contains(t, raw, "decode")
	assert.Contains(t, raw, "metrics_file")
	assert.Equal(t, map[string]interface{}{"compress": true, "strip_binary": true, "timestamps": true}, raw["encode"])
}

func TestSaveConfigErrorHandling(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "palmdoc_config_test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	// a regular file where the config directory should be
	blocker := filepath.Join(tmpDir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	err = SaveConfig(DefaultConfig(), filepath.Join(blocker, "config.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create config directory")
}
