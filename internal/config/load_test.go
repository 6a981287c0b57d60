package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	sys := &testSystem{GetenvFunc: envMap(map[string]string{EnvConfigPath: path})}

	cfg, err := Load(sys)
	require.NoError(t, err)
	assert.False(t, cfg.Found)
	assert.Equal(t, path, cfg.Source)
	assert.Empty(t, cfg.VendorRoot)
	assert.Empty(t, cfg.OSReleasePaths)
	assert.Empty(t, cfg.BashVariant)
	assert.Empty(t, cfg.LogLevel)
}

func TestLoad_ReadsFile(t *testing.T) {
	path := writeConfig(t, `
vendor_root = "/opt/shell-tool-mcp/vendor"
os_release_paths = ["/host/etc/os-release"]
bash_variant = "debian-12"
log_level = "debug"
`)
	sys := &testSystem{GetenvFunc: envMap(map[string]string{EnvConfigPath: path})}

	cfg, err := Load(sys)
	require.NoError(t, err)
	assert.True(t, cfg.Found)
	assert.Equal(t, "/opt/shell-tool-mcp/vendor", cfg.VendorRoot)
	assert.Equal(t, []string{"/host/etc/os-release"}, cfg.OSReleasePaths)
	assert.Equal(t, "debian-12", cfg.BashVariant)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "vendor_root = \"/from/file\"\nbash_variant = \"debian-12\"\nlog_level = \"info\"\n")
	sys := &testSystem{GetenvFunc: envMap(map[string]string{
		EnvConfigPath:  path,
		EnvVendorRoot:  "/from/env",
		EnvBashVariant: "centos-9",
		EnvLogLevel:    "trace",
	})}

	cfg, err := Load(sys)
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.VendorRoot)
	assert.Equal(t, "centos-9", cfg.BashVariant)
	assert.Equal(t, "trace", cfg.LogLevel)
}

func TestLoad_BlankEnvDoesNotOverride(t *testing.T) {
	path := writeConfig(t, "vendor_root = \"/from/file\"\n")
	sys := &testSystem{GetenvFunc: envMap(map[string]string{
		EnvConfigPath: path,
		EnvVendorRoot: "   ",
	})}

	cfg, err := Load(sys)
	require.NoError(t, err)
	assert.Equal(t, "/from/file", cfg.VendorRoot)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "vendor_root = \"/v\"\nvendor_dir = \"/typo\"\n")
	sys := &testSystem{GetenvFunc: envMap(map[string]string{EnvConfigPath: path})}

	_, err := Load(sys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "unrecognized config keys")
}

func TestLoad_RejectsSyntaxError(t *testing.T) {
	path := writeConfig(t, "vendor_root = \n")
	sys := &testSystem{GetenvFunc: envMap(map[string]string{EnvConfigPath: path})}

	_, err := Load(sys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), path)
}

func TestLoad_RejectsInvalidLogLevel(t *testing.T) {
	path := writeConfig(t, "log_level = \"verbose\"\n")
	sys := &testSystem{GetenvFunc: envMap(map[string]string{EnvConfigPath: path})}

	_, err := Load(sys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "trace, debug, info, warn, error, off")
}

func TestLoad_RejectsInvalidLogLevelFromEnv(t *testing.T) {
	sys := &testSystem{GetenvFunc: envMap(map[string]string{
		EnvConfigPath: filepath.Join(t.TempDir(), "absent.toml"),
		EnvLogLevel:   "chatty",
	})}

	_, err := Load(sys)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_RejectsEmptyOSReleasePath(t *testing.T) {
	path := writeConfig(t, "os_release_paths = [\"/etc/os-release\", \"\"]\n")
	sys := &testSystem{GetenvFunc: envMap(map[string]string{EnvConfigPath: path})}

	_, err := Load(sys)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "os_release_paths")
}

func TestLoad_ReadFailure(t *testing.T) {
	cause := errors.New("permission denied")
	sys := &testSystem{
		GetenvFunc:   envMap(map[string]string{EnvConfigPath: "/etc/shell-tool-mcp.toml"}),
		ReadFileFunc: func(string) ([]byte, error) { return nil, cause },
	}

	_, err := Load(sys)
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.Reset()
	t.Cleanup(homedir.Reset)

	dir := filepath.Join(home, ".config", "shell-tool-mcp")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "vendor_root = \"~/tools/vendor\"\nos_release_paths = [\"~/os-release\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	sys := &testSystem{GetenvFunc: func(key string) string {
		if key == EnvConfigPath {
			return ""
		}
		return os.Getenv(key)
	}}
	cfg, err := Load(sys)
	require.NoError(t, err)
	assert.True(t, cfg.Found)
	assert.Equal(t, filepath.Join(dir, "config.toml"), cfg.Source)
	assert.Equal(t, filepath.Join(home, "tools", "vendor"), cfg.VendorRoot)
	assert.Equal(t, []string{filepath.Join(home, "os-release")}, cfg.OSReleasePaths)
}

func TestPath_ExpandFailure(t *testing.T) {
	orig := expandHome
	expandHome = func(string) (string, error) { return "", errors.New("no home") }
	t.Cleanup(func() { expandHome = orig })

	_, err := Path(&testSystem{GetenvFunc: envMap(nil)})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), DefaultPath))
}

func TestPath_PrefersEnv(t *testing.T) {
	got, err := Path(&testSystem{GetenvFunc: envMap(map[string]string{EnvConfigPath: "/srv/cfg.toml"})})
	require.NoError(t, err)
	assert.Equal(t, "/srv/cfg.toml", got)
}

func TestParse_EmptyDocument(t *testing.T) {
	cfg, err := Parse(nil, "inline")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestValidate_AcceptsEmpty(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate("inline"))
	assert.NoError(t, (&Config{LogLevel: "OFF"}).Validate("inline"))
}
