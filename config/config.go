package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config keys. Every flag has an env counterpart with the BEESOLVER_
// prefix, e.g. BEESOLVER_MIN_WORD_LENGTH.
const (
	KeyMinWordLength = "min-word-length"
	KeyDialect       = "dialect"
	KeyDataPath      = "data-path"
	KeyWordListPath  = "word-list-path"
	KeyParallel      = "parallel"
	KeyDebug         = "debug"
)

const envPrefix = "beesolver"

// Config wraps a viper instance holding all solver settings, resolved from
// flags, environment variables, and defaults, in that order of precedence.
type Config struct {
	v    *viper.Viper
	args []string
}

// Load parses args and binds environment variables. Unparsed positional
// arguments remain available through Args.
func (c *Config) Load(args []string) error {
	c.v = viper.New()

	fs := pflag.NewFlagSet("beesolver", pflag.ContinueOnError)
	fs.Int(KeyMinWordLength, 4, "minimum length for a word to count")
	fs.String(KeyDialect, "default", "word list dialect (default or alternate)")
	fs.String(KeyDataPath, "./data", "directory holding word lists")
	fs.String(KeyWordListPath, "", "explicit word list file; overrides the dialect")
	fs.Bool(KeyParallel, false, "filter the word list with parallel workers")
	fs.Bool(KeyDebug, false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	c.args = fs.Args()

	c.v.SetEnvPrefix(envPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.v.AutomaticEnv()
	return c.v.BindPFlags(fs)
}

// Args returns the positional arguments left over after flag parsing.
func (c *Config) Args() []string {
	return c.args
}

func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}

// Set overrides a setting at runtime; used by the interactive shell.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// AdjustRelativePaths rebases relative data paths onto the executable's
// directory, so the binary finds its word lists no matter where it is
// invoked from.
func (c *Config) AdjustRelativePaths(exPath string) {
	if p := c.v.GetString(KeyDataPath); p != "" && !filepath.IsAbs(p) {
		c.v.Set(KeyDataPath, filepath.Join(exPath, p))
	}
	if p := c.v.GetString(KeyWordListPath); p != "" && !filepath.IsAbs(p) {
		c.v.Set(KeyWordListPath, filepath.Join(exPath, p))
	}
}

// SanitizedSettings returns all settings for logging. Nothing here is
// secret; the indirection just keeps call sites uniform.
func (c *Config) SanitizedSettings() map[string]interface{} {
	return c.v.AllSettings()
}
