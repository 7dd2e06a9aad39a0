package app

import (
	stderrors "errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/varstars/pkg/constants"
	"github.com/agentstation/varstars/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "VARSTARS"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool

	// Config file
	ConfigFile string

	// Conversion settings
	ReferenceJD   float64
	ReferenceDate string
	MaxMagnitude  float64
	Format        string // star set encoding: json or yaml
	Summary       string // run summary: none, table, json, yaml or auto

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by the root command)
// 2. Environment variables (VARSTARS_*)
// 3. .env files
// 4. Config file (configFile, or ~/.varstars.yaml / ./.varstars.yaml)
// 5. Defaults
func LoadConfig(configFile string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	v.SetDefault("reference_jd", constants.ReferenceJulianDate)
	v.SetDefault("max_magnitude", constants.PulsatingMagnitudeLimit)
	v.SetDefault("format", "json")
	v.SetDefault("summary", "none")
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	if configFile == "" {
		configFile = v.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		// Search for config in standard locations
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".varstars")

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !stderrors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot read config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color") || os.Getenv("NO_COLOR") != "",

		ConfigFile: v.ConfigFileUsed(),

		ReferenceJD:   v.GetFloat64("reference_jd"),
		ReferenceDate: v.GetString("reference_date"),
		MaxMagnitude:  v.GetFloat64("max_magnitude"),
		Format:        v.GetString("format"),
		Summary:       v.GetString("summary"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	return config, nil
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are not overridden.
func loadEnvFiles() {
	envFiles := []string{
		".env.local",
		".env",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// parseReferenceDate accepts an RFC 3339 timestamp or a plain date, which
// is taken as noon UTC.
func parseReferenceDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.Add(12 * time.Hour), nil
	}
	return time.Time{}, errors.NewConfigError("reference_date",
		"want RFC 3339 timestamp or YYYY-MM-DD, got "+value, errors.ErrInvalidInput)
}
