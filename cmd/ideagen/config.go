package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds the CLI configuration, resolved from defaults, an optional
// ideagen.yml settings file, and IDEAGEN_* environment variables.
type Settings struct {
	ReportsDir         string
	ScalaVersion       string
	SourceClassifiers  []string
	JavadocClassifiers []string
	Keyring            string
	LogLevel           string
	LogFormat          string
}

// loadSettings resolves CLI settings. With an empty configFile the settings
// file is optional; a named file that cannot be read is an error.
func loadSettings(configFile string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("reports_dir", "target/ideagen-reports")
	v.SetDefault("scala_version", "")
	v.SetDefault("classifiers.sources", []string{"sources"})
	v.SetDefault("classifiers.javadocs", []string{"javadoc"})
	v.SetDefault("keyring", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetEnvPrefix("IDEAGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		v.SetConfigName("ideagen")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read settings: %w", err)
			}
		}
	}

	return &Settings{
		ReportsDir:         v.GetString("reports_dir"),
		ScalaVersion:       v.GetString("scala_version"),
		SourceClassifiers:  v.GetStringSlice("classifiers.sources"),
		JavadocClassifiers: v.GetStringSlice("classifiers.javadocs"),
		Keyring:            v.GetString("keyring"),
		LogLevel:           v.GetString("logging.level"),
		LogFormat:          v.GetString("logging.format"),
	}, nil
}
