package cmd

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/internal/logger"
	"github.com/spf13/viper"
)

const (
	configBaseName   = "csforge"
	configFolderPath = "."
	envPrefix        = "CSFORGE"

	namespaceKey       = "namespace"
	indentKey          = "indent"
	propertySpacingKey = "property_spacing"
	valueSemanticsKey  = "value_semantics"
	toStringKey        = "to_string"
	outKey             = "out"
	diffKey            = "diff"
	compilerKey        = "compiler"
	concurrencyKey     = "concurrency"

	logFilenameKey   = "log.filename"
	logDebugKey      = "log.debug"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"

	defaultIndent        = "    "
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
)

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(indentKey, defaultIndent)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
}

// readConfig loads csforge.yaml when there is one. A missing file is not an
// error.
func readConfig() error {
	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	return errors.Wrap(err, "reading config")
}

func configureLogger() error {
	return logger.Initialize(logger.Options{
		Debug:      viper.GetBool(logDebugKey),
		File:       viper.GetString(logFilenameKey),
		MaxSizeMB:  viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAgeDays: viper.GetInt(logMaxAgeKey),
	})
}
