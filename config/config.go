// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	// DumpMedia prints every stored media row and exits, replacing the
	// need to poke at the database file by hand
	DumpMedia = pflag.Bool("dump-media", false, "Prints all stored media records and exits")

	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
	validStorage   = []string{"channel", "s3"}
	validPolicies  = []string{"message", "record"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("bot.token", "bot_token")
	v.BindEnv("bot.owner_id", "bot_owner_id")
	v.BindEnv("bot.channel_link", "bot_channel_link")

	v.BindEnv("database.driver", "database_driver")
	v.BindEnv("database.path", "database_path")
	v.BindEnv("database.dsn", "database_dsn")

	v.BindEnv("storage.type", "storage_type")
	v.BindEnv("storage.channel_id", "storage_channel_id")

	v.BindEnv("aws.access_key", "aws_access_key")
	v.BindEnv("aws.secret_access_key", "aws_secret_access_key")
	v.BindEnv("aws.region", "aws_region")
	v.BindEnv("aws.bucket", "aws_bucket")

	v.BindEnv("ephemeral.enabled", "ephemeral_enabled")
	v.BindEnv("ephemeral.delay", "ephemeral_delay")
	v.BindEnv("ephemeral.policy", "ephemeral_policy")

	v.BindEnv("webhook.enabled", "webhook_enabled")
	v.BindEnv("webhook.domain", "webhook_domain")
	v.BindEnv("webhook.port", "webhook_port")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.path", "mediadatabase.db")

	v.SetDefault("storage.type", "channel")

	v.SetDefault("ephemeral.enabled", true)
	v.SetDefault("ephemeral.delay", 900)
	v.SetDefault("ephemeral.policy", "message")

	v.SetDefault("webhook.enabled", false)
	v.SetDefault("webhook.port", 8443)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); ok {
			return errors.New("config.toml file is missing")
		}

		return fmt.Errorf("failed to read config file, %w", err)
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetString("bot.token") == "" {
		return errors.New("bot token can't be empty")
	}

	if v.GetInt64("bot.owner_id") == 0 {
		return errors.New("no owner id provided, nobody would be able to upload media")
	}

	if !slices.Contains(validDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("database.driver") == "postgres" && v.GetString("database.dsn") == "" {
		return errors.New("database.dsn is required with the postgres driver")
	}

	switch v.GetString("storage.type") {
	case "channel":
		if v.GetInt64("storage.channel_id") == 0 {
			return errors.New("storage channel id can't be empty")
		}
	case "s3":
		if v.GetString("aws.access_key") == "" {
			return errors.New("access key can't be empty")
		}
		if v.GetString("aws.secret_access_key") == "" {
			return errors.New("secret access key can't be empty")
		}
		if v.GetString("aws.bucket") == "" {
			return errors.New("bucket can't be empty")
		}
	default:
		return errors.New("invalid storage type provided")
	}

	if !slices.Contains(validStorage, v.GetString("storage.type")) {
		return errors.New("invalid storage type provided")
	}

	if v.GetInt("ephemeral.delay") <= 0 {
		return errors.New("ephemeral.delay must be bigger than 0")
	}

	if !slices.Contains(validPolicies, v.GetString("ephemeral.policy")) {
		return errors.New("invalid ephemeral policy provided")
	}

	if v.GetBool("webhook.enabled") {
		if v.GetString("webhook.domain") == "" {
			return errors.New("no webhook domain provided")
		}

		if v.GetInt("webhook.port") <= 0 {
			return errors.New("invalid webhook port provided")
		}
	}

	return nil
}
