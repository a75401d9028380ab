package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"benchgate/internal/telemetry"
)

// SlackTokenEnv is the only place the Slack token is read from; it never
// lives in config files.
const SlackTokenEnv = "SLACK_BOT_USER_TOKEN"

// Load initializes the configuration from file and environment variables.
func Load(cfgFile string) {
	// explicit .env loading; a missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for benchgate.yaml in the working directory.
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("benchgate")
	}

	viper.SetEnvPrefix("BENCHGATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	viper.SetDefault("compare.threshold", 0.10)
	viper.SetDefault("compare.base_rev", "")
	viper.SetDefault("compare.head_rev", "")
	viper.SetDefault("fmt.tool", "node")
	viper.SetDefault("benchstat.pkg", "")
	viper.SetDefault("metrics.enabled", false)
	viper.SetDefault("metrics.gateway", "http://localhost:9091")
	viper.SetDefault("metrics.job", "benchgate")

	// Notification defaults: Slack turns on by itself when a token is present.
	viper.SetDefault("notify.slack.enabled", os.Getenv(SlackTokenEnv) != "")
	viper.SetDefault("notify.slack.channel", "#benchmarks")

	if err := viper.ReadInConfig(); err == nil {
		telemetry.LogDebug("using config file", "path", viper.ConfigFileUsed())
	}
}

// SlackToken returns the bot token from the environment.
func SlackToken() string {
	return os.Getenv(SlackTokenEnv)
}
