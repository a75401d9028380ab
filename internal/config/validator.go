package config

import (
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// ValidateConfig validates configuration values and returns an error if any
// are invalid. Call after viper has loaded the configuration.
func ValidateConfig() error {
	var errors []string

	if viper.IsSet("compare.threshold") {
		t := viper.GetFloat64("compare.threshold")
		if math.IsNaN(t) || t < 0 {
			errors = append(errors, fmt.Sprintf("compare.threshold must be >= 0, got: %v", t))
		}
	}

	if viper.IsSet("fmt.tool") && viper.GetString("fmt.tool") == "" {
		errors = append(errors, "fmt.tool must not be empty")
	}

	if viper.GetBool("metrics.enabled") {
		gateway := viper.GetString("metrics.gateway")
		if gateway == "" {
			errors = append(errors, "metrics.gateway must be set when metrics.enabled is true")
		} else if u, err := url.Parse(gateway); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, fmt.Sprintf("metrics.gateway must be a valid URL, got: %q", gateway))
		}
		if viper.GetString("metrics.job") == "" {
			errors = append(errors, "metrics.job must not be empty")
		}
	}

	if viper.GetBool("notify.slack.enabled") {
		if !strings.HasPrefix(viper.GetString("notify.slack.channel"), "#") {
			errors = append(errors, fmt.Sprintf("notify.slack.channel must start with '#', got: %q", viper.GetString("notify.slack.channel")))
		}
	}

	if len(errors) > 0 {
		errorMsg := errors[0]
		for i := 1; i < len(errors); i++ {
			errorMsg += "\n  " + errors[i]
		}
		return fmt.Errorf("configuration validation failed:\n  %s", errorMsg)
	}

	return nil
}
