package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the deployment-level configuration, read from COURTWATCH_*
// environment variables. Per-run parameters (date, window, activity) come
// from the command line instead.
type Config struct {
	BookingBaseURL string        `envconfig:"BOOKING_BASE_URL" default:"https://zhs-courtbuchung.de"`
	NtfyBaseURL    string        `envconfig:"NTFY_BASE_URL" default:"https://ntfy.sh"`
	NtfyTopic      string        `envconfig:"NTFY_TOPIC" default:"zhsbot"`
	PollInterval   time.Duration `envconfig:"POLL_INTERVAL" default:"5s"`
	HTTPTimeout    time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (Config, error) {
	var c Config
	err := envconfig.Process("courtwatch", &c)
	return c, err
}
