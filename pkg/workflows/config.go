package workflows

import (
	"time"

	"github.com/10Narratives/workflows/pkg/lro"
)

type Config struct {
	Endpoint string         `yaml:"endpoint" env:"WORKFLOWS_ENDPOINT" env-default:"127.0.0.1:8086"`
	TLS      TLSConfig      `yaml:"tls"`
	Retry    RetryConfig    `yaml:"retry"`
	Polling  lro.PollConfig `yaml:"polling"`
}

type TLSConfig struct {
	Enabled bool `yaml:"enabled" env:"WORKFLOWS_TLS" env-default:"false"`
	// CAFile is a PEM bundle. System roots are used when empty.
	CAFile string `yaml:"ca_file" env:"WORKFLOWS_TLS_CA"`
}

// RetryConfig drives the backoff of retried calls and the timeout of every
// call.
type RetryConfig struct {
	Initial    time.Duration `yaml:"initial" env:"WORKFLOWS_RETRY_INITIAL" env-default:"100ms"`
	Max        time.Duration `yaml:"max" env:"WORKFLOWS_RETRY_MAX" env-default:"60s"`
	Multiplier float64       `yaml:"multiplier" env:"WORKFLOWS_RETRY_MULTIPLIER" env-default:"1.3"`
	Timeout    time.Duration `yaml:"timeout" env:"WORKFLOWS_CALL_TIMEOUT" env-default:"600s"`
}

func DefaultConfig() *Config {
	return &Config{
		Endpoint: "127.0.0.1:8086",
		Retry:    DefaultRetryConfig(),
		Polling:  lro.DefaultPollConfig(),
	}
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Initial:    100 * time.Millisecond,
		Max:        60 * time.Second,
		Multiplier: 1.3,
		Timeout:    600 * time.Second,
	}
}
