package lro

import (
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

type PollConfig struct {
	InitialInterval     time.Duration `yaml:"initial_interval" env:"LRO_POLL_INITIAL_INTERVAL" env-default:"1s"`
	MaxInterval         time.Duration `yaml:"max_interval" env:"LRO_POLL_MAX_INTERVAL" env-default:"60s"`
	Multiplier          float64       `yaml:"multiplier" env:"LRO_POLL_MULTIPLIER" env-default:"1.5"`
	RandomizationFactor float64       `yaml:"randomization_factor" env:"LRO_POLL_RANDOMIZATION_FACTOR" env-default:"0"`
}

func DefaultPollConfig() PollConfig {
	return PollConfig{
		InitialInterval: time.Second,
		MaxInterval:     time.Minute,
		Multiplier:      1.5,
	}
}

// newBackOff never stops on its own; the wait deadline is enforced by the
// caller.
func (c PollConfig) newBackOff() backoff.BackOff {
	defaults := DefaultPollConfig()

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.InitialInterval
	if b.InitialInterval <= 0 {
		b.InitialInterval = defaults.InitialInterval
	}
	b.MaxInterval = max(c.MaxInterval, b.InitialInterval)
	b.Multiplier = c.Multiplier
	if b.Multiplier < 1 {
		b.Multiplier = defaults.Multiplier
	}
	b.RandomizationFactor = c.RandomizationFactor
	b.MaxElapsedTime = 0
	b.Reset()

	return b
}

type options struct {
	poll PollConfig
	log  *zap.Logger
}

func defaultOptions() *options {
	return &options{
		poll: DefaultPollConfig(),
		log:  zap.NewNop(),
	}
}

type Option func(o *options)

func WithPollConfig(cfg PollConfig) Option {
	return func(o *options) {
		o.poll = cfg
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

type resultOptions struct {
	timeout    time.Duration
	hasTimeout bool
}

type ResultOption func(o *resultOptions)

// WithTimeout bounds Result by a wall-clock deadline. A zero timeout checks
// the operation once.
func WithTimeout(d time.Duration) ResultOption {
	return func(o *resultOptions) {
		o.timeout = max(d, 0)
		o.hasTimeout = true
	}
}
