package configutils

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

func ReadFromFile[T any](path string) (*T, error) {
	var cfg T
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read configuration from file %s: %w", path, err)
	}

	return &cfg, nil
}

func ReadFromEnv[T any]() (*T, error) {
	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read configuration from env: %w", err)
	}

	return &cfg, nil
}

// Read loads the file at path, or only the environment when path is empty.
// Environment variables override file values in both cases.
func Read[T any](path string) (*T, error) {
	if path == "" {
		return ReadFromEnv[T]()
	}
	return ReadFromFile[T](path)
}
