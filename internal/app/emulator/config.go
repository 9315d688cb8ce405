package emulatorapp

import "time"

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Operations OperationsConfig `yaml:"operations"`
}

type ServerConfig struct {
	Grpc GrpcConfig `yaml:"grpc"`
}

type GrpcConfig struct {
	Address    string `yaml:"address" env:"EMULATOR_GRPC_ADDRESS" env-default:"127.0.0.1:8086"`
	Reflection bool   `yaml:"reflection" env:"EMULATOR_GRPC_REFLECTION" env-default:"true"`
}

type OperationsConfig struct {
	// WaitInterval is how often WaitOperation re-reads a pending operation.
	WaitInterval time.Duration `yaml:"wait_interval" env:"EMULATOR_WAIT_INTERVAL" env-default:"100ms"`
}
