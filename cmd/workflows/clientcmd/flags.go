package clientcmd

import (
	"context"
	"time"

	configutils "github.com/10Narratives/workflows/pkg/config"
	logutils "github.com/10Narratives/workflows/pkg/logging"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
)

// Flags are the connection flags shared by every command.
type Flags struct {
	endpoint string
	tls      bool
	caFile   string
	timeout  time.Duration
	verbose  bool
}

func (f *Flags) Register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&f.endpoint, "endpoint", "", "WorkflowTemplateService gRPC address host:port (default $WORKFLOWS_ENDPOINT or 127.0.0.1:8086)")
	flags.BoolVar(&f.tls, "tls", false, "Use TLS")
	flags.StringVar(&f.caFile, "tls-ca", "", "CA file (PEM), optional")
	flags.DurationVar(&f.timeout, "timeout", 15*time.Second, "Overall timeout")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Log every call")
}

// Run dials the endpoint and calls fn with a context bounded by --timeout.
func (f *Flags) Run(cmd *cobra.Command, fn func(ctx context.Context, client *workflows.Client) error) error {
	cfg, err := f.config(cmd)
	if err != nil {
		return err
	}

	env := "quiet"
	if f.verbose {
		env = "dev"
	}
	log, err := logutils.NewLogger(env)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client, err := workflows.NewClient(cfg, workflows.WithLogger(log))
	if err != nil {
		return err
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), f.timeout)
	defer cancel()

	return fn(ctx, client)
}

func (f *Flags) config(cmd *cobra.Command) (*workflows.Config, error) {
	cfg, err := configutils.ReadFromEnv[workflows.Config]()
	if err != nil {
		return nil, err
	}

	if f.endpoint != "" {
		cfg.Endpoint = f.endpoint
	}
	if flag := cmd.Flag("tls"); flag != nil && flag.Changed {
		cfg.TLS.Enabled = f.tls
	}
	if f.caFile != "" {
		cfg.TLS.Enabled = true
		cfg.TLS.CAFile = f.caFile
	}

	return cfg, nil
}
