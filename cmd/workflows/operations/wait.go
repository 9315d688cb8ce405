package opcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
)

func NewWaitOperationCmd(flags *clientcmd.Flags) *cobra.Command {
	var (
		name        string
		waitTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait",
		Short: "Wait for workflow operation to finish",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				return clientcmd.Await(ctx, cmd.OutOrStdout(), client.Operation(name), waitTimeout)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Operation name, e.g. projects/p/regions/r/operations/id")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 0, "Max time to wait (0 = until --timeout)")

	return cmd
}
