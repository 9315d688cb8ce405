package opcmd

import (
	"context"
	"fmt"

	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
)

func NewCancelOperationCmd(flags *clientcmd.Flags) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel workflow operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				future := client.Operation(name)

				requested, err := future.Cancel(ctx)
				if err != nil {
					return err
				}
				if err := future.Poll(ctx); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "cancellation requested=%t\n", requested)
				clientcmd.PrintOperation(cmd.OutOrStdout(), future)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Operation name, e.g. projects/p/regions/r/operations/id")

	return cmd
}
