package opcmd

import (
	"context"
	"fmt"

	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
)

func NewGetOperationCmd(flags *clientcmd.Flags) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get workflow operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				future := client.Operation(name)
				if err := future.Poll(ctx); err != nil {
					return err
				}

				clientcmd.PrintOperation(cmd.OutOrStdout(), future)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Operation name, e.g. projects/p/regions/r/operations/id")

	return cmd
}
