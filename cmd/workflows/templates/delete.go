package tmplcmd

import (
	"context"
	"fmt"

	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
)

func NewDeleteTemplateCmd(flags *clientcmd.Flags) *cobra.Command {
	var (
		name    string
		version int32
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete workflow template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				if err := client.DeleteWorkflowTemplate(ctx, name, version); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "template deleted: name=%s\n", name)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name, e.g. projects/p/regions/r/workflowTemplates/t")
	cmd.Flags().Int32Var(&version, "version", 0, "Delete only if this is the current version (0 = any)")

	return cmd
}
