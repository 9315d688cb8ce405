package tmplcmd

import (
	"context"
	"fmt"

	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
)

func NewGetTemplateCmd(flags *clientcmd.Flags) *cobra.Command {
	var (
		name    string
		version int32
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get workflow template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				tmpl, err := client.GetWorkflowTemplate(ctx, name, version)
				if err != nil {
					return err
				}

				clientcmd.PrintTemplate(cmd.OutOrStdout(), tmpl)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name, e.g. projects/p/regions/r/workflowTemplates/t")
	cmd.Flags().Int32Var(&version, "version", 0, "Template version (0 = current)")

	return cmd
}
