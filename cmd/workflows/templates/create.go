package tmplcmd

import (
	"context"
	"fmt"

	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
)

func NewCreateTemplateCmd(flags *clientcmd.Flags) *cobra.Command {
	var (
		parent string
		file   string
		id     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create workflow template from a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if parent == "" || file == "" {
				return fmt.Errorf("--parent and --file are required")
			}

			tmpl, err := clientcmd.ReadTemplate(file)
			if err != nil {
				return err
			}
			if id != "" {
				tmpl.Id = id
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				created, err := client.CreateWorkflowTemplate(ctx, parent, tmpl)
				if err != nil {
					return err
				}

				clientcmd.PrintTemplate(cmd.OutOrStdout(), created)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent resource, e.g. projects/my-project/regions/us-central1")
	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON encoded WorkflowTemplate")
	cmd.Flags().StringVar(&id, "id", "", "Template id, overrides the id of the file")

	return cmd
}
