package tmplcmd

import (
	"context"
	"fmt"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
	"google.golang.org/api/iterator"
)

func NewListTemplatesCmd(flags *clientcmd.Flags) *cobra.Command {
	var (
		parent    string
		pageSize  int32
		pageToken string
		all       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workflow templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			if parent == "" {
				return fmt.Errorf("--parent is required")
			}
			if pageSize <= 0 {
				return fmt.Errorf("--page-size must be positive")
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				if all {
					for tmpl, err := range client.Templates(ctx, parent, pageSize) {
						if err != nil {
							return err
						}
						clientcmd.PrintTemplate(cmd.OutOrStdout(), tmpl)
					}
					return nil
				}

				it := client.ListWorkflowTemplates(ctx, parent, pageSize)
				var page []*dataprocpb.WorkflowTemplate
				next, err := iterator.NewPager(it, int(pageSize), pageToken).NextPage(&page)
				if err != nil {
					return err
				}

				for _, tmpl := range page {
					clientcmd.PrintTemplate(cmd.OutOrStdout(), tmpl)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "next_page_token=%s\n", next)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent resource, e.g. projects/my-project/regions/us-central1")
	cmd.Flags().Int32Var(&pageSize, "page-size", 50, "Max number of templates per page")
	cmd.Flags().StringVar(&pageToken, "page-token", "", "Pagination token from previous response")
	cmd.Flags().BoolVar(&all, "all", false, "Follow page tokens and print every template")

	return cmd
}
