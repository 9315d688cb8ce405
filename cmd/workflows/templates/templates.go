package tmplcmd

import (
	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/spf13/cobra"
)

func NewTemplatesGroup(flags *clientcmd.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Commands for workflow template managing",
	}

	cmd.AddCommand(
		NewCreateTemplateCmd(flags),
		NewGetTemplateCmd(flags),
		NewListTemplatesCmd(flags),
		NewDeleteTemplateCmd(flags),
		NewInstantiateTemplateCmd(flags),
		NewInstantiateInlineTemplateCmd(flags),
	)

	return cmd
}
