package opcmd

import (
	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/spf13/cobra"
)

func NewOperationsGroup(flags *clientcmd.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "operations",
		Short: "Commands for workflow operation managing",
	}

	cmd.AddCommand(
		NewGetOperationCmd(flags),
		NewCancelOperationCmd(flags),
		NewWaitOperationCmd(flags),
	)

	return cmd
}
