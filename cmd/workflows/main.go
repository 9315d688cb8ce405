package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	opcmd "github.com/10Narratives/workflows/cmd/workflows/operations"
	tmplcmd "github.com/10Narratives/workflows/cmd/workflows/templates"
	errorutils "github.com/10Narratives/workflows/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errorutils.Exit(newRootCmd().ExecuteContext(ctx))
}

func newRootCmd() *cobra.Command {
	flags := &clientcmd.Flags{}

	rootCmd := &cobra.Command{
		Use:           "workflows",
		Short:         "Tool for workflow template management",
		Long:          "Tool for managing workflow templates and the workflows instantiated from them through the WorkflowTemplateService.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.Register(rootCmd)

	rootCmd.AddCommand(
		tmplcmd.NewTemplatesGroup(flags),
		opcmd.NewOperationsGroup(flags),
	)

	return rootCmd
}
