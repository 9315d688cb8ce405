package tmplcmd

import (
	"context"
	"fmt"
	"time"

	"github.com/10Narratives/workflows/cmd/workflows/clientcmd"
	"github.com/10Narratives/workflows/pkg/workflows"
	"github.com/spf13/cobra"
)

func NewInstantiateTemplateCmd(flags *clientcmd.Flags) *cobra.Command {
	var (
		name        string
		version     int32
		requestID   string
		parameters  map[string]string
		wait        bool
		waitTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "instantiate",
		Short: "Start a workflow from a stored template",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				future, err := client.InstantiateWorkflowTemplate(ctx, name, &workflows.InstantiateOptions{
					Version:    version,
					RequestID:  requestID,
					Parameters: parameters,
				})
				if err != nil {
					return err
				}

				if !wait {
					clientcmd.PrintOperation(cmd.OutOrStdout(), future)
					return nil
				}
				return clientcmd.Await(ctx, cmd.OutOrStdout(), future, waitTimeout)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Template name, e.g. projects/p/regions/r/workflowTemplates/t")
	cmd.Flags().Int32Var(&version, "version", 0, "Template version (0 = current)")
	cmd.Flags().StringVar(&requestID, "request-id", "", "Idempotency key, random when empty")
	cmd.Flags().StringToStringVar(&parameters, "param", nil, "Template parameter KEY=VALUE, repeatable")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the workflow to finish")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 0, "Max time to wait (0 = until --timeout)")

	return cmd
}

func NewInstantiateInlineTemplateCmd(flags *clientcmd.Flags) *cobra.Command {
	var (
		parent      string
		file        string
		requestID   string
		wait        bool
		waitTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "instantiate-inline",
		Short: "Start a workflow from a template file without storing it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if parent == "" || file == "" {
				return fmt.Errorf("--parent and --file are required")
			}

			tmpl, err := clientcmd.ReadTemplate(file)
			if err != nil {
				return err
			}

			return flags.Run(cmd, func(ctx context.Context, client *workflows.Client) error {
				future, err := client.InstantiateInlineWorkflowTemplate(ctx, parent, tmpl, requestID)
				if err != nil {
					return err
				}

				if !wait {
					clientcmd.PrintOperation(cmd.OutOrStdout(), future)
					return nil
				}
				return clientcmd.Await(ctx, cmd.OutOrStdout(), future, waitTimeout)
			})
		},
	}

	cmd.Flags().StringVar(&parent, "parent", "", "Parent resource, e.g. projects/my-project/regions/us-central1")
	cmd.Flags().StringVar(&file, "file", "", "Path to a JSON encoded WorkflowTemplate")
	cmd.Flags().StringVar(&requestID, "request-id", "", "Idempotency key, random when empty")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the workflow to finish")
	cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 0, "Max time to wait (0 = until --timeout)")

	return cmd
}
