package tmpldomain

import (
	"context"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
)

type TemplateCreator interface {
	CreateTemplate(ctx context.Context, args *CreateTemplateArgs) (*CreateTemplateResult, error)
}

type CreateTemplateArgs struct {
	Parent   ParentName
	Template *dataprocpb.WorkflowTemplate
}

type CreateTemplateResult struct {
	Template *dataprocpb.WorkflowTemplate
}

type TemplateGetter interface {
	GetTemplate(ctx context.Context, args *GetTemplateArgs) (*GetTemplateResult, error)
}

// GetTemplateArgs with a zero Version selects the current version.
type GetTemplateArgs struct {
	Name    TemplateName
	Version int32
}

type GetTemplateResult struct {
	Template *dataprocpb.WorkflowTemplate
}

type TemplateUpdater interface {
	UpdateTemplate(ctx context.Context, args *UpdateTemplateArgs) (*UpdateTemplateResult, error)
}

type UpdateTemplateArgs struct {
	Template *dataprocpb.WorkflowTemplate
}

type UpdateTemplateResult struct {
	Template *dataprocpb.WorkflowTemplate
}

type TemplateLister interface {
	ListTemplates(ctx context.Context, args *ListTemplatesArgs) (*ListTemplatesResult, error)
}

type ListTemplatesArgs struct {
	Parent    ParentName
	PageSize  int32
	PageToken string
}

type ListTemplatesResult struct {
	Templates     []*dataprocpb.WorkflowTemplate
	NextPageToken string
}

type TemplateDeleter interface {
	DeleteTemplate(ctx context.Context, args *DeleteTemplateArgs) error
}

type DeleteTemplateArgs struct {
	Name    TemplateName
	Version int32
}

type TemplateInstantiator interface {
	InstantiateTemplate(ctx context.Context, args *InstantiateTemplateArgs) (*InstantiateTemplateResult, error)
}

type InstantiateTemplateArgs struct {
	Name       TemplateName
	Version    int32
	RequestID  string
	Parameters map[string]string
}

type InstantiateTemplateResult struct {
	Operation *longrunningpb.Operation
}

type InlineTemplateInstantiator interface {
	InstantiateInlineTemplate(ctx context.Context, args *InstantiateInlineTemplateArgs) (*InstantiateTemplateResult, error)
}

type InstantiateInlineTemplateArgs struct {
	Parent    ParentName
	Template  *dataprocpb.WorkflowTemplate
	RequestID string
}
