package tmplsrv_test

import (
	"context"
	"testing"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	opdomain "github.com/10Narratives/workflows/internal/domains/operations"
	tmpldomain "github.com/10Narratives/workflows/internal/domains/templates"
	oprepo "github.com/10Narratives/workflows/internal/repositories/operations"
	tmplrepo "github.com/10Narratives/workflows/internal/repositories/templates"
	tmplsrv "github.com/10Narratives/workflows/internal/services/templates"
	"github.com/stretchr/testify/require"
)

const parent = tmpldomain.ParentName("projects/p/regions/r")

func newService(t *testing.T) (*tmplsrv.Service, *oprepo.Repository) {
	t.Helper()

	ops := oprepo.NewRepository()
	svc, err := tmplsrv.NewService(tmplrepo.NewRepository(), ops, nil)
	require.NoError(t, err)
	return svc, ops
}

func pipeline(id string) *dataprocpb.WorkflowTemplate {
	return &dataprocpb.WorkflowTemplate{
		Id: id,
		Jobs: []*dataprocpb.OrderedJob{
			{StepId: "extract"},
			{StepId: "load", PrerequisiteStepIds: []string{"extract"}},
		},
	}
}

func TestNewService(t *testing.T) {
	_, err := tmplsrv.NewService(nil, oprepo.NewRepository(), nil)
	require.Error(t, err)

	_, err = tmplsrv.NewService(tmplrepo.NewRepository(), nil, nil)
	require.Error(t, err)
}

func TestService_CreateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("error: nil args", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CreateTemplate(ctx, nil)
		require.ErrorIs(t, err, tmpldomain.ErrInvalidArgument)
	})

	t.Run("error: invalid parent", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: "bad", Template: pipeline("t")})
		require.ErrorIs(t, err, tmpldomain.ErrInvalidParent)
	})

	t.Run("error: invalid id", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: parent, Template: pipeline("no/slashes")})
		require.ErrorIs(t, err, tmpldomain.ErrInvalidArgument)
	})

	t.Run("error: unknown prerequisite", func(t *testing.T) {
		svc, _ := newService(t)
		tmpl := &dataprocpb.WorkflowTemplate{
			Id:   "t",
			Jobs: []*dataprocpb.OrderedJob{{StepId: "load", PrerequisiteStepIds: []string{"extract"}}},
		}
		_, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: parent, Template: tmpl})
		require.ErrorIs(t, err, tmpldomain.ErrInvalidArgument)
	})

	t.Run("ok", func(t *testing.T) {
		svc, _ := newService(t)
		res, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: parent, Template: pipeline("nightly")})
		require.NoError(t, err)
		require.Equal(t, string(parent.Template("nightly")), res.Template.GetName())
	})
}

func TestService_UpdateTemplate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: parent, Template: pipeline("nightly")})
	require.NoError(t, err)

	t.Run("error: version required", func(t *testing.T) {
		tmpl := pipeline("nightly")
		tmpl.Name = created.Template.GetName()

		_, err := svc.UpdateTemplate(ctx, &tmpldomain.UpdateTemplateArgs{Template: tmpl})
		require.ErrorIs(t, err, tmpldomain.ErrInvalidArgument)
	})

	t.Run("ok", func(t *testing.T) {
		res, err := svc.UpdateTemplate(ctx, &tmpldomain.UpdateTemplateArgs{Template: created.Template})
		require.NoError(t, err)
		require.EqualValues(t, 2, res.Template.GetVersion())
	})
}

func TestService_ListTemplates(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	_, err := svc.ListTemplates(ctx, &tmpldomain.ListTemplatesArgs{Parent: "projects/p"})
	require.ErrorIs(t, err, tmpldomain.ErrInvalidParent)

	args := &tmpldomain.ListTemplatesArgs{Parent: parent}
	res, err := svc.ListTemplates(ctx, args)
	require.NoError(t, err)
	require.Empty(t, res.Templates)
	require.EqualValues(t, 50, args.PageSize)
}

func TestService_InstantiateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("error: template not found", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.InstantiateTemplate(ctx, &tmpldomain.InstantiateTemplateArgs{Name: parent.Template("missing")})
		require.ErrorIs(t, err, tmpldomain.ErrNotFound)
	})

	t.Run("error: version mismatch", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: parent, Template: pipeline("nightly")})
		require.NoError(t, err)

		_, err = svc.InstantiateTemplate(ctx, &tmpldomain.InstantiateTemplateArgs{Name: parent.Template("nightly"), Version: 4})
		require.ErrorIs(t, err, tmpldomain.ErrVersionMismatch)
	})

	t.Run("error: invalid request id", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: parent, Template: pipeline("nightly")})
		require.NoError(t, err)

		_, err = svc.InstantiateTemplate(ctx, &tmpldomain.InstantiateTemplateArgs{Name: parent.Template("nightly"), RequestID: "not allowed!"})
		require.ErrorIs(t, err, tmpldomain.ErrInvalidArgument)
	})

	t.Run("ok: pending operation with workflow metadata", func(t *testing.T) {
		svc, ops := newService(t)
		_, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: parent, Template: pipeline("nightly")})
		require.NoError(t, err)

		res, err := svc.InstantiateTemplate(ctx, &tmpldomain.InstantiateTemplateArgs{
			Name:       parent.Template("nightly"),
			Parameters: map[string]string{"DAY": "monday"},
		})
		require.NoError(t, err)
		require.False(t, res.Operation.GetDone())

		name, err := opdomain.ParseOperationName(res.Operation.GetName())
		require.NoError(t, err)
		require.Equal(t, string(parent), name.Collection())

		meta := &dataprocpb.WorkflowMetadata{}
		require.NoError(t, res.Operation.GetMetadata().UnmarshalTo(meta))
		require.Equal(t, dataprocpb.WorkflowMetadata_PENDING, meta.GetState())
		require.EqualValues(t, 1, meta.GetVersion())
		require.Len(t, meta.GetGraph().GetNodes(), 2)
		require.Equal(t, "monday", meta.GetParameters()["DAY"])

		stored, err := ops.GetOperation(ctx, &opdomain.GetOperationArgs{Name: name})
		require.NoError(t, err)
		require.Equal(t, res.Operation.GetName(), stored.Operation.GetName())
	})

	t.Run("ok: same request id yields same operation", func(t *testing.T) {
		svc, _ := newService(t)
		_, err := svc.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{Parent: parent, Template: pipeline("nightly")})
		require.NoError(t, err)

		args := &tmpldomain.InstantiateTemplateArgs{Name: parent.Template("nightly"), RequestID: "run-42"}
		first, err := svc.InstantiateTemplate(ctx, args)
		require.NoError(t, err)
		second, err := svc.InstantiateTemplate(ctx, args)
		require.NoError(t, err)
		require.Equal(t, first.Operation.GetName(), second.Operation.GetName())

		other, err := svc.InstantiateTemplate(ctx, &tmpldomain.InstantiateTemplateArgs{Name: parent.Template("nightly")})
		require.NoError(t, err)
		require.NotEqual(t, first.Operation.GetName(), other.Operation.GetName())
	})
}

func TestService_InstantiateInlineTemplate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	res, err := svc.InstantiateInlineTemplate(ctx, &tmpldomain.InstantiateInlineTemplateArgs{
		Parent:   parent,
		Template: &dataprocpb.WorkflowTemplate{Jobs: []*dataprocpb.OrderedJob{{StepId: "only"}}},
	})
	require.NoError(t, err)

	meta := &dataprocpb.WorkflowMetadata{}
	require.NoError(t, res.Operation.GetMetadata().UnmarshalTo(meta))
	require.Contains(t, meta.GetTemplate(), string(parent)+"/workflowTemplates/inline-")
	require.Zero(t, meta.GetVersion())

	_, err = svc.GetTemplate(ctx, &tmpldomain.GetTemplateArgs{Name: tmpldomain.TemplateName(meta.GetTemplate())})
	require.ErrorIs(t, err, tmpldomain.ErrNotFound)
}
