package tmplapi

import (
	"context"
	"errors"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/workflows/internal/domains/operations"
	tmpldomain "github.com/10Narratives/workflows/internal/domains/templates"
	grpctr "github.com/10Narratives/workflows/internal/transport/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ServiceName is the full name the server is registered under.
const ServiceName = "google.cloud.dataproc.v1.WorkflowTemplateService"

//mockery:generate: true
type TemplateService interface {
	tmpldomain.TemplateCreator
	tmpldomain.TemplateGetter
	tmpldomain.TemplateUpdater
	tmpldomain.TemplateLister
	tmpldomain.TemplateDeleter
	tmpldomain.TemplateInstantiator
	tmpldomain.InlineTemplateInstantiator
}

type Server struct {
	dataprocpb.UnimplementedWorkflowTemplateServiceServer
	templateService TemplateService
}

func NewServer(templateService TemplateService) *Server {
	return &Server{templateService: templateService}
}

func NewRegistration(templateService TemplateService) grpctr.ServiceRegistration {
	return func(s *grpc.Server) {
		dataprocpb.RegisterWorkflowTemplateServiceServer(s, NewServer(templateService))
	}
}

func (s *Server) CreateWorkflowTemplate(ctx context.Context, req *dataprocpb.CreateWorkflowTemplateRequest) (*dataprocpb.WorkflowTemplate, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	parent, err := tmpldomain.ParseParentName(req.GetParent())
	if err != nil {
		return nil, toStatusErr(err)
	}

	res, err := s.templateService.CreateTemplate(ctx, &tmpldomain.CreateTemplateArgs{
		Parent:   parent,
		Template: req.GetTemplate(),
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	if res == nil || res.Template == nil {
		return nil, status.Error(codes.Internal, "missing template in result")
	}

	return res.Template, nil
}

func (s *Server) GetWorkflowTemplate(ctx context.Context, req *dataprocpb.GetWorkflowTemplateRequest) (*dataprocpb.WorkflowTemplate, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	name, err := tmpldomain.ParseTemplateName(req.GetName())
	if err != nil {
		return nil, toStatusErr(err)
	}

	res, err := s.templateService.GetTemplate(ctx, &tmpldomain.GetTemplateArgs{
		Name:    name,
		Version: req.GetVersion(),
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	if res == nil || res.Template == nil {
		return nil, status.Error(codes.Internal, "missing template in result")
	}

	return res.Template, nil
}

func (s *Server) UpdateWorkflowTemplate(ctx context.Context, req *dataprocpb.UpdateWorkflowTemplateRequest) (*dataprocpb.WorkflowTemplate, error) {
	if req == nil || req.GetTemplate() == nil {
		return nil, status.Error(codes.InvalidArgument, "template is required")
	}

	res, err := s.templateService.UpdateTemplate(ctx, &tmpldomain.UpdateTemplateArgs{Template: req.GetTemplate()})
	if err != nil {
		return nil, toStatusErr(err)
	}
	if res == nil || res.Template == nil {
		return nil, status.Error(codes.Internal, "missing template in result")
	}

	return res.Template, nil
}

func (s *Server) ListWorkflowTemplates(ctx context.Context, req *dataprocpb.ListWorkflowTemplatesRequest) (*dataprocpb.ListWorkflowTemplatesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	parent, err := tmpldomain.ParseParentName(req.GetParent())
	if err != nil {
		return nil, toStatusErr(err)
	}

	res, err := s.templateService.ListTemplates(ctx, &tmpldomain.ListTemplatesArgs{
		Parent:    parent,
		PageSize:  req.GetPageSize(),
		PageToken: req.GetPageToken(),
	})
	if err != nil {
		return nil, toStatusErr(err)
	}
	if res == nil {
		return nil, status.Error(codes.Internal, "missing result")
	}

	return &dataprocpb.ListWorkflowTemplatesResponse{
		Templates:     res.Templates,
		NextPageToken: res.NextPageToken,
	}, nil
}

func (s *Server) DeleteWorkflowTemplate(ctx context.Context, req *dataprocpb.DeleteWorkflowTemplateRequest) (*emptypb.Empty, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	name, err := tmpldomain.ParseTemplateName(req.GetName())
	if err != nil {
		return nil, toStatusErr(err)
	}

	err = s.templateService.DeleteTemplate(ctx, &tmpldomain.DeleteTemplateArgs{
		Name:    name,
		Version: req.GetVersion(),
	})
	if err != nil {
		return nil, toStatusErr(err)
	}

	return &emptypb.Empty{}, nil
}

func (s *Server) InstantiateWorkflowTemplate(ctx context.Context, req *dataprocpb.InstantiateWorkflowTemplateRequest) (*longrunningpb.Operation, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	name, err := tmpldomain.ParseTemplateName(req.GetName())
	if err != nil {
		return nil, toStatusErr(err)
	}

	res, err := s.templateService.InstantiateTemplate(ctx, &tmpldomain.InstantiateTemplateArgs{
		Name:       name,
		Version:    req.GetVersion(),
		RequestID:  req.GetRequestId(),
		Parameters: req.GetParameters(),
	})

	return operationOrStatus(res, err)
}

func (s *Server) InstantiateInlineWorkflowTemplate(ctx context.Context, req *dataprocpb.InstantiateInlineWorkflowTemplateRequest) (*longrunningpb.Operation, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request cannot be nil")
	}

	parent, err := tmpldomain.ParseParentName(req.GetParent())
	if err != nil {
		return nil, toStatusErr(err)
	}

	res, err := s.templateService.InstantiateInlineTemplate(ctx, &tmpldomain.InstantiateInlineTemplateArgs{
		Parent:    parent,
		Template:  req.GetTemplate(),
		RequestID: req.GetRequestId(),
	})

	return operationOrStatus(res, err)
}

func operationOrStatus(res *tmpldomain.InstantiateTemplateResult, err error) (*longrunningpb.Operation, error) {
	if err != nil {
		return nil, toStatusErr(err)
	}
	if res == nil || res.Operation == nil {
		return nil, status.Error(codes.Internal, "missing operation in result")
	}
	return res.Operation, nil
}

func toStatusErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, "request canceled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	switch {
	case errors.Is(err, tmpldomain.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, tmpldomain.ErrAlreadyExists),
		errors.Is(err, opdomain.ErrOperationAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, tmpldomain.ErrVersionMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, tmpldomain.ErrInvalidName),
		errors.Is(err, tmpldomain.ErrInvalidParent),
		errors.Is(err, tmpldomain.ErrInvalidArgument),
		errors.Is(err, tmpldomain.ErrInvalidPageToken),
		errors.Is(err, opdomain.ErrInvalidOperationName):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
