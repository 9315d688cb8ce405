package tmplsrv

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	longrunning "cloud.google.com/go/longrunning/autogen/longrunningpb"
	opdomain "github.com/10Narratives/workflows/internal/domains/operations"
	tmpldomain "github.com/10Narratives/workflows/internal/domains/templates"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

const (
	defaultPageSize = 50
	maxPageSize     = 1000
)

var (
	templateIDPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,49}$`)
	requestIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,40}$`)
)

type TemplateRepository interface {
	tmpldomain.TemplateCreator
	tmpldomain.TemplateGetter
	tmpldomain.TemplateUpdater
	tmpldomain.TemplateLister
	tmpldomain.TemplateDeleter
}

type OperationRepository interface {
	opdomain.OperationCreator
}

type Service struct {
	templateRepository  TemplateRepository
	operationRepository OperationRepository
	log                 *zap.Logger
}

func NewService(
	templateRepository TemplateRepository,
	operationRepository OperationRepository,
	log *zap.Logger,
) (*Service, error) {
	if templateRepository == nil {
		return nil, errors.New("template repository is required")
	}
	if operationRepository == nil {
		return nil, errors.New("operation repository is required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Service{
		templateRepository:  templateRepository,
		operationRepository: operationRepository,
		log:                 log,
	}, nil
}

func (s *Service) CreateTemplate(ctx context.Context, args *tmpldomain.CreateTemplateArgs) (*tmpldomain.CreateTemplateResult, error) {
	if args == nil || args.Template == nil {
		return nil, fmt.Errorf("%w: template is required", tmpldomain.ErrInvalidArgument)
	}
	if _, err := tmpldomain.ParseParentName(string(args.Parent)); err != nil {
		return nil, err
	}
	if !templateIDPattern.MatchString(args.Template.GetId()) {
		return nil, fmt.Errorf("%w: template id %q", tmpldomain.ErrInvalidArgument, args.Template.GetId())
	}
	if err := validateJobs(args.Template); err != nil {
		return nil, err
	}

	return s.templateRepository.CreateTemplate(ctx, args)
}

func (s *Service) GetTemplate(ctx context.Context, args *tmpldomain.GetTemplateArgs) (*tmpldomain.GetTemplateResult, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: arguments are required", tmpldomain.ErrInvalidArgument)
	}
	if _, err := tmpldomain.ParseTemplateName(string(args.Name)); err != nil {
		return nil, err
	}

	return s.templateRepository.GetTemplate(ctx, args)
}

// UpdateTemplate replaces the template. The supplied version must match the
// current one.
func (s *Service) UpdateTemplate(ctx context.Context, args *tmpldomain.UpdateTemplateArgs) (*tmpldomain.UpdateTemplateResult, error) {
	if args == nil || args.Template == nil {
		return nil, fmt.Errorf("%w: template is required", tmpldomain.ErrInvalidArgument)
	}
	if _, err := tmpldomain.ParseTemplateName(args.Template.GetName()); err != nil {
		return nil, err
	}
	if args.Template.GetVersion() <= 0 {
		return nil, fmt.Errorf("%w: template version is required", tmpldomain.ErrInvalidArgument)
	}
	if err := validateJobs(args.Template); err != nil {
		return nil, err
	}

	return s.templateRepository.UpdateTemplate(ctx, args)
}

func (s *Service) ListTemplates(ctx context.Context, args *tmpldomain.ListTemplatesArgs) (*tmpldomain.ListTemplatesResult, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: arguments are required", tmpldomain.ErrInvalidArgument)
	}
	if _, err := tmpldomain.ParseParentName(string(args.Parent)); err != nil {
		return nil, err
	}

	if args.PageSize < 1 {
		args.PageSize = defaultPageSize
	}

	args.PageSize = min(args.PageSize, maxPageSize)

	return s.templateRepository.ListTemplates(ctx, args)
}

func (s *Service) DeleteTemplate(ctx context.Context, args *tmpldomain.DeleteTemplateArgs) error {
	if args == nil {
		return fmt.Errorf("%w: arguments are required", tmpldomain.ErrInvalidArgument)
	}
	if _, err := tmpldomain.ParseTemplateName(string(args.Name)); err != nil {
		return err
	}

	return s.templateRepository.DeleteTemplate(ctx, args)
}

// InstantiateTemplate starts a workflow from a stored template. Requests with
// the same request id resolve to the same operation.
func (s *Service) InstantiateTemplate(ctx context.Context, args *tmpldomain.InstantiateTemplateArgs) (*tmpldomain.InstantiateTemplateResult, error) {
	if args == nil {
		return nil, fmt.Errorf("%w: arguments are required", tmpldomain.ErrInvalidArgument)
	}
	if _, err := tmpldomain.ParseTemplateName(string(args.Name)); err != nil {
		return nil, err
	}

	res, err := s.templateRepository.GetTemplate(ctx, &tmpldomain.GetTemplateArgs{
		Name:    args.Name,
		Version: args.Version,
	})
	if err != nil {
		return nil, err
	}

	return s.start(ctx, args.Name.Parent(), res.Template, args.RequestID, args.Parameters)
}

func (s *Service) InstantiateInlineTemplate(ctx context.Context, args *tmpldomain.InstantiateInlineTemplateArgs) (*tmpldomain.InstantiateTemplateResult, error) {
	if args == nil || args.Template == nil {
		return nil, fmt.Errorf("%w: template is required", tmpldomain.ErrInvalidArgument)
	}
	if _, err := tmpldomain.ParseParentName(string(args.Parent)); err != nil {
		return nil, err
	}
	if err := validateJobs(args.Template); err != nil {
		return nil, err
	}

	tmpl := proto.Clone(args.Template).(*dataprocpb.WorkflowTemplate)
	if tmpl.GetId() == "" {
		tmpl.Id = "inline-" + uuid.NewString()
	}
	tmpl.Name = string(args.Parent.Template(tmpl.GetId()))
	tmpl.Version = 0

	return s.start(ctx, args.Parent, tmpl, args.RequestID, nil)
}

func (s *Service) start(
	ctx context.Context,
	parent tmpldomain.ParentName,
	tmpl *dataprocpb.WorkflowTemplate,
	requestID string,
	params map[string]string,
) (*tmpldomain.InstantiateTemplateResult, error) {
	id := uuid.NewString()
	if requestID != "" {
		if !requestIDPattern.MatchString(requestID) {
			return nil, fmt.Errorf("%w: request id %q", tmpldomain.ErrInvalidArgument, requestID)
		}
		id = uuid.NewSHA1(uuid.NameSpaceURL, []byte(tmpl.GetName()+"#"+requestID)).String()
	}

	meta, err := anypb.New(opdomain.NewWorkflowMetadata(tmpl, params))
	if err != nil {
		return nil, fmt.Errorf("cannot pack workflow metadata: %w", err)
	}

	res, err := s.operationRepository.CreateOperation(ctx, &opdomain.CreateOperationArgs{
		Operation: &longrunning.Operation{
			Name:     string(opdomain.OperationPath(string(parent), id)),
			Metadata: meta,
		},
	})
	if err != nil {
		return nil, err
	}

	if !res.Existing {
		s.log.Info("workflow instantiated",
			zap.String("template", tmpl.GetName()),
			zap.Int32("version", tmpl.GetVersion()),
			zap.String("operation", res.Operation.GetName()),
		)
	}

	return &tmpldomain.InstantiateTemplateResult{Operation: res.Operation}, nil
}

// validateJobs checks step ids are unique and prerequisites refer to
// earlier steps.
func validateJobs(tmpl *dataprocpb.WorkflowTemplate) error {
	seen := make(map[string]bool, len(tmpl.GetJobs()))
	for _, job := range tmpl.GetJobs() {
		id := job.GetStepId()
		if id == "" || seen[id] {
			return fmt.Errorf("%w: duplicate or empty step id %q", tmpldomain.ErrInvalidArgument, id)
		}
		for _, prerequisite := range job.GetPrerequisiteStepIds() {
			if !seen[prerequisite] {
				return fmt.Errorf("%w: step %q depends on unknown step %q", tmpldomain.ErrInvalidArgument, id, prerequisite)
			}
		}
		seen[id] = true
	}
	return nil
}
