package tmplrepo

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	tmpldomain "github.com/10Narratives/workflows/internal/domains/templates"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// Repository keeps workflow templates in memory. Only the current version
// of every template is retained.
type Repository struct {
	mu        sync.RWMutex
	templates map[tmpldomain.TemplateName]*dataprocpb.WorkflowTemplate
}

func NewRepository() *Repository {
	return &Repository{
		templates: make(map[tmpldomain.TemplateName]*dataprocpb.WorkflowTemplate),
	}
}

func (r *Repository) CreateTemplate(ctx context.Context, args *tmpldomain.CreateTemplateArgs) (*tmpldomain.CreateTemplateResult, error) {
	if args == nil || args.Template == nil {
		return nil, tmpldomain.ErrInvalidArgument
	}

	name := args.Parent.Template(args.Template.GetId())

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.templates[name]; ok {
		return nil, fmt.Errorf("%w: %s", tmpldomain.ErrAlreadyExists, name)
	}

	now := timestamppb.Now()
	stored := proto.Clone(args.Template).(*dataprocpb.WorkflowTemplate)
	stored.Name = string(name)
	stored.Version = 1
	stored.CreateTime = now
	stored.UpdateTime = now

	r.templates[name] = stored

	return &tmpldomain.CreateTemplateResult{Template: clone(stored)}, nil
}

func (r *Repository) GetTemplate(ctx context.Context, args *tmpldomain.GetTemplateArgs) (*tmpldomain.GetTemplateResult, error) {
	if args == nil {
		return nil, tmpldomain.ErrInvalidArgument
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, err := r.current(args.Name, args.Version)
	if err != nil {
		return nil, err
	}

	return &tmpldomain.GetTemplateResult{Template: clone(stored)}, nil
}

func (r *Repository) UpdateTemplate(ctx context.Context, args *tmpldomain.UpdateTemplateArgs) (*tmpldomain.UpdateTemplateResult, error) {
	if args == nil || args.Template == nil {
		return nil, tmpldomain.ErrInvalidArgument
	}

	name := tmpldomain.TemplateName(args.Template.GetName())

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, err := r.current(name, args.Template.GetVersion())
	if err != nil {
		return nil, err
	}

	updated := proto.Clone(args.Template).(*dataprocpb.WorkflowTemplate)
	updated.Id = stored.GetId()
	updated.Version = stored.GetVersion() + 1
	updated.CreateTime = stored.GetCreateTime()
	updated.UpdateTime = timestamppb.Now()

	r.templates[name] = updated

	return &tmpldomain.UpdateTemplateResult{Template: clone(updated)}, nil
}

func (r *Repository) DeleteTemplate(ctx context.Context, args *tmpldomain.DeleteTemplateArgs) error {
	if args == nil {
		return tmpldomain.ErrInvalidArgument
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.current(args.Name, args.Version); err != nil {
		return err
	}

	delete(r.templates, args.Name)
	return nil
}

// ListTemplates pages templates of a parent in name order. The page token is
// the name of the last template of the previous page.
func (r *Repository) ListTemplates(ctx context.Context, args *tmpldomain.ListTemplatesArgs) (*tmpldomain.ListTemplatesResult, error) {
	if args == nil || args.PageSize <= 0 {
		return nil, tmpldomain.ErrInvalidArgument
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	prefix := string(args.Parent) + "/"
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		if strings.HasPrefix(string(name), prefix) {
			names = append(names, string(name))
		}
	}
	slices.Sort(names)

	start := 0
	if args.PageToken != "" {
		i, found := slices.BinarySearch(names, args.PageToken)
		if !found {
			return nil, fmt.Errorf("%w: %q", tmpldomain.ErrInvalidPageToken, args.PageToken)
		}
		start = i + 1
	}

	end := min(start+int(args.PageSize), len(names))
	page := make([]*dataprocpb.WorkflowTemplate, 0, end-start)
	for _, name := range names[start:end] {
		page = append(page, clone(r.templates[tmpldomain.TemplateName(name)]))
	}

	next := ""
	if end < len(names) && len(page) > 0 {
		next = names[end-1]
	}

	return &tmpldomain.ListTemplatesResult{Templates: page, NextPageToken: next}, nil
}

// current returns the stored template; a non-zero version must match. Called
// with r.mu held.
func (r *Repository) current(name tmpldomain.TemplateName, version int32) (*dataprocpb.WorkflowTemplate, error) {
	stored, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", tmpldomain.ErrNotFound, name)
	}
	if version != 0 && version != stored.GetVersion() {
		return nil, fmt.Errorf("%w: %s has version %d, requested %d",
			tmpldomain.ErrVersionMismatch, name, stored.GetVersion(), version)
	}
	return stored, nil
}

func clone(tmpl *dataprocpb.WorkflowTemplate) *dataprocpb.WorkflowTemplate {
	return proto.Clone(tmpl).(*dataprocpb.WorkflowTemplate)
}
