// Package workflows is a client for the WorkflowTemplateService. Workflows
// started by Instantiate calls are returned as lro futures.
package workflows

import (
	"context"
	"crypto/tls"
	"fmt"
	"sync"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	tmpldomain "github.com/10Narratives/workflows/internal/domains/templates"
	"github.com/10Narratives/workflows/internal/transport/grpc/interceptors/logging"
	"github.com/10Narratives/workflows/pkg/lro"
	"github.com/google/uuid"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
)

// InstantiateFuture tracks a workflow started from a template. The result is
// empty; progress is reported through the workflow metadata.
type InstantiateFuture = lro.Future[*emptypb.Empty, *dataprocpb.WorkflowMetadata]

// InstantiateOptions tune InstantiateWorkflowTemplate. A zero Version runs
// the current version. An empty RequestID is replaced by a random one.
type InstantiateOptions struct {
	Version    int32
	RequestID  string
	Parameters map[string]string
}

// Client is safe for concurrent use.
type Client struct {
	conn      *grpc.ClientConn
	ownsConn  bool
	templates dataprocpb.WorkflowTemplateServiceClient
	ops       longrunningpb.OperationsClient

	cfg          *Config
	log          *zap.Logger
	callOptions  func() map[method][]gax.CallOption
	xGoogHeaders []string
	newRequestID func() string
}

type clientOptions struct {
	log         *zap.Logger
	dialOptions []grpc.DialOption
}

type ClientOption func(o *clientOptions)

func WithLogger(log *zap.Logger) ClientOption {
	return func(o *clientOptions) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDialOptions appends options used by NewClient to dial the endpoint.
func WithDialOptions(opts ...grpc.DialOption) ClientOption {
	return func(o *clientOptions) {
		o.dialOptions = append(o.dialOptions, opts...)
	}
}

// NewClient dials cfg.Endpoint. The connection is closed by Close.
func NewClient(cfg *Config, opts ...ClientOption) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	options := newClientOptions(opts)

	creds, err := transportCredentials(cfg.TLS)
	if err != nil {
		return nil, err
	}

	dialOptions := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithChainUnaryInterceptor(logging.NewUnaryClientInterceptor(options.log)),
	}, options.dialOptions...)

	conn, err := grpc.NewClient(cfg.Endpoint, dialOptions...)
	if err != nil {
		return nil, fmt.Errorf("cannot create connection to %s: %w", cfg.Endpoint, err)
	}

	c := newClient(conn, cfg, options)
	c.ownsConn = true
	return c, nil
}

// NewClientFromConn builds a client on an existing connection. Close leaves
// conn open.
func NewClientFromConn(conn *grpc.ClientConn, cfg *Config, opts ...ClientOption) *Client {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return newClient(conn, cfg, newClientOptions(opts))
}

func newClientOptions(opts []ClientOption) *clientOptions {
	options := &clientOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func newClient(conn *grpc.ClientConn, cfg *Config, options *clientOptions) *Client {
	retry := cfg.Retry
	return &Client{
		conn:      conn,
		templates: dataprocpb.NewWorkflowTemplateServiceClient(conn),
		ops:       longrunningpb.NewOperationsClient(conn),
		cfg:       cfg,
		log:       options.log,
		callOptions: sync.OnceValue(func() map[method][]gax.CallOption {
			return retry.callOptions()
		}),
		xGoogHeaders: []string{
			"x-goog-api-client", gax.XGoogHeader("gl-go", gax.GoVersion, "gax", gax.Version, "grpc", grpc.Version),
		},
		newRequestID: uuid.NewString,
	}
}

func transportCredentials(cfg TLSConfig) (credentials.TransportCredentials, error) {
	if !cfg.Enabled {
		return insecure.NewCredentials(), nil
	}
	if cfg.CAFile == "" {
		return credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12}), nil
	}

	creds, err := credentials.NewClientTLSFromFile(cfg.CAFile, "")
	if err != nil {
		return nil, fmt.Errorf("cannot load CA file %s: %w", cfg.CAFile, err)
	}
	return creds, nil
}

// Connection returns the underlying connection.
func (c *Client) Connection() *grpc.ClientConn {
	return c.conn
}

func (c *Client) Close() error {
	if !c.ownsConn {
		return nil
	}
	return c.conn.Close()
}

func RegionPath(project, region string) string {
	return tmpldomain.RegionPath(project, region)
}

func LocationPath(project, location string) string {
	return tmpldomain.LocationPath(project, location)
}

func WorkflowTemplatePath(project, region, template string) string {
	return tmpldomain.WorkflowTemplatePath(project, region, template)
}

func (c *Client) CreateWorkflowTemplate(ctx context.Context, parent string, template *dataprocpb.WorkflowTemplate, opts ...gax.CallOption) (*dataprocpb.WorkflowTemplate, error) {
	if parent == "" || template == nil {
		return nil, fmt.Errorf("%w: parent and template are required", ErrInvalidArgument)
	}

	req := &dataprocpb.CreateWorkflowTemplateRequest{Parent: parent, Template: template}
	return invoke(ctx, c, methodCreateTemplate, routingHeader("parent", parent), c.templates.CreateWorkflowTemplate, req, opts)
}

// GetWorkflowTemplate returns the given version of the template, or the
// current one when version is zero.
func (c *Client) GetWorkflowTemplate(ctx context.Context, name string, version int32, opts ...gax.CallOption) (*dataprocpb.WorkflowTemplate, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}

	req := &dataprocpb.GetWorkflowTemplateRequest{Name: name, Version: version}
	return invoke(ctx, c, methodGetTemplate, routingHeader("name", name), c.templates.GetWorkflowTemplate, req, opts)
}

// UpdateWorkflowTemplate replaces the template. template.Version must match
// the current server version.
func (c *Client) UpdateWorkflowTemplate(ctx context.Context, template *dataprocpb.WorkflowTemplate, opts ...gax.CallOption) (*dataprocpb.WorkflowTemplate, error) {
	if template.GetName() == "" {
		return nil, fmt.Errorf("%w: template name is required", ErrInvalidArgument)
	}

	req := &dataprocpb.UpdateWorkflowTemplateRequest{Template: template}
	return invoke(ctx, c, methodUpdateTemplate, routingHeader("template.name", template.GetName()), c.templates.UpdateWorkflowTemplate, req, opts)
}

func (c *Client) DeleteWorkflowTemplate(ctx context.Context, name string, version int32, opts ...gax.CallOption) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}

	req := &dataprocpb.DeleteWorkflowTemplateRequest{Name: name, Version: version}
	_, err := invoke(ctx, c, methodDeleteTemplate, routingHeader("name", name), c.templates.DeleteWorkflowTemplate, req, opts)
	return err
}

// InstantiateWorkflowTemplate starts a workflow from a stored template.
func (c *Client) InstantiateWorkflowTemplate(ctx context.Context, name string, options *InstantiateOptions, opts ...gax.CallOption) (*InstantiateFuture, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	if options == nil {
		options = &InstantiateOptions{}
	}

	req := &dataprocpb.InstantiateWorkflowTemplateRequest{
		Name:       name,
		Version:    options.Version,
		RequestId:  c.requestID(options.RequestID),
		Parameters: options.Parameters,
	}
	op, err := invoke(ctx, c, methodInstantiate, routingHeader("name", name), c.templates.InstantiateWorkflowTemplate, req, opts)
	if err != nil {
		return nil, err
	}

	c.log.Debug("workflow instantiated", zap.String("template", name), zap.String("operation", op.GetName()))
	return c.wrap(op), nil
}

// InstantiateInlineWorkflowTemplate starts a workflow from a template that is
// not stored on the server.
func (c *Client) InstantiateInlineWorkflowTemplate(ctx context.Context, parent string, template *dataprocpb.WorkflowTemplate, requestID string, opts ...gax.CallOption) (*InstantiateFuture, error) {
	if parent == "" || template == nil {
		return nil, fmt.Errorf("%w: parent and template are required", ErrInvalidArgument)
	}

	req := &dataprocpb.InstantiateInlineWorkflowTemplateRequest{
		Parent:    parent,
		Template:  template,
		RequestId: c.requestID(requestID),
	}
	op, err := invoke(ctx, c, methodInstantiateInline, routingHeader("parent", parent), c.templates.InstantiateInlineWorkflowTemplate, req, opts)
	if err != nil {
		return nil, err
	}

	c.log.Debug("inline workflow instantiated", zap.String("parent", parent), zap.String("operation", op.GetName()))
	return c.wrap(op), nil
}

// Operation attaches to a workflow operation started earlier. The returned
// future is pending until its first Poll.
func (c *Client) Operation(name string) *InstantiateFuture {
	return c.wrap(&longrunningpb.Operation{Name: name})
}

func (c *Client) wrap(op *longrunningpb.Operation) *InstantiateFuture {
	return lro.Wrap(
		operations{client: c},
		op,
		lro.ProtoDecoder[*emptypb.Empty](),
		lro.ProtoDecoder[*dataprocpb.WorkflowMetadata](),
		lro.WithPollConfig(c.cfg.Polling),
		lro.WithLogger(c.log),
	)
}

func (c *Client) requestID(id string) string {
	if id != "" {
		return id
	}
	return c.newRequestID()
}
