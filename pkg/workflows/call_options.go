package workflows

import (
	"context"
	"net/url"
	"slices"

	"github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
)

type method string

const (
	methodCreateTemplate    method = "CreateWorkflowTemplate"
	methodGetTemplate       method = "GetWorkflowTemplate"
	methodUpdateTemplate    method = "UpdateWorkflowTemplate"
	methodDeleteTemplate    method = "DeleteWorkflowTemplate"
	methodListTemplates     method = "ListWorkflowTemplates"
	methodInstantiate       method = "InstantiateWorkflowTemplate"
	methodInstantiateInline method = "InstantiateInlineWorkflowTemplate"
	methodGetOperation      method = "GetOperation"
	methodCancelOperation   method = "CancelOperation"
)

type retryClass string

const (
	idempotent    retryClass = "idempotent"
	nonIdempotent retryClass = "non_idempotent"
)

// Instantiate calls always carry a request id, so retrying them cannot start
// a second workflow.
var methodClasses = map[method]retryClass{
	methodCreateTemplate:    nonIdempotent,
	methodGetTemplate:       idempotent,
	methodUpdateTemplate:    nonIdempotent,
	methodDeleteTemplate:    idempotent,
	methodListTemplates:     idempotent,
	methodInstantiate:       idempotent,
	methodInstantiateInline: idempotent,
	methodGetOperation:      idempotent,
	methodCancelOperation:   idempotent,
}

var retryableCodes = []codes.Code{
	codes.DeadlineExceeded,
	codes.Unavailable,
}

func (c RetryConfig) callOptions() map[method][]gax.CallOption {
	defaults := DefaultRetryConfig()
	backoff := gax.Backoff{
		Initial:    orDefault(c.Initial, defaults.Initial),
		Max:        orDefault(c.Max, defaults.Max),
		Multiplier: orDefault(c.Multiplier, defaults.Multiplier),
	}
	timeout := gax.WithTimeout(orDefault(c.Timeout, defaults.Timeout))

	classes := map[retryClass][]gax.CallOption{
		idempotent: {
			timeout,
			gax.WithRetry(func() gax.Retryer {
				return gax.OnCodes(retryableCodes, backoff)
			}),
		},
		nonIdempotent: {timeout},
	}

	table := make(map[method][]gax.CallOption, len(methodClasses))
	for m, class := range methodClasses {
		table[m] = classes[class]
	}
	return table
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}

// invoke runs one unary call under the retry policy of m. routing is the
// x-goog-request-params value built by routingHeader.
func invoke[Req, Resp any](
	ctx context.Context,
	c *Client,
	m method,
	routing string,
	call func(context.Context, Req, ...grpc.CallOption) (Resp, error),
	req Req,
	opts []gax.CallOption,
) (Resp, error) {
	ctx = metadata.AppendToOutgoingContext(ctx, c.xGoogHeaders...)
	if routing != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, "x-goog-request-params", routing)
	}

	opts = append(slices.Clip(c.callOptions()[m]), opts...)

	var resp Resp
	err := gax.Invoke(ctx, func(ctx context.Context, settings gax.CallSettings) error {
		var err error
		resp, err = call(ctx, req, settings.GRPC...)
		return err
	}, opts...)

	return resp, err
}

func routingHeader(key, value string) string {
	return key + "=" + url.QueryEscape(value)
}
