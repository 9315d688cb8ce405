package workflows

import (
	"context"
	"fmt"
	"iter"
	"math"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/api/iterator"
)

// TemplateIterator manages a stream of *dataprocpb.WorkflowTemplate.
type TemplateIterator struct {
	items    []*dataprocpb.WorkflowTemplate
	pageInfo *iterator.PageInfo
	nextFunc func() error

	// Response is the raw response of the last fetched page.
	Response *dataprocpb.ListWorkflowTemplatesResponse
}

// ListWorkflowTemplates lists the templates of parent. A pageSize of zero
// leaves the page size to the server.
func (c *Client) ListWorkflowTemplates(ctx context.Context, parent string, pageSize int32, opts ...gax.CallOption) *TemplateIterator {
	it := &TemplateIterator{}
	req := &dataprocpb.ListWorkflowTemplatesRequest{Parent: parent, PageSize: pageSize}

	fetch := func(size int, pageToken string) (string, error) {
		if parent == "" {
			return "", fmt.Errorf("%w: parent is required", ErrInvalidArgument)
		}

		req.PageToken = pageToken
		req.PageSize = int32(min(size, math.MaxInt32))

		resp, err := invoke(ctx, c, methodListTemplates, routingHeader("parent", parent), c.templates.ListWorkflowTemplates, req, opts)
		if err != nil {
			return "", err
		}

		it.Response = resp
		it.items = append(it.items, resp.GetTemplates()...)
		return resp.GetNextPageToken(), nil
	}

	it.pageInfo, it.nextFunc = iterator.NewPageInfo(fetch, it.bufLen, it.takeBuf)
	it.pageInfo.MaxSize = int(pageSize)
	return it
}

// Templates ranges over the templates of parent. Every range starts again
// from the first page.
func (c *Client) Templates(ctx context.Context, parent string, pageSize int32, opts ...gax.CallOption) iter.Seq2[*dataprocpb.WorkflowTemplate, error] {
	return func(yield func(*dataprocpb.WorkflowTemplate, error) bool) {
		it := c.ListWorkflowTemplates(ctx, parent, pageSize, opts...)
		for {
			tmpl, err := it.Next()
			if err == iterator.Done {
				return
			}
			if !yield(tmpl, err) || err != nil {
				return
			}
		}
	}
}

// PageInfo supports pagination. See the google.golang.org/api/iterator
// package for details.
func (it *TemplateIterator) PageInfo() *iterator.PageInfo {
	return it.pageInfo
}

// Next returns the next template. Its second return value is iterator.Done
// when there are no more results.
func (it *TemplateIterator) Next() (*dataprocpb.WorkflowTemplate, error) {
	if err := it.nextFunc(); err != nil {
		return nil, err
	}
	item := it.items[0]
	it.items = it.items[1:]
	return item, nil
}

func (it *TemplateIterator) bufLen() int {
	return len(it.items)
}

func (it *TemplateIterator) takeBuf() any {
	b := it.items
	it.items = nil
	return b
}
