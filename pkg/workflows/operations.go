package workflows

import (
	"context"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
)

// operations serves lro futures over the Operations service of the same
// connection.
type operations struct {
	client *Client
}

func (o operations) GetOperation(ctx context.Context, name string) (*longrunningpb.Operation, error) {
	c := o.client
	req := &longrunningpb.GetOperationRequest{Name: name}
	return invoke(ctx, c, methodGetOperation, routingHeader("name", name), c.ops.GetOperation, req, nil)
}

func (o operations) CancelOperation(ctx context.Context, name string) error {
	c := o.client
	req := &longrunningpb.CancelOperationRequest{Name: name}
	_, err := invoke(ctx, c, methodCancelOperation, routingHeader("name", name), c.ops.CancelOperation, req, nil)
	return err
}
