package clientcmd

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"github.com/10Narratives/workflows/pkg/lro"
	sliceutils "github.com/10Narratives/workflows/pkg/slices"
	"github.com/10Narratives/workflows/pkg/workflows"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ReadTemplate decodes a JSON encoded WorkflowTemplate.
func ReadTemplate(path string) (*dataprocpb.WorkflowTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read template file: %w", err)
	}

	tmpl := &dataprocpb.WorkflowTemplate{}
	if err := protojson.Unmarshal(data, tmpl); err != nil {
		return nil, fmt.Errorf("cannot decode template file %s: %w", path, err)
	}
	return tmpl, nil
}

func PrintTemplate(w io.Writer, t *dataprocpb.WorkflowTemplate) {
	fmt.Fprintf(w,
		"template: name=%s, version=%d, jobs=%s, created_at=%s, updated_at=%s\n",
		t.GetName(),
		t.GetVersion(),
		strings.Join(sliceutils.Map(t.GetJobs(), (*dataprocpb.OrderedJob).GetStepId), ","),
		formatTime(t.GetCreateTime()),
		formatTime(t.GetUpdateTime()),
	)
}

func PrintOperation(w io.Writer, f *workflows.InstantiateFuture) {
	meta, err := f.Metadata()
	if err != nil {
		fmt.Fprintf(w, "operation: name=%s, done=%t\n", f.Name(), f.Done())
		return
	}

	nodes := meta.GetGraph().GetNodes()
	fmt.Fprintf(w,
		"operation: name=%s, done=%t, state=%s, template=%s, version=%d, nodes=%s, started_at=%s, ended_at=%s\n",
		f.Name(),
		f.Done(),
		meta.GetState().String(),
		meta.GetTemplate(),
		meta.GetVersion(),
		nodeSummary(nodes),
		formatTime(meta.GetStartTime()),
		formatTime(meta.GetEndTime()),
	)
	for _, node := range nodes {
		fmt.Fprintf(w, "  node: step=%s, job=%s, state=%s\n", node.GetStepId(), node.GetJobId(), node.GetState().String())
	}
	if st := f.Snapshot().GetError(); st != nil {
		fmt.Fprintf(w, "  error: code=%d, message=%s\n", st.GetCode(), st.GetMessage())
	}
}

func nodeSummary(nodes []*dataprocpb.WorkflowNode) string {
	counts := sliceutils.CountBy(nodes, (*dataprocpb.WorkflowNode).GetState)
	states := slices.Sorted(maps.Keys(counts))
	return strings.Join(sliceutils.Map(states, func(s dataprocpb.WorkflowNode_NodeState) string {
		return fmt.Sprintf("%s:%d", s, counts[s])
	}), ",")
}

func formatTime(ts *timestamppb.Timestamp) string {
	if ts == nil {
		return ""
	}
	return ts.AsTime().Format(time.RFC3339Nano)
}

// Await waits for the workflow to finish and prints its last known state.
// A zero timeout waits until ctx is done.
func Await(ctx context.Context, w io.Writer, f *workflows.InstantiateFuture, timeout time.Duration) error {
	f.AddDoneCallback(func(f *workflows.InstantiateFuture) {
		fmt.Fprintf(w, "workflow finished: name=%s, cancelled=%t\n", f.Name(), f.Cancelled())
	})

	var opts []lro.ResultOption
	if timeout > 0 {
		opts = append(opts, lro.WithTimeout(timeout))
	}

	_, err := f.Result(ctx, opts...)
	PrintOperation(w, f)
	return err
}
