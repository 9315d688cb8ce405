package opdomain

import (
	"cloud.google.com/go/dataproc/v2/apiv1/dataprocpb"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// NewWorkflowMetadata describes a workflow that was just instantiated from
// tmpl. Jobs without prerequisites start runnable, the rest blocked.
func NewWorkflowMetadata(tmpl *dataprocpb.WorkflowTemplate, params map[string]string) *dataprocpb.WorkflowMetadata {
	nodes := make([]*dataprocpb.WorkflowNode, 0, len(tmpl.GetJobs()))
	for _, job := range tmpl.GetJobs() {
		state := dataprocpb.WorkflowNode_RUNNABLE
		if len(job.GetPrerequisiteStepIds()) > 0 {
			state = dataprocpb.WorkflowNode_BLOCKED
		}
		nodes = append(nodes, &dataprocpb.WorkflowNode{
			StepId:              job.GetStepId(),
			PrerequisiteStepIds: job.GetPrerequisiteStepIds(),
			JobId:               job.GetStepId() + "-" + uuid.NewString()[:8],
			State:               state,
		})
	}

	meta := &dataprocpb.WorkflowMetadata{
		Template:   tmpl.GetName(),
		Version:    tmpl.GetVersion(),
		State:      dataprocpb.WorkflowMetadata_PENDING,
		Graph:      &dataprocpb.WorkflowGraph{Nodes: nodes},
		Parameters: params,
	}

	if managed := tmpl.GetPlacement().GetManagedCluster(); managed != nil {
		meta.ClusterName = managed.GetClusterName()
		meta.ClusterUuid = uuid.NewString()
		meta.CreateCluster = &dataprocpb.ClusterOperation{OperationId: uuid.NewString()}
	}

	return meta
}

// AdvanceWorkflow moves the workflow one step forward and reports whether it
// reached the DONE state. Within a step running jobs complete, runnable jobs
// start and blocked jobs whose prerequisites completed become runnable.
func AdvanceWorkflow(meta *dataprocpb.WorkflowMetadata) bool {
	switch meta.GetState() {
	case dataprocpb.WorkflowMetadata_DONE:
		return true
	case dataprocpb.WorkflowMetadata_UNKNOWN, dataprocpb.WorkflowMetadata_PENDING:
		meta.State = dataprocpb.WorkflowMetadata_RUNNING
		meta.StartTime = timestamppb.Now()
		if meta.CreateCluster != nil {
			meta.CreateCluster.Done = true
		}
		return false
	}

	nodes := meta.GetGraph().GetNodes()
	completed := make(map[string]bool, len(nodes))

	for _, node := range nodes {
		switch node.GetState() {
		case dataprocpb.WorkflowNode_RUNNING:
			node.State = dataprocpb.WorkflowNode_COMPLETED
		case dataprocpb.WorkflowNode_RUNNABLE:
			node.State = dataprocpb.WorkflowNode_RUNNING
		}
		if node.GetState() == dataprocpb.WorkflowNode_COMPLETED {
			completed[node.GetStepId()] = true
		}
	}

	for _, node := range nodes {
		if node.GetState() == dataprocpb.WorkflowNode_BLOCKED && prerequisitesMet(node, completed) {
			node.State = dataprocpb.WorkflowNode_RUNNABLE
		}
	}

	if len(completed) < len(nodes) {
		return false
	}

	finishWorkflow(meta)
	return true
}

// AbortWorkflow stops the workflow: unfinished jobs fail with reason.
func AbortWorkflow(meta *dataprocpb.WorkflowMetadata, reason string) {
	for _, node := range meta.GetGraph().GetNodes() {
		if node.GetState() != dataprocpb.WorkflowNode_COMPLETED {
			node.State = dataprocpb.WorkflowNode_FAILED
			node.Error = reason
		}
	}
	finishWorkflow(meta)
}

func finishWorkflow(meta *dataprocpb.WorkflowMetadata) {
	meta.State = dataprocpb.WorkflowMetadata_DONE
	meta.EndTime = timestamppb.Now()
	if meta.StartTime == nil {
		meta.StartTime = meta.EndTime
	}
	if meta.CreateCluster != nil {
		meta.DeleteCluster = &dataprocpb.ClusterOperation{OperationId: uuid.NewString(), Done: true}
	}
}

func prerequisitesMet(node *dataprocpb.WorkflowNode, completed map[string]bool) bool {
	for _, id := range node.GetPrerequisiteStepIds() {
		if !completed[id] {
			return false
		}
	}
	return true
}
