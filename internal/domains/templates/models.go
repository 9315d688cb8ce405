package tmpldomain

import (
	"fmt"
	"strings"
)

// ParentName is a region or location that owns workflow templates, e.g.
// projects/p/regions/us-central1.
type ParentName string

// TemplateName is the full resource name of a workflow template, e.g.
// projects/p/regions/us-central1/workflowTemplates/nightly.
type TemplateName string

const templatesCollection = "workflowTemplates"

func RegionPath(project, region string) string {
	return "projects/" + project + "/regions/" + region
}

func LocationPath(project, location string) string {
	return "projects/" + project + "/locations/" + location
}

func WorkflowTemplatePath(project, region, template string) string {
	return RegionPath(project, region) + "/" + templatesCollection + "/" + template
}

func ParseParentName(s string) (ParentName, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 4 || !validParent(parts) {
		return "", fmt.Errorf("%w: %q", ErrInvalidParent, s)
	}
	return ParentName(s), nil
}

func ParseTemplateName(s string) (TemplateName, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 6 || !validParent(parts[:4]) || parts[4] != templatesCollection || parts[5] == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, s)
	}
	return TemplateName(s), nil
}

func validParent(parts []string) bool {
	return parts[0] == "projects" && parts[1] != "" &&
		(parts[2] == "regions" || parts[2] == "locations") && parts[3] != ""
}

func (n TemplateName) Parent() ParentName {
	i := strings.LastIndex(string(n), "/"+templatesCollection+"/")
	if i < 0 {
		return ""
	}
	return ParentName(n[:i])
}

func (n TemplateName) ID() string {
	return string(n[strings.LastIndex(string(n), "/")+1:])
}

func (p ParentName) Template(id string) TemplateName {
	return TemplateName(string(p) + "/" + templatesCollection + "/" + id)
}

// Project and Region return the project and region (or location) segments.
func (p ParentName) Project() string {
	return p.segment(1)
}

func (p ParentName) Region() string {
	return p.segment(3)
}

func (p ParentName) segment(i int) string {
	parts := strings.Split(string(p), "/")
	if len(parts) <= i {
		return ""
	}
	return parts[i]
}
