package opdomain

import (
	"fmt"
	"strings"
)

type OperationName string

const operationsSegment = "operations/"

func OperationPath(parent, id string) OperationName {
	return OperationName(parent + "/" + operationsSegment + id)
}

func ParseOperationName(s string) (OperationName, error) {
	i := strings.LastIndex(s, operationsSegment)
	if i < 0 || (i > 0 && s[i-1] != '/') || len(s) == i+len(operationsSegment) {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperationName, s)
	}
	if strings.Contains(s[i+len(operationsSegment):], "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidOperationName, s)
	}
	return OperationName(s), nil
}

// Collection returns the part of the name before the operations segment.
func (n OperationName) Collection() string {
	i := strings.LastIndex(string(n), operationsSegment)
	if i <= 0 {
		return ""
	}
	return string(n[:i-1])
}
