// Package types contains shared enumerations used across semports.
package types

import (
	"fmt"

	"github.com/c360/semports/errors"
)

// NodeType represents the category of a tree node
type NodeType int

// Node type constants
const (
	NodeTypeUndefined NodeType = iota
	NodeTypeAction
	NodeTypeCondition
	NodeTypeControl
	NodeTypeDecorator
	NodeTypeSubtree
)

var nodeTypeNames = []string{"UNDEFINED", "ACTION", "CONDITION", "CONTROL", "DECORATOR", "SUBTREE"}

// String implements fmt.Stringer for NodeType
func (nt NodeType) String() string {
	if nt < 0 || int(nt) >= len(nodeTypeNames) {
		return fmt.Sprintf("NodeType(%d)", int(nt))
	}
	return nodeTypeNames[nt]
}

// IsValid reports whether nt is one of the declared node types.
func (nt NodeType) IsValid() bool {
	return nt >= 0 && int(nt) < len(nodeTypeNames)
}

// ParseNodeType matches text against the declared names, case-sensitively.
func ParseNodeType(text string) (NodeType, error) {
	i, err := lookupName(nodeTypeNames, text, "NodeType")
	return NodeType(i), err
}

// MarshalText implements encoding.TextMarshaler
func (nt NodeType) MarshalText() ([]byte, error) {
	return []byte(nt.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (nt *NodeType) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeType(string(text))
	if err != nil {
		return err
	}
	*nt = parsed
	return nil
}

// NodeStatus is the state a node can be in after a tick.
// Custom nodes should never return NodeStatusIdle.
type NodeStatus int

// Node status constants
const (
	NodeStatusIdle NodeStatus = iota
	NodeStatusRunning
	NodeStatusSuccess
	NodeStatusFailure
	NodeStatusSkipped
)

var nodeStatusNames = []string{"IDLE", "RUNNING", "SUCCESS", "FAILURE", "SKIPPED"}

// String implements fmt.Stringer for NodeStatus
func (ns NodeStatus) String() string {
	if ns < 0 || int(ns) >= len(nodeStatusNames) {
		return fmt.Sprintf("NodeStatus(%d)", int(ns))
	}
	return nodeStatusNames[ns]
}

// ColorString returns the status name wrapped in ANSI color codes for terminals.
func (ns NodeStatus) ColorString() string {
	var color string
	switch ns {
	case NodeStatusFailure:
		color = "\x1b[31m"
	case NodeStatusSuccess:
		color = "\x1b[32m"
	case NodeStatusRunning:
		color = "\x1b[33m"
	case NodeStatusSkipped:
		color = "\x1b[34m"
	case NodeStatusIdle:
		color = "\x1b[36m"
	default:
		return ns.String()
	}
	return color + ns.String() + "\x1b[0m"
}

// IsActive reports whether the status is neither idle nor skipped
func (ns NodeStatus) IsActive() bool {
	return ns != NodeStatusIdle && ns != NodeStatusSkipped
}

// IsCompleted reports whether the status is a terminal success or failure
func (ns NodeStatus) IsCompleted() bool {
	return ns == NodeStatusSuccess || ns == NodeStatusFailure
}

// ParseNodeStatus matches text against the declared names, case-sensitively.
func ParseNodeStatus(text string) (NodeStatus, error) {
	i, err := lookupName(nodeStatusNames, text, "NodeStatus")
	return NodeStatus(i), err
}

// MarshalText implements encoding.TextMarshaler
func (ns NodeStatus) MarshalText() ([]byte, error) {
	return []byte(ns.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (ns *NodeStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeStatus(string(text))
	if err != nil {
		return err
	}
	*ns = parsed
	return nil
}

// lookupName returns the index of text in names or a classified conversion error.
func lookupName(names []string, text, typeName string) (int, error) {
	for i, name := range names {
		if name == text {
			return i, nil
		}
	}
	return 0, errors.WrapInvalid(
		fmt.Errorf("%w: %q is not a %s (want one of %v)", errors.ErrConversion, text, typeName, names),
		typeName, "Parse", "name lookup")
}
