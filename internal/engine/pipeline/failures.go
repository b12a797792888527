package pipeline

import (
	"strings"

	"github.com/gantrybuild/gantry/internal/core/domain"
	"go.trai.ch/zerr"
)

// FindFailed filters nodes down to the failed ones, preserving input order.
// It returns nil, not an empty slice, when none failed.
func FindFailed(nodes []*Node) []*Node {
	var failed []*Node
	for _, n := range nodes {
		if n.Failed() {
			failed = append(failed, n)
		}
	}
	return failed
}

// AggregateFailureMessage formats the failure messages of the given nodes
// as "<prefix> failed: [name1 = msg1, name2 = msg2]". It returns the empty
// string when nodes is empty.
func AggregateFailureMessage(prefix string, nodes []*Node) string {
	if len(nodes) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(" failed: [")
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(", ")
		}
		msg, _ := n.FailureMessage()
		b.WriteString(n.ActivityName())
		b.WriteString(" = ")
		b.WriteString(msg)
	}
	b.WriteString("]")
	return b.String()
}

// FailOnAny returns an error carrying the aggregate failure message when
// any of the given nodes failed.
func FailOnAny(prefix string, nodes []*Node) error {
	failed := FindFailed(nodes)
	if len(failed) == 0 {
		return nil
	}
	return zerr.Wrap(domain.ErrPipelineFailed, AggregateFailureMessage(prefix, failed))
}
