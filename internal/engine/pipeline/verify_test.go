package pipeline_test

import (
	"testing"

	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/gantrybuild/gantry/internal/engine/pipeline"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.ActivityContext = (*pipeline.Node)(nil)
}
