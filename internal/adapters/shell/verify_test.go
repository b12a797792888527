package shell_test

import (
	"testing"

	"github.com/gantrybuild/gantry/internal/adapters/shell"
	"github.com/gantrybuild/gantry/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Activity = (*shell.Activity)(nil)
}
