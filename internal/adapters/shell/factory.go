package shell

import (
	"github.com/gantrybuild/gantry/internal/core/domain"
	"github.com/gantrybuild/gantry/internal/core/ports"
)

// Factory builds shell activities sharing the application logger.
type Factory struct {
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(logger ports.Logger) *Factory {
	return &Factory{logger: logger}
}

// New builds the activity for the given spec.
func (f *Factory) New(spec domain.ActivitySpec) (ports.Activity, error) {
	return NewActivity(spec, f.logger)
}
