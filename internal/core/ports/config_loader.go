package ports

import "github.com/gantrybuild/gantry/internal/core/domain"

// ConfigLoader loads and validates a pipeline definition.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the pipeline file at the given path.
	Load(path string) (*domain.PipelineSpec, error)
}
