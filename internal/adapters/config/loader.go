// Package config loads and validates gantry.yaml pipeline definitions.
package config

import (
	"os"

	"github.com/gantrybuild/gantry/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct{}

// NewLoader returns a loader for gantry.yaml pipeline files.
func NewLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the pipeline definition at the given path.
func (l *FileLoader) Load(path string) (*domain.PipelineSpec, error) {
	return Load(path)
}

// Load reads a pipeline file from the given path and returns the validated
// domain.PipelineSpec.
func Load(path string) (*domain.PipelineSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by the user invoking the CLI.
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read pipeline file")
	}
	return Parse(data)
}

// Parse unmarshals and validates a pipeline definition.
func Parse(data []byte) (*domain.PipelineSpec, error) {
	var file Gantryfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse pipeline file")
	}

	if file.Version != 1 {
		return nil, zerr.With(zerr.New("unsupported pipeline version"), "version", file.Version)
	}
	if len(file.Activities) == 0 {
		return nil, zerr.New("pipeline defines no activities")
	}

	// First pass: collect activity names to verify needs against later.
	names := make(map[string]bool, len(file.Activities))
	for _, dto := range file.Activities {
		if dto.Name == "" {
			return nil, zerr.New("activity without a name")
		}
		if names[dto.Name] {
			return nil, zerr.With(zerr.New("duplicate activity name"), "activity", dto.Name)
		}
		names[dto.Name] = true
	}

	// Second pass: resolve references and convert to domain structs.
	spec := &domain.PipelineSpec{
		Version:  file.Version,
		Defaults: toDefaults(file.Defaults.Archive),
	}
	for _, dto := range file.Activities {
		activity, err := toActivity(dto, names)
		if err != nil {
			return nil, err
		}
		spec.Activities = append(spec.Activities, activity)
	}
	return spec, nil
}

func toActivity(dto ActivityDTO, names map[string]bool) (domain.ActivitySpec, error) {
	spec := domain.ActivitySpec{
		Name:    dto.Name,
		Run:     dto.Run,
		Dir:     dto.Dir,
		Env:     dto.Env,
		Unstash: dto.Unstash,
		Cleanup: dto.Cleanup,
	}

	for _, need := range dto.Needs {
		if need.Activity == dto.Name {
			return domain.ActivitySpec{}, zerr.With(zerr.New("activity depends on itself"), "activity", dto.Name)
		}
		if !names[need.Activity] {
			err := zerr.With(zerr.New("unknown dependency"), "activity", dto.Name)
			return domain.ActivitySpec{}, zerr.With(err, "dependency", need.Activity)
		}
		spec.Needs = append(spec.Needs, domain.Need{
			Activity:         need.Activity,
			PropagateFailure: need.Propagate,
		})
	}

	if dto.Archive != nil {
		archive := toArchive(*dto.Archive)
		spec.Archive = &archive
	}

	for _, stash := range dto.Stash {
		if stash.ID == "" {
			return domain.ActivitySpec{}, zerr.With(zerr.New("stash without an id"), "activity", dto.Name)
		}
		spec.Stashes = append(spec.Stashes, domain.StashSpec{
			ID:                 stash.ID,
			Includes:           stash.Include,
			Excludes:           stash.Exclude,
			UseDefaultExcludes: defaultExcludes(stash.DefaultExcludes),
			AllowEmpty:         stash.AllowEmpty,
		})
	}

	if dto.Tests != nil {
		if dto.Tests.Records == "" {
			return domain.ActivitySpec{}, zerr.With(zerr.New("tests block without a records path"), "activity", dto.Name)
		}
		if _, err := domain.NewRecordFilter(dto.Tests.Include, dto.Tests.Exclude); err != nil {
			return domain.ActivitySpec{}, zerr.With(err, "activity", dto.Name)
		}
		spec.Tests = &domain.TestSpec{
			Records: dto.Tests.Records,
			Include: dto.Tests.Include,
			Exclude: dto.Tests.Exclude,
		}
	}

	return spec, nil
}

func toArchive(dto SelectionDTO) domain.ArchiveSpec {
	return domain.ArchiveSpec{
		Includes:           dto.Include,
		Excludes:           dto.Exclude,
		UseDefaultExcludes: defaultExcludes(dto.DefaultExcludes),
		AllowEmpty:         dto.AllowEmpty,
	}
}

func toDefaults(dto SelectionDTO) domain.ArchiveDefaults {
	return domain.ArchiveDefaults{
		Includes:           dto.Include,
		Excludes:           dto.Exclude,
		UseDefaultExcludes: defaultExcludes(dto.DefaultExcludes),
		AllowEmpty:         dto.AllowEmpty,
	}
}

func defaultExcludes(v *bool) bool {
	return v == nil || *v
}
