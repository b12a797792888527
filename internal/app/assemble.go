package app

import (
	"os"

	"github.com/gantrybuild/gantry/internal/adapters/artifact"
	"github.com/gantrybuild/gantry/internal/adapters/intercept"
	"github.com/gantrybuild/gantry/internal/adapters/results"
	"github.com/gantrybuild/gantry/internal/core/domain"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/gantrybuild/gantry/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// stateDirName is the workspace-relative directory holding archives and
// stashes. GANTRY_HOME overrides it.
const stateDirName = ".gantry"

// assemble turns a loaded pipeline spec into wired engine nodes: one node
// per activity, dependency edges with their propagation policy, and the
// shared store, sink, and record sources.
func (a *App) assemble(spec *domain.PipelineSpec, tracer ports.Tracer, progress bool) ([]*pipeline.Node, error) {
	workspace, err := os.Getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve workspace")
	}

	store := artifact.NewStore(workspace, stateDir(), spec.Defaults)

	chain := pipeline.NewChain(a.logging, a.tracing)
	if progress {
		// The renderer announces starts and finishes; the logging
		// interceptor would say everything twice. The tracing interceptor is
		// rebuilt around the per-run tracer.
		chain = pipeline.NewChain(intercept.NewTracing(tracer))
	}

	// Activities naming the same records file share one source, so record
	// extraction for that file stays serialized across parallel activities.
	sources := make(map[string]*results.FileSource)

	nodes := make(map[string]*pipeline.Node, len(spec.Activities))
	ordered := make([]*pipeline.Node, 0, len(spec.Activities))
	for _, activitySpec := range spec.Activities {
		activity, err := a.factory.New(activitySpec)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to build activity"), "activity", activitySpec.Name)
		}

		env := pipeline.Env{Store: store, Sink: a.sink}
		if activitySpec.Tests != nil {
			path := activitySpec.Tests.Records
			if _, ok := sources[path]; !ok {
				sources[path] = results.NewFileSource(path)
			}
			env.Source = sources[path]
		}

		node := pipeline.NewNode(activity, chain, env)
		nodes[activitySpec.Name] = node
		ordered = append(ordered, node)
	}

	for _, activitySpec := range spec.Activities {
		node := nodes[activitySpec.Name]
		for _, need := range activitySpec.Needs {
			dep, ok := nodes[need.Activity]
			if !ok {
				return nil, zerr.With(zerr.With(domain.ErrUnknownDependency, "activity", activitySpec.Name), "dependency", need.Activity)
			}
			node.Needs(dep, need.PropagateFailure)
		}
	}

	return ordered, nil
}

// stateDir resolves the artifact state directory.
func stateDir() string {
	if dir := os.Getenv("GANTRY_HOME"); dir != "" {
		return dir
	}
	return stateDirName
}
