// Package app implements the application layer for gantry.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/gantrybuild/gantry/internal/adapters/intercept"
	"github.com/gantrybuild/gantry/internal/adapters/shell"
	"github.com/gantrybuild/gantry/internal/adapters/telemetry"
	"github.com/gantrybuild/gantry/internal/adapters/telemetry/progrock"
	"github.com/gantrybuild/gantry/internal/adapters/watcher"
	"github.com/gantrybuild/gantry/internal/core/domain"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/gantrybuild/gantry/internal/engine/pipeline"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
)

// App wires the pipeline engine to its adapters.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	tracer       ports.Tracer
	sink         ports.ResultSink
	factory      *shell.Factory
	logging      *intercept.Logging
	tracing      *intercept.Tracing
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	logger ports.Logger,
	tracer ports.Tracer,
	sink ports.ResultSink,
	factory *shell.Factory,
	logging *intercept.Logging,
	tracing *intercept.Tracing,
) *App {
	return &App{
		configLoader: loader,
		logger:       logger,
		tracer:       tracer,
		sink:         sink,
		factory:      factory,
		logging:      logging,
		tracing:      tracing,
	}
}

// RunOptions configures a single pipeline run.
type RunOptions struct {
	// ConfigPath is the pipeline file to load.
	ConfigPath string
	// Parallelism caps concurrently running activities. Zero means one per
	// CPU.
	Parallelism int
	// Progress renders activity progress on a progrock tape instead of
	// logging every transition.
	Progress bool
}

// Run executes the pipeline once. The returned error reports configuration
// faults, scheduling bugs, and failed activities; an UNSTABLE outcome is a
// warning, not an error.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	a.sink.Reset()

	spec, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load pipeline")
	}

	tracer := a.tracer
	if opts.Progress {
		renderer := progrock.New(os.Stderr)
		setupOTel(telemetry.NewBridge(renderer))
		tracer = telemetry.NewOTelTracer("gantry").WithRenderer(renderer)

		if err := renderer.Start(ctx); err != nil {
			return zerr.Wrap(err, "failed to start progress renderer")
		}
		defer func() { _ = renderer.Stop() }()
	}

	nodes, err := a.assemble(spec, tracer, opts.Progress)
	if err != nil {
		return err
	}

	parallelism := opts.Parallelism
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	runner := pipeline.NewRunner(a.logger, tracer, parallelism)

	// The pipeline span is the parent every activity span nests under; the
	// progress renderer keys its console lines off it.
	ctx, span := tracer.Start(ctx, "pipeline")
	err = runner.Run(ctx, nodes)
	span.End()
	if err != nil {
		return zerr.Wrap(err, "pipeline execution failed")
	}

	for _, n := range nodes {
		a.logger.Info(n.BuildStateHistory())
	}

	failErr := pipeline.FailOnAny("Pipeline", nodes)
	if failErr != nil {
		a.sink.Record(domain.ResultFailure)
	}

	a.reportOutcome()

	return failErr
}

// Plan loads the pipeline and returns the activity names in schedule order.
func (a *App) Plan(_ context.Context, path string) ([]string, error) {
	spec, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load pipeline")
	}

	nodes, err := a.assemble(spec, a.tracer, false)
	if err != nil {
		return nil, err
	}
	if err := pipeline.Validate(nodes); err != nil {
		return nil, err
	}

	return pipeline.TopoOrder(nodes), nil
}

// Watch runs the pipeline, then re-runs it whenever the workspace changes.
// Pipeline failures are logged and watched past; only watcher faults end
// watch mode. Returns nil once the context is canceled.
func (a *App) Watch(ctx context.Context, opts RunOptions) error {
	w, err := watcher.NewWatcher(a.logger)
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(ctx, "."); err != nil {
		return zerr.Wrap(err, "failed to watch workspace")
	}

	// The buffered trigger keeps at most one re-run pending while the
	// current one finishes.
	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		a.logger.Info(fmt.Sprintf("%d change(s) detected", len(paths)))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})

	go func() {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.runAndReport(ctx, opts)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-trigger:
			a.runAndReport(ctx, opts)
		}
	}
}

// runAndReport runs the pipeline once for watch mode. Failures are reported
// through the logger so the watch stays alive.
func (a *App) runAndReport(ctx context.Context, opts RunOptions) {
	if err := a.Run(ctx, opts); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
	if ctx.Err() == nil {
		a.logger.Info("watching for changes...")
	}
}

// reportOutcome logs the final build result. The exit code is decided by the
// caller from the returned error alone, so UNSTABLE surfaces here or not at
// all.
func (a *App) reportOutcome() {
	result := a.sink.Current()
	msg := "pipeline finished " + result.String()
	switch result {
	case domain.ResultSuccess:
		a.logger.Info(msg)
	case domain.ResultUnstable:
		a.logger.Warn(msg + ": failing tests were recorded")
	case domain.ResultFailure:
		a.logger.Warn(msg)
	}
}

// setupOTel installs a tracer provider that reports every span to the
// renderer bridge.
func setupOTel(bridge *telemetry.Bridge) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}
