// Package shell implements pipeline activities as shell commands.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/gantrybuild/gantry/internal/core/domain"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"go.trai.ch/zerr"
)

// Activity runs one pipeline activity via `sh -c`.
//
// The run step restores requested stashes first, then executes the command,
// then stores stashes, archives artifacts and gathers test records as the
// spec demands.
type Activity struct {
	spec   domain.ActivitySpec
	filter domain.RecordFilter
	logger ports.Logger
}

// cleanupActivity adds the cleanup capability for specs carrying a cleanup
// command. The separate type keeps the capability check on the node honest:
// only activities that really have a cleanup command expose CleanupNode.
type cleanupActivity struct {
	*Activity
}

// NewActivity builds the activity for a spec. The test record filter is
// compiled once here; an invalid pattern fails construction.
func NewActivity(spec domain.ActivitySpec, logger ports.Logger) (ports.Activity, error) {
	a := &Activity{spec: spec, logger: logger}

	if spec.Tests != nil {
		filter, err := domain.NewRecordFilter(spec.Tests.Include, spec.Tests.Exclude)
		if err != nil {
			return nil, zerr.With(err, "activity", spec.Name)
		}
		a.filter = filter
	}

	if spec.Cleanup != "" {
		return &cleanupActivity{Activity: a}, nil
	}
	return a, nil
}

// Name identifies the activity.
func (a *Activity) Name() string {
	return a.spec.Name
}

// PrepareNode verifies the working directory before the node is scheduled.
func (a *Activity) PrepareNode(_ context.Context, _ ports.ActivityContext) error {
	if a.spec.Dir == "" {
		return nil
	}

	info, err := os.Stat(a.spec.Dir)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "working directory not usable"), "dir", a.spec.Dir)
	}
	if !info.IsDir() {
		return zerr.With(zerr.New("working directory is not a directory"), "dir", a.spec.Dir)
	}
	return nil
}

// RunActivity performs the activity's work in spec order.
func (a *Activity) RunActivity(ctx context.Context, ac ports.ActivityContext) error {
	for _, id := range a.spec.Unstash {
		if err := ac.Unstash(ctx, id); err != nil {
			return err
		}
	}

	if a.spec.Run != "" {
		if err := a.execute(ctx, a.spec.Run); err != nil {
			return err
		}
	}

	for _, stash := range a.spec.Stashes {
		if err := ac.Stash(ctx, stash); err != nil {
			return err
		}
	}
	if a.spec.Archive != nil {
		if err := ac.ArchiveFiles(ctx, *a.spec.Archive); err != nil {
			return err
		}
	}
	if a.spec.Tests != nil {
		if err := ac.GatherTestResults(ctx, a.filter); err != nil {
			return err
		}
	}
	return nil
}

// CleanupNode runs the cleanup command. A failure is recorded on the node
// but never fails the build.
func (a *cleanupActivity) CleanupNode(ctx context.Context, _ ports.ActivityContext) error {
	return a.execute(ctx, a.spec.Cleanup)
}

// execute runs one command, streaming its output to the logger and, when the
// context carries a telemetry span, to that span as well.
func (a *Activity) execute(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command) //nolint:gosec // Commands come from the pipeline definition
	if a.spec.Dir != "" {
		cmd.Dir = a.spec.Dir
	}
	cmd.Env = resolveEnvironment(os.Environ(), a.spec.Env)

	outWriter := &logWriter{logger: a.logger, name: a.spec.Name}
	errWriter := &logWriter{logger: a.logger, name: a.spec.Name, stderr: true}

	var stdout io.Writer = outWriter
	var stderr io.Writer = errWriter
	if span, ok := ports.SpanFromContext(ctx); ok {
		stdout = io.MultiWriter(outWriter, span)
		stderr = io.MultiWriter(errWriter, span)
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	runErr := cmd.Run()
	outWriter.Flush()
	errWriter.Flush()

	if runErr != nil {
		exitCode := -1 // Unknown or killed by signal
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(runErr, "command failed"), "activity", a.spec.Name), "exit_code", exitCode)
	}
	return nil
}

// logWriter forwards command output line by line to the logger. Partial
// writes are buffered until their newline arrives.
type logWriter struct {
	logger ports.Logger
	name   string
	stderr bool
	buf    bytes.Buffer
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line, keep it for the next write.
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

// Flush emits a trailing line that never got its newline.
func (w *logWriter) Flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	msg := w.name + " | " + line
	if w.stderr {
		w.logger.Warn(msg)
		return
	}
	w.logger.Info(msg)
}

// resolveEnvironment merges the system environment with the activity's
// overrides. The result is sorted for determinism.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}
