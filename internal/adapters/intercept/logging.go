// Package intercept ships the interceptors attached to every pipeline node.
package intercept

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gantrybuild/gantry/internal/core/ports"
)

// Logging announces node lifecycle transitions on the logger.
type Logging struct {
	logger ports.Logger
}

// NewLogging creates a logging interceptor.
func NewLogging(logger ports.Logger) *Logging {
	return &Logging{logger: logger}
}

// HandleFailedDependencies announces that the activity is skipped.
func (l *Logging) HandleFailedDependencies(_ context.Context, ac ports.ActivityContext) error {
	l.logger.Warn(fmt.Sprintf("skipping %s: dependencies failed: %s",
		ac.ActivityName(), strings.Join(ac.FailedDependencies(), ", ")))
	return nil
}

// BeforeActivityStarted announces the start of the activity.
func (l *Logging) BeforeActivityStarted(_ context.Context, ac ports.ActivityContext) error {
	l.logger.Info("starting " + ac.ActivityName())
	return nil
}

// RunAroundActivity passes through to the run step.
func (l *Logging) RunAroundActivity(ctx context.Context, _ ports.ActivityContext, next ports.Continuation) error {
	return next(ctx)
}

// AfterActivityFinished announces the outcome with the run duration.
func (l *Logging) AfterActivityFinished(_ context.Context, ac ports.ActivityContext) error {
	name := ac.ActivityName()
	if ac.Failed() {
		msg, _ := ac.FailureMessage()
		l.logger.Warn(fmt.Sprintf("failed %s after %s: %s", name, elapsed(ac), msg))
		return nil
	}
	l.logger.Info(fmt.Sprintf("finished %s in %s", name, elapsed(ac)))
	return nil
}

func elapsed(ac ports.ActivityContext) time.Duration {
	started, ok := ac.StartedAt()
	if !ok {
		return 0
	}
	finished, ok := ac.FinishedAt()
	if !ok {
		return 0
	}
	return finished.Sub(started)
}
