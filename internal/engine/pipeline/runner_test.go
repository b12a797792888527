package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/gantrybuild/gantry/internal/core/domain"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/gantrybuild/gantry/internal/core/ports/mocks"
	"github.com/gantrybuild/gantry/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newRunnerTracer returns a tracer mock that hands the caller's context
// through, so cancellation reaches the activities.
func newRunnerTracer(ctrl *gomock.Controller) *mocks.MockTracer {
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	tracer.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		}).AnyTimes()
	return tracer
}

func TestRunner_Run_Diamond(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var (
			mu    sync.Mutex
			order []string
		)
		record := func(name string) {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}

		bStarted := make(chan struct{})
		cStarted := make(chan struct{})
		release := make(chan struct{})

		actD := newActivity(ctrl, "d")
		actD.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)
		actD.EXPECT().RunActivity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, ports.ActivityContext) error {
				record("d")
				return nil
			})

		actB := newActivity(ctrl, "b")
		actB.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)
		actB.EXPECT().RunActivity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, ports.ActivityContext) error {
				close(bStarted)
				<-release
				record("b")
				return nil
			})

		actC := newActivity(ctrl, "c")
		actC.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)
		actC.EXPECT().RunActivity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, ports.ActivityContext) error {
				close(cStarted)
				<-release
				record("c")
				return nil
			})

		actA := newActivity(ctrl, "a")
		actA.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)
		actA.EXPECT().RunActivity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, ports.ActivityContext) error {
				record("a")
				return nil
			})

		a := pipeline.NewNode(actA, nil, pipeline.Env{})
		b := pipeline.NewNode(actB, nil, pipeline.Env{})
		c := pipeline.NewNode(actC, nil, pipeline.Env{})
		d := pipeline.NewNode(actD, nil, pipeline.Env{})
		b.Needs(d, true)
		c.Needs(d, true)
		a.Needs(b, true)
		a.Needs(c, true)

		runner := pipeline.NewRunner(mocks.NewMockLogger(ctrl), newRunnerTracer(ctrl), 2)

		errCh := make(chan error, 1)
		go func() {
			errCh <- runner.Run(context.Background(), []*pipeline.Node{a, b, c, d})
		}()

		// Both middle activities must be in flight at the same time.
		synctest.Wait()
		<-bStarted
		<-cStarted
		close(release)

		require.NoError(t, <-errCh)

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, order, 4)
		assert.Equal(t, "d", order[0])
		assert.ElementsMatch(t, []string{"b", "c"}, order[1:3])
		assert.Equal(t, "a", order[3])

		for _, n := range []*pipeline.Node{a, b, c, d} {
			assert.True(t, n.Done(), "%s must be done", n.ActivityName())
			assert.False(t, n.Failed(), "%s must not be failed", n.ActivityName())
		}
	})
}

func TestRunner_Run_FailedDependencyStillSchedulesDependents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	actA := newActivity(ctrl, "a")
	actA.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)
	actA.EXPECT().RunActivity(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	// b's run step must never execute, but its node is still scheduled so the
	// dependency failure gets recorded.
	actB := newActivity(ctrl, "b")
	actB.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)

	actC := newActivity(ctrl, "c")
	actC.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)
	actC.EXPECT().RunActivity(gomock.Any(), gomock.Any()).Return(nil)

	a := pipeline.NewNode(actA, nil, pipeline.Env{})
	b := pipeline.NewNode(actB, nil, pipeline.Env{})
	c := pipeline.NewNode(actC, nil, pipeline.Env{})
	b.Needs(a, true)
	c.Needs(a, false)

	runner := pipeline.NewRunner(mocks.NewMockLogger(ctrl), newRunnerTracer(ctrl), 1)
	require.NoError(t, runner.Run(context.Background(), []*pipeline.Node{a, b, c}))

	assert.True(t, a.Failed())
	assert.True(t, b.Failed())
	assert.False(t, c.Failed())

	msg, failed := b.FailureMessage()
	require.True(t, failed)
	assert.Equal(t, "Dependencies failed: [a = boom]", msg)

	err := pipeline.FailOnAny("Build", []*pipeline.Node{a, b, c})
	assert.ErrorIs(t, err, domain.ErrPipelineFailed)
}

func TestRunner_Run_RespectsParallelismLimit(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		var active, runs atomic.Int32
		nodes := make([]*pipeline.Node, 3)
		for i, name := range []string{"a", "b", "c"} {
			act := newActivity(ctrl, name)
			act.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)
			act.EXPECT().RunActivity(gomock.Any(), gomock.Any()).DoAndReturn(
				func(context.Context, ports.ActivityContext) error {
					if active.Add(1) > 1 {
						t.Error("more than one activity in flight")
					}
					time.Sleep(10 * time.Millisecond)
					active.Add(-1)
					runs.Add(1)
					return nil
				})
			nodes[i] = pipeline.NewNode(act, nil, pipeline.Env{})
		}

		runner := pipeline.NewRunner(mocks.NewMockLogger(ctrl), newRunnerTracer(ctrl), 1)
		require.NoError(t, runner.Run(context.Background(), nodes))
		assert.Equal(t, int32(3), runs.Load())
	})
}

func TestRunner_Run_Cancellation(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		actBlocked := newActivity(ctrl, "blocked")
		actBlocked.EXPECT().PrepareNode(gomock.Any(), gomock.Any()).Return(nil)
		actBlocked.EXPECT().RunActivity(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ ports.ActivityContext) error {
				<-ctx.Done()
				return ctx.Err()
			})

		// Never scheduled once the context is cancelled.
		actStarved := newActivity(ctrl, "starved")

		blocked := pipeline.NewNode(actBlocked, nil, pipeline.Env{})
		starved := pipeline.NewNode(actStarved, nil, pipeline.Env{})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		runner := pipeline.NewRunner(mocks.NewMockLogger(ctrl), newRunnerTracer(ctrl), 1)

		errCh := make(chan error, 1)
		go func() {
			errCh <- runner.Run(ctx, []*pipeline.Node{blocked, starved})
		}()

		synctest.Wait()
		cancel()

		err := <-errCh
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)

		assert.True(t, blocked.Failed())
		assert.False(t, starved.Done())
	})
}

func TestRunner_Run_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := pipeline.NewRunner(mocks.NewMockLogger(ctrl), newRunnerTracer(ctrl), 1)

	t.Run("duplicate activity", func(t *testing.T) {
		nodes := []*pipeline.Node{
			pipeline.NewNode(newActivity(ctrl, "build"), nil, pipeline.Env{}),
			pipeline.NewNode(newActivity(ctrl, "build"), nil, pipeline.Env{}),
		}
		assert.ErrorIs(t, runner.Run(context.Background(), nodes), domain.ErrDuplicateActivity)
	})

	t.Run("cycle", func(t *testing.T) {
		a := pipeline.NewNode(newActivity(ctrl, "a"), nil, pipeline.Env{})
		b := pipeline.NewNode(newActivity(ctrl, "b"), nil, pipeline.Env{})
		a.Needs(b, true)
		b.Needs(a, true)
		assert.ErrorIs(t, runner.Run(context.Background(), []*pipeline.Node{a, b}), domain.ErrCycleDetected)
	})
}

func TestRunner_EmitPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := pipeline.NewNode(newActivity(ctrl, "a"), nil, pipeline.Env{})
	b := pipeline.NewNode(newActivity(ctrl, "b"), nil, pipeline.Env{})
	c := pipeline.NewNode(newActivity(ctrl, "c"), nil, pipeline.Env{})
	d := pipeline.NewNode(newActivity(ctrl, "d"), nil, pipeline.Env{})
	b.Needs(d, true)
	c.Needs(d, true)
	a.Needs(b, true)
	a.Needs(c, true)

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().EmitPlan(gomock.Any(), []string{"d", "b", "c", "a"}, map[string][]string{
		"a": {"b", "c"},
		"b": {"d"},
		"c": {"d"},
		"d": nil,
	})

	runner := pipeline.NewRunner(mocks.NewMockLogger(ctrl), tracer, 1)
	runner.EmitPlan(context.Background(), []*pipeline.Node{a, b, c, d})
}
