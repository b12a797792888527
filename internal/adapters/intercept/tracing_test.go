package intercept_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gantrybuild/gantry/internal/adapters/intercept"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/gantrybuild/gantry/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type ctxKey struct{}

func TestTracing_RunAroundActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ac := mocks.NewMockActivityContext(ctrl)
	ac.EXPECT().ActivityName().Return("build")

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End()

	spanCtx := context.WithValue(context.Background(), ctxKey{}, "from-span")
	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), "run build").
		DoAndReturn(func(_ context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return spanCtx, span
		})

	var got context.Context
	next := func(ctx context.Context) error {
		got = ctx
		return nil
	}

	require.NoError(t, intercept.NewTracing(tracer).RunAroundActivity(context.Background(), ac, next))
	// The run step must see the span context, not the incoming one.
	assert.Equal(t, "from-span", got.Value(ctxKey{}))

	// The span itself must be ambient so activities can write to it.
	ambient, ok := ports.SpanFromContext(got)
	require.True(t, ok)
	assert.Same(t, span, ambient)
}

func TestTracing_RecordsRunError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ac := mocks.NewMockActivityContext(ctrl)
	ac.EXPECT().ActivityName().Return("build")

	wantErr := errors.New("boom")
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().RecordError(wantErr)
	span.EXPECT().End()

	tracer := mocks.NewMockTracer(ctrl)
	tracer.EXPECT().Start(gomock.Any(), "run build").
		DoAndReturn(func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		})

	next := func(_ context.Context) error { return wantErr }

	err := intercept.NewTracing(tracer).RunAroundActivity(context.Background(), ac, next)
	assert.ErrorIs(t, err, wantErr)
}

func TestTracing_OtherHooksAreNoops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The tracer mock has no expectations; any call would fail the test.
	interceptor := intercept.NewTracing(mocks.NewMockTracer(ctrl))
	ac := mocks.NewMockActivityContext(ctrl)

	assert.NoError(t, interceptor.HandleFailedDependencies(context.Background(), ac))
	assert.NoError(t, interceptor.BeforeActivityStarted(context.Background(), ac))
	assert.NoError(t, interceptor.AfterActivityFinished(context.Background(), ac))
}
