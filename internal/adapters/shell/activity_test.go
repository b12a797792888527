package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gantrybuild/gantry/internal/adapters/shell"
	"github.com/gantrybuild/gantry/internal/core/domain"
	"github.com/gantrybuild/gantry/internal/core/ports"
	"github.com/gantrybuild/gantry/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newShellActivity(t *testing.T, spec domain.ActivitySpec, logger ports.Logger) ports.Activity {
	t.Helper()
	act, err := shell.NewActivity(spec, logger)
	require.NoError(t, err)
	return act
}

func TestActivity_Run_MultiLineOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("greet | line1").Times(1)
	mockLogger.EXPECT().Info("greet | line2").Times(1)

	act := newShellActivity(t, domain.ActivitySpec{
		Name: "greet",
		Run:  "echo line1; echo line2",
		Dir:  t.TempDir(),
	}, mockLogger)

	require.NoError(t, act.RunActivity(context.Background(), mocks.NewMockActivityContext(ctrl)))
}

func TestActivity_Run_FragmentedOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	// The two writes belong to one line and must be emitted as one.
	mockLogger.EXPECT().Info("frag | part1part2").Times(1)

	act := newShellActivity(t, domain.ActivitySpec{
		Name: "frag",
		Run:  "printf part1; sleep 0.1; echo part2",
		Dir:  t.TempDir(),
	}, mockLogger)

	require.NoError(t, act.RunActivity(context.Background(), mocks.NewMockActivityContext(ctrl)))
}

func TestActivity_Run_TrailingPartialLine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("tail | no newline").Times(1)

	act := newShellActivity(t, domain.ActivitySpec{
		Name: "tail",
		Run:  "printf 'no newline'",
		Dir:  t.TempDir(),
	}, mockLogger)

	require.NoError(t, act.RunActivity(context.Background(), mocks.NewMockActivityContext(ctrl)))
}

func TestActivity_Run_StderrGoesToWarn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("noisy | something happened").Times(1)

	act := newShellActivity(t, domain.ActivitySpec{
		Name: "noisy",
		Run:  "echo 'something happened' >&2",
		Dir:  t.TempDir(),
	}, mockLogger)

	require.NoError(t, act.RunActivity(context.Background(), mocks.NewMockActivityContext(ctrl)))
}

func TestActivity_Run_EnvironmentOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("env-task | test-value-123").Times(1)

	act := newShellActivity(t, domain.ActivitySpec{
		Name: "env-task",
		Run:  "echo $MY_TEST_VAR",
		Dir:  t.TempDir(),
		Env: map[string]string{
			"MY_TEST_VAR": "test-value-123",
		},
	}, mockLogger)

	require.NoError(t, act.RunActivity(context.Background(), mocks.NewMockActivityContext(ctrl)))
}

func TestActivity_Run_WorkingDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "marker.txt"), []byte("from-workdir"), 0o644))

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("wd | from-workdir").Times(1)

	act := newShellActivity(t, domain.ActivitySpec{
		Name: "wd",
		Run:  "cat marker.txt",
		Dir:  dir,
	}, mockLogger)

	require.NoError(t, act.RunActivity(context.Background(), mocks.NewMockActivityContext(ctrl)))
}

func TestActivity_Run_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	act := newShellActivity(t, domain.ActivitySpec{
		Name: "fail",
		Run:  "exit 3",
		Dir:  t.TempDir(),
	}, mocks.NewMockLogger(ctrl))

	err := act.RunActivity(context.Background(), mocks.NewMockActivityContext(ctrl))
	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
}

func TestActivity_Run_StreamsToAmbientSpan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var captured bytes.Buffer
	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().Write(gomock.Any()).DoAndReturn(func(p []byte) (int, error) {
		return captured.Write(p)
	}).AnyTimes()

	act := newShellActivity(t, domain.ActivitySpec{
		Name: "traced",
		Run:  "echo hello-span",
		Dir:  t.TempDir(),
	}, mockLogger)

	ctx := ports.ContextWithSpan(context.Background(), span)
	require.NoError(t, act.RunActivity(ctx, mocks.NewMockActivityContext(ctrl)))

	assert.Contains(t, captured.String(), "hello-span")
}

func TestActivity_Run_OrchestrationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stash := domain.StashSpec{ID: "out", Includes: []string{"dist/**"}}
	archive := domain.ArchiveSpec{Includes: []string{"dist/**"}}

	ac := mocks.NewMockActivityContext(ctrl)
	gomock.InOrder(
		ac.EXPECT().Unstash(gomock.Any(), "deps").Return(nil),
		ac.EXPECT().Stash(gomock.Any(), stash).Return(nil),
		ac.EXPECT().ArchiveFiles(gomock.Any(), archive).Return(nil),
		ac.EXPECT().GatherTestResults(gomock.Any(), domain.RecordFilter{}).Return(nil),
	)

	act := newShellActivity(t, domain.ActivitySpec{
		Name:    "package",
		Unstash: []string{"deps"},
		Stashes: []domain.StashSpec{stash},
		Archive: &archive,
		Tests:   &domain.TestSpec{Records: "results.json"},
	}, mocks.NewMockLogger(ctrl))

	require.NoError(t, act.RunActivity(context.Background(), ac))
}

func TestActivity_Run_UnstashFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ac := mocks.NewMockActivityContext(ctrl)
	ac.EXPECT().Unstash(gomock.Any(), "deps").Return(errors.New("unknown stash"))

	act := newShellActivity(t, domain.ActivitySpec{
		Name:    "broken",
		Unstash: []string{"deps"},
		Run:     "echo never-reached",
	}, mocks.NewMockLogger(ctrl))

	assert.Error(t, act.RunActivity(context.Background(), ac))
}

func TestActivity_PrepareNode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("no working directory", func(t *testing.T) {
		act := newShellActivity(t, domain.ActivitySpec{Name: "a"}, mocks.NewMockLogger(ctrl))
		assert.NoError(t, act.PrepareNode(context.Background(), mocks.NewMockActivityContext(ctrl)))
	})

	t.Run("existing directory", func(t *testing.T) {
		act := newShellActivity(t, domain.ActivitySpec{Name: "a", Dir: t.TempDir()}, mocks.NewMockLogger(ctrl))
		assert.NoError(t, act.PrepareNode(context.Background(), mocks.NewMockActivityContext(ctrl)))
	})

	t.Run("missing directory", func(t *testing.T) {
		act := newShellActivity(t, domain.ActivitySpec{
			Name: "a",
			Dir:  filepath.Join(t.TempDir(), "absent"),
		}, mocks.NewMockLogger(ctrl))
		assert.Error(t, act.PrepareNode(context.Background(), mocks.NewMockActivityContext(ctrl)))
	})
}

func TestActivity_CleanupCapability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("without cleanup command", func(t *testing.T) {
		act := newShellActivity(t, domain.ActivitySpec{Name: "plain"}, mocks.NewMockLogger(ctrl))
		_, ok := act.(ports.CleanupActivity)
		assert.False(t, ok)
	})

	t.Run("with cleanup command", func(t *testing.T) {
		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Info("teardown | done").Times(1)

		act := newShellActivity(t, domain.ActivitySpec{
			Name:    "teardown",
			Cleanup: "echo done",
			Dir:     t.TempDir(),
		}, mockLogger)

		cleanup, ok := act.(ports.CleanupActivity)
		require.True(t, ok)
		require.NoError(t, cleanup.CleanupNode(context.Background(), mocks.NewMockActivityContext(ctrl)))
	})
}

func TestNewActivity_InvalidTestFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := shell.NewActivity(domain.ActivitySpec{
		Name:  "bad",
		Tests: &domain.TestSpec{Include: "("},
	}, mocks.NewMockLogger(ctrl))

	assert.Error(t, err)
}
