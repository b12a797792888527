package progrock_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gantrybuild/gantry/internal/adapters/telemetry/progrock"
	"github.com/gantrybuild/gantry/internal/core/ports"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Renderer = (*progrock.Renderer)(nil)
}

func TestRenderer_PipelineLifecycle(t *testing.T) {
	var out bytes.Buffer
	r := progrock.New(&out)
	require.NoError(t, r.Start(t.Context()))

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	r.OnPlan([]string{"build", "test"}, map[string][]string{"test": {"build"}})
	r.OnActivityStart("root", "", "pipeline", base)
	r.OnActivityStart("s1", "root", "build", base)
	r.OnActivityLog("s1", []byte("compiling\n"))
	r.OnActivityComplete("s1", base.Add(2*time.Second), nil)
	r.OnActivityStart("s2", "root", "test", base.Add(2*time.Second))
	r.OnActivityComplete("s2", base.Add(3500*time.Millisecond), errors.New("boom"))
	r.OnActivityComplete("root", base.Add(4*time.Second), nil)

	require.NoError(t, r.Stop())

	assert.Equal(t,
		"Planning 2 activities: build, test\n"+
			"✓ build finished in 2s\n"+
			"✗ test failed after 1.5s: boom\n",
		out.String())
}

func TestRenderer_NestedSpansStayOffTheConsole(t *testing.T) {
	var out bytes.Buffer
	r := progrock.New(&out)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	r.OnActivityStart("root", "", "pipeline", base)
	r.OnActivityStart("s1", "root", "build", base)
	r.OnActivityStart("s2", "s1", "run build", base)
	r.OnActivityLog("s2", []byte("output\n"))
	r.OnActivityComplete("s2", base.Add(time.Second), nil)

	assert.Empty(t, out.String())
}

func TestRenderer_IgnoresUnknownSpans(t *testing.T) {
	var out bytes.Buffer
	r := progrock.New(&out)

	r.OnActivityLog("missing", []byte("dropped"))
	r.OnActivityComplete("missing", time.Now(), nil)

	assert.Empty(t, out.String())
}

func TestRenderer_NilOutputDefaultsToStderr(t *testing.T) {
	r := progrock.New(nil)

	base := time.Now()
	r.OnActivityStart("root", "", "pipeline", base)
	r.OnActivityComplete("root", base.Add(time.Second), nil)

	require.NoError(t, r.Stop())
}
