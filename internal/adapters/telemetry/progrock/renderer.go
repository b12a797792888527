// Package progrock renders pipeline progress as vertices on a progrock tape.
package progrock

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Renderer implements ports.Renderer on top of a progrock tape. Every span
// becomes a vertex carrying the activity's log stream, so the full run is
// replayable from the tape. Completion lines for top-level activities are
// printed to the output writer; nested spans and command output stay on the
// tape, command output reaches the console through the logger instead.
type Renderer struct {
	out io.Writer
	w   progrock.Writer
	rec *progrock.Recorder

	mu       sync.Mutex
	rootID   string
	vertices map[string]*vertexState
}

type vertexState struct {
	rec       *progrock.VertexRecorder
	name      string
	parentID  string
	startTime time.Time
}

// New creates a renderer recording onto a fresh tape. A nil output writer
// defaults to stderr.
func New(out io.Writer) *Renderer {
	return NewRenderer(progrock.NewTape(), out)
}

// NewRenderer creates a renderer recording onto the given progrock writer.
func NewRenderer(w progrock.Writer, out io.Writer) *Renderer {
	if out == nil {
		out = os.Stderr
	}
	return &Renderer{
		out:      out,
		w:        w,
		rec:      progrock.NewRecorder(w),
		vertices: make(map[string]*vertexState),
	}
}

// Start is a no-op; the renderer prints synchronously.
func (r *Renderer) Start(_ context.Context) error {
	return nil
}

// Stop closes the underlying tape when it supports closing.
func (r *Renderer) Stop() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// OnPlan prints the planned activities in schedule order.
func (r *Renderer) OnPlan(activities []string, _ map[string][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.out, "Planning %d activities: %s\n",
		len(activities), strings.Join(activities, ", "))
}

// OnActivityStart opens a vertex for the span. The first span without a
// parent is taken to be the pipeline root.
func (r *Renderer) OnActivityStart(spanID, parentID, name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if parentID == "" && r.rootID == "" {
		r.rootID = spanID
	}

	r.vertices[spanID] = &vertexState{
		rec:       r.rec.Vertex(digest.FromString(spanID), name),
		name:      name,
		parentID:  parentID,
		startTime: startTime,
	}
}

// OnActivityLog streams output onto the span's vertex.
func (r *Renderer) OnActivityLog(spanID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.vertices[spanID]
	if !ok {
		return
	}
	_, _ = state.rec.Stdout().Write(data)
}

// OnActivityComplete finishes the vertex and prints the outcome of top-level
// activities.
func (r *Renderer) OnActivityComplete(spanID string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.vertices[spanID]
	if !ok {
		return
	}
	delete(r.vertices, spanID)

	state.rec.Done(err)

	// Only direct children of the root get a console line. The root span and
	// nested spans would duplicate what those lines already say.
	if r.rootID == "" || state.parentID != r.rootID {
		return
	}

	duration := endTime.Sub(state.startTime)
	if err != nil {
		_, _ = fmt.Fprintf(r.out, "✗ %s failed after %s: %s\n", state.name, duration, err)
		return
	}
	_, _ = fmt.Fprintf(r.out, "✓ %s finished in %s\n", state.name, duration)
}
