// Package progrock implements weft.Telemetry on top of
// github.com/vito/progrock, rendering one vertex per task.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"go.weft.dev/weft"
)

// Recorder implements weft.Telemetry, recording one progrock vertex per
// task name visited during a Run.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

var _ weft.Telemetry = (*Recorder)(nil)

// New creates a Recorder writing vertices to w.
func New(w progrock.Writer) *Recorder {
	return &Recorder{w: w, rec: progrock.NewRecorder(w)}
}

// Start begins a vertex for taskname, digest-keyed so repeated runs of the
// same task name reuse the same vertex identity in the tape.
func (r *Recorder) Start(_ context.Context, taskname string) weft.Span {
	v := r.rec.Vertex(digest.FromString(taskname), taskname)
	return weft.NewSpan(
		func(err error) { v.Done(err) },
		func() { v.Cached() },
	)
}

// Close flushes and closes the underlying writer, if it supports it.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
