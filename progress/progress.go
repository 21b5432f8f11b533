package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/pydeploy/internal/clock"
)

// Delta represents an incremental counter change emitted by a step runner.
type Delta struct {
	Completed int
	Skipped   int
	Failed    int
	Running   int
}

// Progress keeps aggregated step counters for one task run. It is safe for concurrent use.
type Progress struct {
	RunID     string
	Task      string
	StartedAt time.Time
	Step      string //last reported step

	CompletedSteps int
	SkippedSteps   int
	FailedSteps    int
	RunningSteps   int

	sync.Mutex
	onChange func(Progress)
}

// Update applies the supplied delta for the named step. The onChange callback, if any, receives
// a copy outside the critical section.
func (p *Progress) Update(step string, d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.Step = step
	p.CompletedSteps += d.Completed
	p.SkippedSteps += d.Skipped
	p.FailedSteps += d.Failed
	p.RunningSteps += d.Running
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// Elapsed returns time since the run started
func (p *Progress) Elapsed() time.Duration {
	return clock.Since(p.StartedAt)
}

func (p *Progress) copy() Progress {
	return Progress{
		RunID:          p.RunID,
		Task:           p.Task,
		StartedAt:      p.StartedAt,
		Step:           p.Step,
		CompletedSteps: p.CompletedSteps,
		SkippedSteps:   p.SkippedSteps,
		FailedSteps:    p.FailedSteps,
		RunningSteps:   p.RunningSteps,
	}
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a new Progress tracker and embeds it in a derived context.
func WithNewTracker(ctx context.Context, runID, task string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		RunID:     runID,
		Task:      task,
		StartedAt: clock.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the Progress tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the supplied delta.
func UpdateCtx(ctx context.Context, step string, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(step, d)
	}
}
