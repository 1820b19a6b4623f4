package wizard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/metrics"
)

// CommandExecutor performs one command. Executor is the production implementation.
type CommandExecutor interface {
	Execute(ctx context.Context, cmd Command) Event
}

// Runner owns a Model, executes the commands Reduce emits and feeds their results back.
// Work for a superseded generation is canceled and its late results are dropped.
type Runner struct {
	exec    CommandExecutor
	logger  *slog.Logger
	metrics *metrics.Recorder

	mu        sync.Mutex
	model     Model
	base      context.Context
	stop      context.CancelFunc
	genCtx    context.Context
	genCancel context.CancelFunc
	gen       uint64
	closed    bool
	subs      map[int]func(Model)
	nextSub   int

	notifyMu sync.Mutex
	wg       sync.WaitGroup
	once     sync.Once
}

// NewRunner starts a runner from initial. Cancel parent or call Close to stop it.
func NewRunner(parent context.Context, exec CommandExecutor, initial Model, logger *slog.Logger, recorder *metrics.Recorder) *Runner {
	if parent == nil {
		parent = context.Background()
	}
	base, stop := context.WithCancel(parent)
	return &Runner{
		exec:    exec,
		logger:  logger,
		metrics: recorder,
		model:   initial,
		base:    base,
		stop:    stop,
		subs:    make(map[int]func(Model)),
	}
}

// Model returns the current model.
func (r *Runner) Model() Model {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.model
}

// OnChange registers fn to receive the model after every change and returns a func that
// removes it. fn runs on the dispatching goroutine and must not call Dispatch.
func (r *Runner) OnChange(fn func(Model)) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// Dispatch folds ev into the model and starts any commands it produces.
func (r *Runner) Dispatch(ev Event) {
	if ev == nil {
		return
	}
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if IsStale(r.model, ev) {
		step := StepOfEvent(ev)
		r.mu.Unlock()
		r.metrics.RecordStaleResult(string(step))
		logging.Debug(r.logger, "dropping stale result", slog.String(logging.FieldStep, string(step)))
		return
	}
	before := r.model.Generation
	next, cmds := Reduce(r.model, ev)
	r.model = next
	if next.Generation != before {
		r.rotateLocked(next.Generation)
	}
	for _, cmd := range cmds {
		r.startLocked(cmd)
	}
	model := r.model
	subs := make([]func(Model), 0, len(r.subs))
	for _, fn := range r.subs {
		subs = append(subs, fn)
	}
	r.mu.Unlock()

	for _, fn := range subs {
		fn(model)
	}
}

// Wait blocks until no commands are in flight.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Close cancels in-flight work and waits for it to finish. Later dispatches are ignored.
func (r *Runner) Close() {
	r.once.Do(func() {
		r.mu.Lock()
		r.closed = true
		r.stop()
		r.mu.Unlock()
		r.wg.Wait()
	})
}

// rotateLocked cancels the previous generation's context. Callers hold r.mu.
func (r *Runner) rotateLocked(gen uint64) {
	if r.genCancel != nil {
		r.genCancel()
	}
	r.genCtx, r.genCancel = context.WithCancel(r.base)
	r.gen = gen
}

func (r *Runner) startLocked(cmd Command) {
	if r.genCtx == nil || cmd.Gen() != r.gen {
		r.rotateLocked(cmd.Gen())
	}
	ctx := logging.WithLogger(r.genCtx, r.logger)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ev := r.exec.Execute(ctx, cmd)
		if ev == nil || r.base.Err() != nil {
			return
		}
		r.Dispatch(ev)
	}()
}
