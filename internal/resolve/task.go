package resolve

import "sync"

// Task is a closure that performs the (pure, predicate-driven)
// resolution work and yields a path or an error. ResolveAsync wraps a
// ResolveSync call in a Task and hands it to a pooled worker;
// ResolveSync itself does its work directly and does not build a Task.
type Task func() (string, error)

// Run evaluates t on the calling goroutine.
func (t Task) Run() (string, error) { return t() }

// Result is what arrives on the channel ResolveAsync returns.
type Result struct {
	Path string
	Err  error
}

var (
	poolOnce sync.Once
	pool     chan struct{}
)

// poolSize bounds how many resolve tasks run concurrently.
const poolSize = 8

func workerSlots() chan struct{} {
	poolOnce.Do(func() { pool = make(chan struct{}, poolSize) })
	return pool
}

// ResolveAsync runs ResolveSync on a pooled worker and reports the
// outcome on the returned channel. Cancellation is cooperative: the
// core has no cancellation signal of its own, so a caller that no
// longer cares simply stops reading from the channel — the buffered
// send below never blocks, so the worker goroutine still exits
// cleanly.
func ResolveAsync(specifier string, opts Options) <-chan Result {
	ch := make(chan Result, 1)
	slots := workerSlots()
	task := Task(func() (string, error) { return ResolveSync(specifier, opts) })
	go func() {
		slots <- struct{}{}
		defer func() { <-slots }()
		path, err := task.Run()
		ch <- Result{Path: path, Err: err}
	}()
	return ch
}
