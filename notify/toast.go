package notify

import "sync"

// Toaster is the user-facing notification surface. Every flow reports
// validation and mutation outcomes through it; nothing fails silently.
type Toaster interface {
	Success(message string)
	Error(message string)
}

// Discard drops all toasts.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}

// Recorder keeps every toast for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = append(r.Successes, message)
}

func (r *Recorder) Error(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Errors = append(r.Errors, message)
}

func (r *Recorder) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Successes) + len(r.Errors)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Successes = nil
	r.Errors = nil
}
