package ports

// ProgressEvent is a snapshot of a conversion. Processed and Skipped only
// grow; Total is an estimate and zero when unknown.
type ProgressEvent struct {
	Processed int
	Skipped   int
	Total     int
}

// Done returns the number of frames handled so far, converted or skipped.
func (e ProgressEvent) Done() int {
	return e.Processed + e.Skipped
}

// ProgressObserver is notified once per frame and once when a run ends.
type ProgressObserver interface {
	Frame(event ProgressEvent)
	Finish(event ProgressEvent)
}

// ProgressFunc adapts a function to ProgressObserver. Finish is forwarded to
// the same function.
type ProgressFunc func(event ProgressEvent)

// Frame implements ProgressObserver.
func (f ProgressFunc) Frame(event ProgressEvent) { f(event) }

// Finish implements ProgressObserver.
func (f ProgressFunc) Finish(event ProgressEvent) { f(event) }

// NoProgress discards progress events.
var NoProgress ProgressObserver = noProgress{}

type noProgress struct{}

func (noProgress) Frame(ProgressEvent)  {}
func (noProgress) Finish(ProgressEvent) {}
