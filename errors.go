package future

import "fmt"

// panic messages
const (
	nilProducerPanicMsg   = "future: the provided producer is nil"
	nilSchedulerPanicMsg  = "future: the provided scheduler is nil"
	invalidFuturePanicMsg = "future: the future handle is invalid"
)

// PanicError wraps a panic that happened inside a future's producer.
//
// It's captured in the future's failure slot by the goroutine that ran the
// producer, and re-raised on every Get call on that future, so a failure
// crosses goroutines the same way it would have surfaced synchronously.
type PanicError struct {
	// V is the value the producer's panic was called with.
	V any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("future: producer panicked: %v", e.V)
}
