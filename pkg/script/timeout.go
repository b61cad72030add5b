package script

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultTimeout is the hard limit for a single scenario run.
const DefaultTimeout = 5 * time.Second

type runResult struct {
	result *Result
	errors []EvalError
	err    error
}

// waitWithTimeout waits for a result from ch, giving up after timeout or
// when ctx is done. The generation check discards results of runs that
// were superseded while they executed; a run that timed out keeps going
// in its goroutine, but everything it touches is private to it.
func waitWithTimeout(
	ctx context.Context,
	ch <-chan runResult,
	timeout time.Duration,
	gen uint64,
	mu *sync.Mutex,
	currentGen *uint64,
) (*Result, []EvalError, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		mu.Lock()
		current := *currentGen
		mu.Unlock()

		if gen != current {
			return nil, nil, ErrSuperseded
		}
		return res.result, res.errors, res.err

	case <-timer.C:
		return nil, nil, fmt.Errorf("%w after %s", ErrTimeout, timeout)

	case <-ctx.Done():
		return nil, nil, ctx.Err()
	}
}
