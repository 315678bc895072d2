package governance

import (
	"context"
	"sync"
	"time"
)

// DefaultBatchConcurrency is the number of operations a BatchExecutor runs
// at once when none is given.
const DefaultBatchConcurrency = 5

// BatchOperation is a single call run by a BatchExecutor.
type BatchOperation struct {
	ID       string
	Run      func(ctx context.Context) (interface{}, error)
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor runs operations concurrently with a bounded number in flight.
type BatchExecutor struct {
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	return &BatchExecutor{concurrency: concurrency}
}

// SetTimeout bounds each operation; zero leaves only the caller's context.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs operations and returns their results in input order. An
// operation that fails does not stop the others.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) []BatchResult {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			result := b.run(ctx, operation)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results
}

func (b *BatchExecutor) run(ctx context.Context, operation BatchOperation) *BatchResult {
	opCtx := ctx

	if b.timeout > 0 {
		var cancel context.CancelFunc

		opCtx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	start := time.Now()
	result := &BatchResult{ID: operation.ID}

	err := opCtx.Err()
	if err == nil {
		result.Data, err = operation.Run(opCtx)
	}

	result.Duration = time.Since(start)
	result.Error = err
	result.Success = err == nil

	return result
}

// BatchErrors returns the errors of the failed results, in order.
func BatchErrors(results []BatchResult) []error {
	var errs []error

	for _, result := range results {
		if result.Error != nil {
			errs = append(errs, result.Error)
		}
	}

	return errs
}
