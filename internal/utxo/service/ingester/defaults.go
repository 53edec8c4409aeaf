package ingester

import "time"

const (
	defaultWorkerCount = 4

	outputBatcherCapacity      = 10_000
	outputBatcherFlushInterval = 5 * time.Second
	outputBatcherFlushRPS      = 20
)
