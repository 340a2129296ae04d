package testsetup

import (
	"time"

	"github.com/AccelByte/extend-court-allocator/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) AddAllocateElapsedTimeMs(mode string, elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddCourtsFilled(mode string, numCourts int) {
}

func (s stubMetricsCollection) AddUnfilledCourtReason(reason string) {
}

func (s stubMetricsCollection) AddSearchIterations(strategy string, iterations int) {
}

func NewMetrics() metrics.AllocationMetrics {
	return stubMetricsCollection{}
}
