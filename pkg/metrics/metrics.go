// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type AllocationMetrics interface {
	AddAllocateElapsedTimeMs(mode string, elapsedTime time.Duration)
	AddCourtsFilled(mode string, numCourts int)
	AddUnfilledCourtReason(reason string)
	AddSearchIterations(strategy string, iterations int)
}

func NewMetrics(registry *prometheus.Registry) AllocationMetrics {
	return setupPrometheusMetrics(registry)
}
