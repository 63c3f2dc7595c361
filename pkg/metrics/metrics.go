package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostInstallRequests counts postinstall calls by outcome
	PostInstallRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "safenest_postinstall_requests_total",
		Help: "Postinstall requests by outcome.",
	}, []string{"outcome"})

	// DeviceJobsQueued counts jobs written to the device queue
	DeviceJobsQueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "safenest_device_jobs_queued_total",
		Help: "Jobs queued for device agents.",
	})
)
