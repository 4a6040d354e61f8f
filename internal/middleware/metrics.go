package middleware

import (
	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// RedisErrors counts failed Redis commands by command name.
var RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jobhive_redis_errors_total",
	Help: "Total number of Redis command errors",
}, []string{"command"})

// UploadsTotal counts file-store operations by kind (resume, logo, avatar)
// and outcome (stored, rejected, delete_failed).
var UploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "jobhive_uploads_total",
	Help: "Total number of file store operations by kind and outcome",
}, []string{"kind", "outcome"})

// InitMetrics creates the Prometheus middleware for the Fiber app.
func InitMetrics(serviceName string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(serviceName)
}
