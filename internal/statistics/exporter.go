package statistics

import "github.com/prometheus/client_golang/prometheus"

const (
	namespace = "rotorpid"
)

func Register(collector prometheus.Collector) {
	prometheus.MustRegister(collector)
}
