package statistics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tbeckfield/rotorpid/internal/controller"
	"github.com/tbeckfield/rotorpid/internal/pid"
)

const loopSubsystem = "loop"

type RateLoopCollector struct {
	loop *controller.RateLoop

	axisOutput *prometheus.Desc
	pTerm      *prometheus.Desc
	iTerm      *prometheus.Desc
	dTerm      *prometheus.Desc

	avgCycleTime *prometheus.Desc
	cycleCount   *prometheus.Desc
}

func NewRateLoopCollector(loop *controller.RateLoop) *RateLoopCollector {
	return &RateLoopCollector{
		loop: loop,
		axisOutput: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "axis_output"),
			"Rate loop correction handed to the mixer for this axis",
			[]string{"axis"}, nil,
		),
		pTerm: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "pterm"),
			"Proportional contribution of the last cycle for this axis",
			[]string{"axis"}, nil,
		),
		iTerm: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "iterm"),
			"Integral contribution of the last cycle for this axis",
			[]string{"axis"}, nil,
		),
		dTerm: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "dterm"),
			"Derivative contribution of the last cycle for this axis",
			[]string{"axis"}, nil,
		),
		avgCycleTime: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "avg_cycle_time_us"),
			"Average measured control cycle time over the rolling window, in microseconds",
			nil, nil,
		),
		cycleCount: prometheus.NewDesc(prometheus.BuildFQName(namespace, loopSubsystem, "cycle_count"),
			"Counter for completed control cycles",
			nil, nil,
		),
	}
}

func (collector *RateLoopCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.axisOutput
	ch <- collector.pTerm
	ch <- collector.iTerm
	ch <- collector.dTerm
	ch <- collector.avgCycleTime
	ch <- collector.cycleCount
}

// Collect implements required collect function for all prometheus collectors
func (collector *RateLoopCollector) Collect(ch chan<- prometheus.Metric) {
	snapshot := collector.loop.Snapshot()

	for axis := pid.Roll; axis < pid.AxisCount; axis++ {
		label := axis.String()
		ch <- prometheus.MustNewConstMetric(collector.axisOutput, prometheus.GaugeValue, float64(snapshot.Output[axis]), label)
		ch <- prometheus.MustNewConstMetric(collector.pTerm, prometheus.GaugeValue, float64(snapshot.Terms[axis].P), label)
		ch <- prometheus.MustNewConstMetric(collector.iTerm, prometheus.GaugeValue, float64(snapshot.Terms[axis].I), label)
		ch <- prometheus.MustNewConstMetric(collector.dTerm, prometheus.GaugeValue, float64(snapshot.Terms[axis].D), label)
	}

	ch <- prometheus.MustNewConstMetric(collector.avgCycleTime, prometheus.GaugeValue, snapshot.AvgCycleTime)
	ch <- prometheus.MustNewConstMetric(collector.cycleCount, prometheus.CounterValue, float64(snapshot.Cycles))
}
