package metrics_test

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// gaugeValue returns the single sample of the named gauge.
func gaugeValue(g prometheus.Gatherer, name string) (float64, error) {
	mfs, err := g.Gather()
	if err != nil {
		return 0, err
	}
	for _, mf := range mfs {
		if mf.GetName() == name && len(mf.GetMetric()) == 1 {
			return mf.GetMetric()[0].GetGauge().GetValue(), nil
		}
	}

	return 0, fmt.Errorf("gauge %s not found", name)
}

// counterValue sums every series of the named counter.
func counterValue(g prometheus.Gatherer, name string) (float64, error) {
	mfs, err := g.Gather()
	if err != nil {
		return 0, err
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		var sum float64
		for _, m := range mf.GetMetric() {
			sum += m.GetCounter().GetValue()
		}
		return sum, nil
	}

	return 0, fmt.Errorf("counter %s not found", name)
}
