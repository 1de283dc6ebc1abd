package registry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exports the live instance scores of a Registry at scrape time.
type Collector struct {
	registry     Registry
	healthScore  *prometheus.Desc
	failureCount *prometheus.Desc
}

func NewCollector(registry Registry, namespace string) *Collector {
	if namespace == "" {
		namespace = "gateway"
	}
	labels := []string{"service", "url"}
	return &Collector{
		registry: registry,
		healthScore: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "backend", "health_score"),
			"Current health score of a backend instance, between 0 and 1.",
			labels, nil,
		),
		failureCount: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "backend", "failures"),
			"Consecutive failures recorded for a backend instance.",
			labels, nil,
		),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.healthScore
	ch <- c.failureCount
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for service, instances := range c.registry.Snapshot() {
		for _, inst := range instances {
			ch <- prometheus.MustNewConstMetric(c.healthScore, prometheus.GaugeValue, inst.HealthScore, service, inst.URL)
			ch <- prometheus.MustNewConstMetric(c.failureCount, prometheus.GaugeValue, float64(inst.FailureCount), service, inst.URL)
		}
	}
}
