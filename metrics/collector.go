// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package metrics exports channel counters to Prometheus.
package metrics

import (
	"sync"

	"code.hybscloud.com/chanq"
	"github.com/prometheus/client_golang/prometheus"
)

// Source is anything that reports channel counters, such as a chanq.Chan.
type Source interface {
	Stats() chanq.Stats
}

// Collector is a prometheus.Collector over a set of named channels.
// Counters are read from each channel at scrape time.
type Collector struct {
	mu       sync.RWMutex
	channels map[string]Source

	pending  *prometheus.Desc
	sent     *prometheus.Desc
	received *prometheus.Desc
}

// NewCollector creates a Collector whose metric names are prefixed
// with namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"channel"}
	return &Collector{
		channels: make(map[string]Source),
		pending: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "channel", "pending"),
			"Number of values waiting in the channel.",
			labels, nil,
		),
		sent: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "channel", "sent_total"),
			"Total number of values sent to the channel.",
			labels, nil,
		),
		received: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "channel", "received_total"),
			"Total number of values received from the channel.",
			labels, nil,
		),
	}
}

// Track adds src under name, replacing any source already tracked
// under that name.
func (c *Collector) Track(name string, src Source) {
	c.mu.Lock()
	c.channels[name] = src
	c.mu.Unlock()
}

// Untrack removes the source tracked under name.
func (c *Collector) Untrack(name string) {
	c.mu.Lock()
	delete(c.channels, name)
	c.mu.Unlock()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.pending
	ch <- c.sent
	ch <- c.received
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, src := range c.channels {
		s := src.Stats()
		ch <- prometheus.MustNewConstMetric(c.pending, prometheus.GaugeValue, float64(s.Pending), name)
		ch <- prometheus.MustNewConstMetric(c.sent, prometheus.CounterValue, float64(s.Sent), name)
		ch <- prometheus.MustNewConstMetric(c.received, prometheus.CounterValue, float64(s.Received), name)
	}
}
