/*
   Copyright 2026 The VLAYER Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package report

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"vlayer.dev/verrors/apis"
)

// metrics holds the reporter's Prometheus collectors. Label cardinality is
// bounded: four domains times five severities.
type metrics struct {
	reports *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &metrics{
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "verrors_reports_total",
			Help: "Dispatched validation reports by domain and resolved severity.",
		}, []string{"domain", "severity"}),
	}
	if err := reg.Register(m.reports); err != nil {
		// Tolerate double registration so several reporters can share one
		// registry.
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			m.reports = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	return m, nil
}

func (m *metrics) observe(rep apis.Report) {
	m.reports.WithLabelValues(rep.Domain, rep.Severity.String()).Inc()
}
