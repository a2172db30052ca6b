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
	"github.com/prometheus/client_golang/prometheus"

	"vlayer.dev/verrors/apis"
)

// reporterConfig collects construction-time settings that are consumed by
// New rather than stored on the Reporter.
type reporterConfig struct {
	registerer prometheus.Registerer
}

// ReporterOption configures a Reporter during New.
type ReporterOption func(*reporterConfig, *Reporter)

// WithCallback appends a delivery callback. Callbacks run in registration
// order.
func WithCallback(cb Callback) ReporterOption {
	return func(_ *reporterConfig, r *Reporter) {
		if cb != nil {
			r.callbacks = append(r.callbacks, cb)
		}
	}
}

// WithMinSeverity sets a severity floor: reports that resolve below it are
// counted in metrics but not delivered to callbacks. The default floor is
// SeverityDebug, i.e. everything not ignored is delivered.
func WithMinSeverity(s apis.Severity) ReporterOption {
	return func(_ *reporterConfig, r *Reporter) {
		r.minSeverity = s
	}
}

// WithRegisterer sets the Prometheus registerer for the reporter's metrics.
// Defaults to prometheus.DefaultRegisterer; pass a private registry in
// tests or when running several reporters in one process.
func WithRegisterer(reg prometheus.Registerer) ReporterOption {
	return func(cfg *reporterConfig, _ *Reporter) {
		cfg.registerer = reg
	}
}
