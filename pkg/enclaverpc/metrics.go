// Copyright 2025 The Trustplane Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package enclaverpc

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/enclaveproto/trustplane/pkg/metrics"
	"github.com/enclaveproto/trustplane/pkg/private/prom"
)

var dispatches = metrics.NewPromCounter(promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "enclave",
		Subsystem: "rpc",
		Name:      "dispatches_total",
		Help:      "Total number of dispatched requests, by result.",
	},
	[]string{prom.LabelResult},
))
