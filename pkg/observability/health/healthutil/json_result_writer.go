/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package healthutil

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alexliesenfeld/health"
)

type healthStatus struct {
	Status   health.AvailabilityStatus `json:"status"`
	Services map[string]serviceResult  `json:"services,omitempty"`
}

type serviceResult struct {
	health.CheckResult
	LastResponseTime    string `json:"lastResponseTime,omitempty"`
	AverageResponseTime string `json:"avgResponseTime,omitempty"`
}

// JSONResultWriter renders checker results keyed by service name.
type JSONResultWriter struct {
	times *ResponseTimes
}

// NewJSONResultWriter returns a writer that adds latencies from times when it is not nil.
func NewJSONResultWriter(times *ResponseTimes) *JSONResultWriter {
	return &JSONResultWriter{times: times}
}

func (rw *JSONResultWriter) Write(result *health.CheckerResult, status int, w http.ResponseWriter, _ *http.Request) error { //nolint:lll
	r := &healthStatus{Status: result.Status}

	if result.Details != nil {
		r.Services = map[string]serviceResult{}

		for name, cr := range *result.Details {
			sr := serviceResult{CheckResult: cr}

			if rw.times != nil {
				if t, ok := rw.times.Get(name); ok {
					sr.LastResponseTime = t.Last.String()
					sr.AverageResponseTime = t.Average.String()
				}
			}

			r.Services[name] = sr
		}
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("cannot marshal response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err = w.Write(b)

	return err
}
