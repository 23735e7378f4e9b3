/*
 *     Copyright 2023 The Dragonfly Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"d7y.io/perceptron/canvas/config"
)

func TestMetrics_New(t *testing.T) {
	assert := assert.New(t)
	svr := New(&config.MetricsConfig{Enable: true, Addr: ":8001"})
	assert.Equal(":8001", svr.Addr)

	TrainingCount.WithLabelValues("perceptron").Inc()
	w := httptest.NewRecorder()
	svr.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Body.String(), "perceptron_canvas_version")
	assert.Contains(w.Body.String(), `perceptron_canvas_training_total{rule="perceptron"}`)
}
