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

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"d7y.io/perceptron/canvas/board"
	"d7y.io/perceptron/canvas/config"
	"d7y.io/perceptron/canvas/service"
	"d7y.io/perceptron/canvas/training"
	"d7y.io/perceptron/canvas/types"
)

func mockRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	b := board.New(&cfg.Canvas, board.Hyperparameters{
		LearningRate:  cfg.Training.LearningRate,
		MaxIterations: cfg.Training.MaxIterations,
	})

	return Init(cfg, service.New(service.WithBoard(b), service.WithTraining(training.New(cfg))))
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestRouter_Canvas(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)
	r := mockRouter(t, config.New())

	assert.Equal(http.StatusOK, serve(r, http.MethodGet, "/healthy", "").Code)

	// Empty board has an empty result.
	w := serve(r, http.MethodGet, "/api/v1/result", "")
	require.Equal(http.StatusOK, w.Code)
	var result board.Result
	require.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(result.Classifiers)

	// Two points with the default label, two with label 2.
	for _, body := range []string{`{"x": 1, "y": 1}`, `{"x": 2, "y": 2}`, `{"x": 5, "y": 5, "label": 2}`} {
		assert.Equal(http.StatusOK, serve(r, http.MethodPost, "/api/v1/points", body).Code)
	}

	assert.Equal(http.StatusOK, serve(r, http.MethodPut, "/api/v1/labels/selected", `{"label": 2}`).Code)
	assert.Equal(http.StatusOK, serve(r, http.MethodPost, "/api/v1/points", `{"x": 6, "y": 6}`).Code)

	w = serve(r, http.MethodGet, "/api/v1/points/export", "")
	require.Equal(http.StatusOK, w.Code)
	assert.Equal("x,y,label\n1,1,1\n2,2,1\n5,5,2\n6,6,2\n", w.Body.String())

	assert.Equal(http.StatusUnprocessableEntity, serve(r, http.MethodPut, "/api/v1/hyperparameters", `{"learning_rate": 0, "max_iterations": 100}`).Code)
	assert.Equal(http.StatusBadRequest, serve(r, http.MethodPost, "/api/v1/train", `{"max_iterations": -1}`).Code)

	w = serve(r, http.MethodPost, "/api/v1/train", "")
	require.Equal(http.StatusOK, w.Code)
	require.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(result.Converged)
	assert.Len(result.Classifiers, 1)
	assert.Len(result.Boundaries, 1)
	assert.Equal(float64(0), result.Metrics.SSE)
	assert.Equal([]int{1, 2}, result.Labels)

	w = serve(r, http.MethodGet, "/api/v1/labels", "")
	require.Equal(http.StatusOK, w.Code)
	var labels types.Labels
	require.NoError(json.Unmarshal(w.Body.Bytes(), &labels))
	assert.Equal(types.Labels{Selected: 2, Labels: []int{1, 2}}, labels)

	// Clear resets points, result and selected label.
	assert.Equal(http.StatusOK, serve(r, http.MethodDelete, "/api/v1/points", "").Code)
	w = serve(r, http.MethodGet, "/api/v1/points", "")
	assert.JSONEq("[]", w.Body.String())

	w = serve(r, http.MethodGet, "/api/v1/result", "")
	result = board.Result{}
	require.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(result.Classifiers)
	assert.Equal(float64(0), result.Metrics.MSE)

	w = serve(r, http.MethodGet, "/api/v1/labels", "")
	require.NoError(json.Unmarshal(w.Body.Bytes(), &labels))
	assert.Equal(config.DefaultCanvasLabel, labels.Selected)

	// Import a three class point set.
	w = serve(r, http.MethodPost, "/api/v1/points/import", "x,y,label\n1,1,1\n2,1,1\n9,1,2\n10,2,2\n1,9,3\n2,10,3\n")
	require.Equal(http.StatusOK, w.Code)
	assert.Equal(http.StatusBadRequest, serve(r, http.MethodPost, "/api/v1/points/import", "x,y,label\nNaN,1,1\n").Code)

	w = serve(r, http.MethodPost, "/api/v1/train", "")
	require.Equal(http.StatusOK, w.Code)
	require.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(result.Classifiers, 3)
	assert.Len(result.Boundaries, 3)
}

func TestRouter_Assets(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	assert.NoError(os.WriteFile(filepath.Join(dir, "index.html"), []byte("canvas"), 0600))

	cfg := config.New()
	cfg.Server.AssetsDir = dir
	w := serve(mockRouter(t, cfg), http.MethodGet, "/", "")
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("canvas", w.Body.String())
}

func TestRouter_Swagger(t *testing.T) {
	assert := assert.New(t)
	r := mockRouter(t, config.New())

	w := serve(r, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(http.StatusOK, w.Code)

	var doc map[string]any
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal("/api/v1", doc["basePath"])
	assert.Equal("Perceptron Canvas API", doc["info"].(map[string]any)["title"])
	assert.Contains(doc["paths"], "/train")
	assert.Contains(doc["paths"], "/points/import")

	assert.Equal(http.StatusOK, serve(r, http.MethodGet, "/swagger/index.html", "").Code)
}

func TestRouter_Telemetry(t *testing.T) {
	tests := []struct {
		name   string
		jaeger string
		expect func(t *testing.T, spans []sdktrace.ReadOnlySpan)
	}{
		{
			name: "tracing disabled",
			expect: func(t *testing.T, spans []sdktrace.ReadOnlySpan) {
				assert := assert.New(t)
				assert.Empty(spans)
			},
		},
		{
			name:   "tracing enabled with jaeger endpoint",
			jaeger: "http://localhost:14268/api/traces",
			expect: func(t *testing.T, spans []sdktrace.ReadOnlySpan) {
				assert := assert.New(t)
				assert.Len(spans, 1)
				assert.Equal("/healthy", spans[0].Name())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sr := tracetest.NewSpanRecorder()
			otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))

			cfg := config.New()
			cfg.Telemetry.Jaeger = tc.jaeger
			r := mockRouter(t, cfg)

			assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/healthy", "").Code)
			tc.expect(t, sr.Ended())
		})
	}
}
