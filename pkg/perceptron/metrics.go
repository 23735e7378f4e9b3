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

package perceptron

// Metrics is the aggregate 0/1 loss of a classifier set over a dataset.
type Metrics struct {
	// SSE is the number of (point, classifier) pairs predicted wrong.
	SSE float64 `json:"sse" yaml:"sse"`

	// MSE is SSE divided by the number of points.
	MSE float64 `json:"mse" yaml:"mse"`
}

// ComputeMetrics compares the prediction of every classifier for every point
// with the target the point has for that classifier's label. A wrong
// prediction counts 1, a right one 0. An empty dataset yields zero metrics.
func ComputeMetrics(set ClassifierSet, points []LabeledPoint) Metrics {
	if len(points) == 0 {
		return Metrics{}
	}

	var sse float64
	for _, point := range points {
		for _, classifier := range set {
			target := Negative
			if point.Label == classifier.Label {
				target = Positive
			}

			if classifier.Unit.Predict(point.Features) != target {
				sse++
			}
		}
	}

	return Metrics{
		SSE: sse,
		MSE: sse / float64(len(points)),
	}
}
