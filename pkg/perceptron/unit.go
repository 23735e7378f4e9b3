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

const (
	// Dimensions is the number of features of a point, the canvas coordinates.
	Dimensions = 2

	// Positive is the prediction for the class a unit represents.
	Positive = 1

	// Negative is the prediction for every other class.
	Negative = -1
)

// Features is the raw coordinates of a point, no normalization is applied.
type Features [Dimensions]float32

// Weights is the weight vector of a linear unit.
type Weights [Dimensions]float32

// LinearUnit holds the parameters of one binary decision.
type LinearUnit struct {
	// Weights is multiplied with features.
	Weights Weights `json:"weights" yaml:"weights"`

	// Threshold is added to the weighted sum of features.
	Threshold float32 `json:"threshold" yaml:"threshold"`
}

// Activation returns threshold plus the weighted sum of features.
func Activation(features Features, weights Weights, threshold float32) float32 {
	activation := threshold
	for i := range features {
		activation += weights[i] * features[i]
	}

	return activation
}

// Predict maps features to Positive when the activation is not negative,
// otherwise to Negative.
func Predict(features Features, weights Weights, threshold float32) int {
	if Activation(features, weights, threshold) >= 0 {
		return Positive
	}

	return Negative
}

// Activation returns the activation of the unit for features.
func (u LinearUnit) Activation(features Features) float32 {
	return Activation(features, u.Weights, u.Threshold)
}

// Predict returns the prediction of the unit for features.
func (u LinearUnit) Predict(features Features) int {
	return Predict(features, u.Weights, u.Threshold)
}
