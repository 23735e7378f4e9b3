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

import "math"

// Point is a position on the canvas.
type Point struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

// Boundary is the decision line of a unit across the canvas.
type Boundary struct {
	// Label is the label of the classifier the line belongs to.
	Label int `json:"label" yaml:"label"`

	// Start is the point of the line at x = 0.
	Start Point `json:"start" yaml:"start"`

	// End is the point of the line at x = canvas width.
	End Point `json:"end" yaml:"end"`

	// Defined is false when the line can not be expressed as y = f(x),
	// Start and End are zero then.
	Defined bool `json:"defined" yaml:"defined"`
}

// DeriveBoundary returns the line where the activation of unit is zero,
// between x = 0 and x = canvasWidth. A zero second weight, or any
// coordinate that is not finite, yields an undefined boundary.
func DeriveBoundary(unit LinearUnit, canvasWidth float32) Boundary {
	w0, w1, t := unit.Weights[0], unit.Weights[1], unit.Threshold
	if w1 == 0 {
		return Boundary{}
	}

	start := Point{X: 0, Y: -t / w1}
	end := Point{X: canvasWidth, Y: -(w0*canvasWidth + t) / w1}
	if !isFinite(start.Y) || !isFinite(end.Y) || !isFinite(end.X) {
		return Boundary{}
	}

	return Boundary{
		Start:   start,
		End:     end,
		Defined: true,
	}
}

// DeriveBoundaries returns the boundary of every classifier in set order.
func DeriveBoundaries(set ClassifierSet, canvasWidth float32) []Boundary {
	boundaries := make([]Boundary, 0, len(set))
	for _, classifier := range set {
		boundary := DeriveBoundary(classifier.Unit, canvasWidth)
		boundary.Label = classifier.Label
		boundaries = append(boundaries, boundary)
	}

	return boundaries
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
