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

import (
	"context"
)

// LabeledPoint is a point placed on the canvas with its class label.
type LabeledPoint struct {
	// Features is the coordinates of the point.
	Features Features `json:"features" yaml:"features"`

	// Label is the class identifier of the point.
	Label int `json:"label" yaml:"label"`
}

// Classifier is a unit trained to recognize one label.
type Classifier struct {
	// Label is the class the unit predicts Positive for.
	Label int `json:"label" yaml:"label"`

	// Unit is the trained unit.
	Unit LinearUnit `json:"unit" yaml:"unit"`

	// Epochs is the number of epochs run.
	Epochs int `json:"epochs" yaml:"epochs"`

	// Converged is true when the unit separates its label from the others.
	Converged bool `json:"converged" yaml:"converged"`
}

// ClassifierSet is the ordered result of one-vs-all training.
type ClassifierSet []Classifier

// Labels returns the distinct labels of points in first-seen order.
func Labels(points []LabeledPoint) []int {
	seen := make(map[int]struct{}, len(points))
	labels := []int{}
	for _, point := range points {
		if _, ok := seen[point.Label]; ok {
			continue
		}

		seen[point.Label] = struct{}{}
		labels = append(labels, point.Label)
	}

	return labels
}

// Binarize returns samples targeting Positive for label and Negative for every other label.
func Binarize(points []LabeledPoint, label int) []Sample {
	samples := make([]Sample, len(points))
	for i, point := range points {
		samples[i] = Sample{Features: point.Features, Target: Negative}
		if point.Label == label {
			samples[i].Target = Positive
		}
	}

	return samples
}

// TrainMulticlass trains one unit per distinct label against all others.
// With exactly two labels and the single unit policy only the first-seen
// label gets a unit. An empty dataset returns an empty set.
func TrainMulticlass(points []LabeledPoint, options ...TrainOptionFunc) ClassifierSet {
	set, _ := trainMulticlass(context.Background(), points, NewTrainOptions(options...))
	return set
}

// TrainMulticlassContext trains like TrainMulticlass and checks ctx between epochs.
func TrainMulticlassContext(ctx context.Context, points []LabeledPoint, options ...TrainOptionFunc) (ClassifierSet, error) {
	return trainMulticlass(ctx, points, NewTrainOptions(options...))
}

func trainMulticlass(ctx context.Context, points []LabeledPoint, options *TrainOptions) (ClassifierSet, error) {
	labels := Labels(points)
	if len(labels) == 2 && options.TwoClassPolicy == TwoClassSingleUnit {
		labels = labels[:1]
	}

	set := make(ClassifierSet, 0, len(labels))
	for _, label := range labels {
		result, err := train(ctx, Binarize(points, label), options)
		if err != nil {
			return nil, err
		}

		set = append(set, Classifier{
			Label:     label,
			Unit:      result.Unit,
			Epochs:    result.Epochs,
			Converged: result.Converged,
		})
	}

	return set, nil
}

// Converged returns true when every classifier of the set converged.
func (s ClassifierSet) Converged() bool {
	for _, classifier := range s {
		if !classifier.Converged {
			return false
		}
	}

	return true
}

// Epochs returns the total number of epochs run by the set.
func (s ClassifierSet) Epochs() int {
	var epochs int
	for _, classifier := range s {
		epochs += classifier.Epochs
	}

	return epochs
}
