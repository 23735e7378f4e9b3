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
	"math"
)

// Sample is a feature vector with its binary target, Positive or Negative.
type Sample struct {
	Features Features
	Target   int
}

// Result is a trained unit with the summary of its training.
type Result struct {
	// Unit is the last-epoch state of the unit.
	Unit LinearUnit

	// Epochs is the number of epochs run.
	Epochs int

	// Converged is true when every sample is classified correctly.
	Converged bool
}

// Train trains a unit on samples. Non-convergence is not an error,
// the last-epoch state is returned. A non-positive learning rate or
// maximum number of epochs returns the initial unit.
func Train(samples []Sample, options ...TrainOptionFunc) Result {
	result, _ := train(context.Background(), samples, NewTrainOptions(options...))
	return result
}

// TrainContext trains a unit like Train and checks ctx between epochs.
// When ctx is done it returns the state of the last completed epoch and ctx.Err().
func TrainContext(ctx context.Context, samples []Sample, options ...TrainOptionFunc) (Result, error) {
	return train(ctx, samples, NewTrainOptions(options...))
}

func train(ctx context.Context, samples []Sample, options *TrainOptions) (Result, error) {
	unit := options.Initializer()
	if options.LearningRate <= 0 || options.MaxIterations <= 0 {
		return Result{Unit: unit}, nil
	}

	if options.Rule == RuleLogistic {
		return trainLogistic(ctx, unit, samples, options)
	}

	return trainPerceptron(ctx, unit, samples, options)
}

// trainPerceptron updates the unit by (target - prediction) on every
// misclassified sample and stops after the first epoch without errors.
func trainPerceptron(ctx context.Context, unit LinearUnit, samples []Sample, options *TrainOptions) (Result, error) {
	result := Result{Unit: unit}
	for epoch := 0; epoch < options.MaxIterations; epoch++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		errorCount := 0
		for _, sample := range samples {
			prediction := result.Unit.Predict(sample.Features)
			if prediction == sample.Target {
				continue
			}

			// The error term is 2 or -2.
			delta := options.LearningRate * float32(sample.Target-prediction)
			for j := range result.Unit.Weights {
				result.Unit.Weights[j] += delta * sample.Features[j]
			}
			result.Unit.Threshold += delta
			errorCount++
		}

		result.Epochs++
		if errorCount == 0 {
			result.Converged = true
			break
		}
	}

	return result, nil
}

// trainLogistic updates the unit by (y - sigmoid(activation)) with y in {0, 1}
// on every sample of every epoch.
func trainLogistic(ctx context.Context, unit LinearUnit, samples []Sample, options *TrainOptions) (Result, error) {
	result := Result{Unit: unit}
	for epoch := 0; epoch < options.MaxIterations; epoch++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		for _, sample := range samples {
			var y float32
			if sample.Target == Positive {
				y = 1
			}

			delta := options.LearningRate * (y - sigmoid(result.Unit.Activation(sample.Features)))
			for j := range result.Unit.Weights {
				result.Unit.Weights[j] += delta * sample.Features[j]
			}
			result.Unit.Threshold += delta
		}

		result.Epochs++
	}

	result.Converged = misclassified(result.Unit, samples) == 0
	return result, nil
}

func sigmoid(z float32) float32 {
	return float32(1 / (1 + math.Exp(-float64(z))))
}

func misclassified(unit LinearUnit, samples []Sample) int {
	var count int
	for _, sample := range samples {
		if unit.Predict(sample.Features) != sample.Target {
			count++
		}
	}

	return count
}
