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
	"fmt"
	"math/rand"
)

const (
	// DefaultLearningRate is default learning rate of training.
	DefaultLearningRate = 0.1

	// DefaultMaxIterations is default maximum number of epochs of training.
	DefaultMaxIterations = 100

	// RandomInitRange is the width of the interval, centered on zero,
	// that random initial parameters are drawn from.
	RandomInitRange = 1.0
)

// Rule is the update rule used to train a unit.
type Rule int

const (
	// RulePerceptron is the error-driven perceptron learning rule.
	RulePerceptron Rule = iota

	// RuleLogistic is the sigmoid gradient rule, it always runs every epoch.
	RuleLogistic
)

const (
	// RulePerceptronName is the name of perceptron rule.
	RulePerceptronName = "perceptron"

	// RuleLogisticName is the name of logistic rule.
	RuleLogisticName = "logistic"
)

// String returns the name of rule.
func (r Rule) String() string {
	switch r {
	case RuleLogistic:
		return RuleLogisticName
	}

	return RulePerceptronName
}

// ParseRule parses rule by name.
func ParseRule(name string) (Rule, error) {
	switch name {
	case RulePerceptronName, "":
		return RulePerceptron, nil
	case RuleLogisticName:
		return RuleLogistic, nil
	}

	return RulePerceptron, fmt.Errorf("invalid rule %q", name)
}

// TwoClassPolicy decides how many units are trained when exactly two labels exist.
type TwoClassPolicy int

const (
	// TwoClassSingleUnit trains one unit for the first-seen label,
	// the other label is implicit as not positive.
	TwoClassSingleUnit TwoClassPolicy = iota

	// TwoClassPerClass trains one unit per label like any other class count.
	TwoClassPerClass
)

const (
	// TwoClassSingleUnitName is the name of single unit policy.
	TwoClassSingleUnitName = "single"

	// TwoClassPerClassName is the name of per class policy.
	TwoClassPerClassName = "perClass"
)

// String returns the name of policy.
func (p TwoClassPolicy) String() string {
	switch p {
	case TwoClassPerClass:
		return TwoClassPerClassName
	}

	return TwoClassSingleUnitName
}

// ParseTwoClassPolicy parses two class policy by name.
func ParseTwoClassPolicy(name string) (TwoClassPolicy, error) {
	switch name {
	case TwoClassSingleUnitName, "":
		return TwoClassSingleUnit, nil
	case TwoClassPerClassName:
		return TwoClassPerClass, nil
	}

	return TwoClassSingleUnit, fmt.Errorf("invalid two class policy %q", name)
}

// Initializer returns the parameters a unit starts training from.
type Initializer func() LinearUnit

// ZeroInitializer starts every unit from all-zero weights and threshold.
func ZeroInitializer() Initializer {
	return func() LinearUnit {
		return LinearUnit{}
	}
}

// RandomInitializer draws weights and threshold from [-0.5, 0.5) of the given source.
// Units trained by one call draw from the source in training order, so a seeded
// source reproduces the same units.
func RandomInitializer(r *rand.Rand) Initializer {
	return func() LinearUnit {
		var unit LinearUnit
		for i := range unit.Weights {
			unit.Weights[i] = r.Float32()*RandomInitRange - RandomInitRange/2
		}
		unit.Threshold = r.Float32()*RandomInitRange - RandomInitRange/2

		return unit
	}
}

// TrainOptions is the hyperparameters of training.
type TrainOptions struct {
	// LearningRate scales every update.
	LearningRate float32

	// MaxIterations bounds the number of epochs.
	MaxIterations int

	// Initializer creates the initial unit.
	Initializer Initializer

	// TwoClassPolicy applies when exactly two labels exist.
	TwoClassPolicy TwoClassPolicy

	// Rule is the update rule.
	Rule Rule
}

// TrainOptionFunc sets an option of training.
type TrainOptionFunc func(options *TrainOptions)

// WithLearningRate sets the learning rate.
func WithLearningRate(learningRate float32) TrainOptionFunc {
	return func(options *TrainOptions) {
		options.LearningRate = learningRate
	}
}

// WithMaxIterations sets the maximum number of epochs.
func WithMaxIterations(maxIterations int) TrainOptionFunc {
	return func(options *TrainOptions) {
		options.MaxIterations = maxIterations
	}
}

// WithInitializer sets the initializer of units.
func WithInitializer(initializer Initializer) TrainOptionFunc {
	return func(options *TrainOptions) {
		if initializer != nil {
			options.Initializer = initializer
		}
	}
}

// WithTwoClassPolicy sets the two class policy.
func WithTwoClassPolicy(policy TwoClassPolicy) TrainOptionFunc {
	return func(options *TrainOptions) {
		options.TwoClassPolicy = policy
	}
}

// WithRule sets the update rule.
func WithRule(rule Rule) TrainOptionFunc {
	return func(options *TrainOptions) {
		options.Rule = rule
	}
}

// NewTrainOptions returns the default options with the given options applied.
func NewTrainOptions(options ...TrainOptionFunc) *TrainOptions {
	o := &TrainOptions{
		LearningRate:   DefaultLearningRate,
		MaxIterations:  DefaultMaxIterations,
		Initializer:    ZeroInitializer(),
		TwoClassPolicy: TwoClassSingleUnit,
		Rule:           RulePerceptron,
	}

	for _, opt := range options {
		opt(o)
	}

	return o
}
