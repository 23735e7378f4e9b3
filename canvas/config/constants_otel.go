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

package config

import "go.opentelemetry.io/otel/attribute"

const (
	AttributeTrainingID            = attribute.Key("perceptron.training.id")
	AttributeTrainingRule          = attribute.Key("perceptron.training.rule")
	AttributeTrainingPoints        = attribute.Key("perceptron.training.points")
	AttributeTrainingLearningRate  = attribute.Key("perceptron.training.learning.rate")
	AttributeTrainingMaxIterations = attribute.Key("perceptron.training.max.iterations")
	AttributeTrainingEpochs        = attribute.Key("perceptron.training.epochs")
	AttributeTrainingConverged     = attribute.Key("perceptron.training.converged")
	AttributeTrainingSSE           = attribute.Key("perceptron.training.sse")
)

const (
	SpanTrain = "train"
)
