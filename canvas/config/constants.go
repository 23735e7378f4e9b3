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

import (
	"time"

	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/perceptron"
	"d7y.io/perceptron/pkg/types"
)

const (
	// DefaultServerPort is default port for server.
	DefaultServerPort = 8080

	// DefaultLogRotateMaxSize is default size in megabytes of a log file before rotation.
	DefaultLogRotateMaxSize = logger.DefaultRotateMaxSize

	// DefaultLogRotateMaxAge is default number of days to retain old log files.
	DefaultLogRotateMaxAge = logger.DefaultRotateMaxAge

	// DefaultLogRotateMaxBackups is default number of old log files to keep.
	DefaultLogRotateMaxBackups = logger.DefaultRotateMaxBackups
)

const (
	// DefaultCanvasWidth is default width of canvas.
	DefaultCanvasWidth = 600

	// DefaultCanvasHeight is default height of canvas.
	DefaultCanvasHeight = 400

	// DefaultCanvasLabel is default selected label of canvas.
	DefaultCanvasLabel = 1
)

var (
	// DefaultCanvasLabels is default label palette of canvas.
	DefaultCanvasLabels = []int{1, 2, 3, 4}
)

const (
	// InitializerZero starts units from zero parameters.
	InitializerZero = "zero"

	// InitializerRandom starts units from random parameters.
	InitializerRandom = "random"
)

const (
	// DefaultTrainingLearningRate is default learning rate of training.
	DefaultTrainingLearningRate = perceptron.DefaultLearningRate

	// DefaultTrainingMaxIterations is default maximum number of epochs of training.
	DefaultTrainingMaxIterations = perceptron.DefaultMaxIterations

	// DefaultTrainingInitializer is default initializer of training.
	DefaultTrainingInitializer = InitializerZero

	// DefaultTrainingTimeout is default timeout of a training run.
	DefaultTrainingTimeout = 30 * time.Second
)

const (
	// DefaultTelemetryServiceName is default service name of traces.
	DefaultTelemetryServiceName = types.PerceptronName
)

const (
	// DefaultMetricsAddr is default address for metrics server.
	DefaultMetricsAddr = ":8000"
)
