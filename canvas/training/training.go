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

package training

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"d7y.io/perceptron/canvas/board"
	"d7y.io/perceptron/canvas/config"
	"d7y.io/perceptron/canvas/metrics"
	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/perceptron"
)

var tracer = otel.Tracer("canvas-training")

//go:generate mockgen -destination mocks/training_mock.go -source training.go -package mocks

// Training defines the interface to train classifiers of the canvas.
type Training interface {
	// Train trains one-vs-all classifiers on the snapshot of the board.
	Train(context.Context, board.Snapshot) (*board.Result, error)
}

// training implements Training interface.
type training struct {
	// Canvas service config.
	config *config.Config
}

// New returns a new Training.
func New(cfg *config.Config) Training {
	return &training{config: cfg}
}

// Train trains classifiers, then derives boundaries and metrics of them.
func (t *training) Train(ctx context.Context, snapshot board.Snapshot) (*board.Result, error) {
	id := uuid.NewString()
	log := logger.WithTraining(id)
	rule, _ := perceptron.ParseRule(t.config.Training.Rule)
	metrics.TrainingCount.WithLabelValues(rule.String()).Inc()

	ctx, span := tracer.Start(ctx, config.SpanTrain, trace.WithSpanKind(trace.SpanKindInternal))
	span.SetAttributes(config.AttributeTrainingID.String(id))
	span.SetAttributes(config.AttributeTrainingRule.String(rule.String()))
	span.SetAttributes(config.AttributeTrainingPoints.Int(len(snapshot.Points)))
	span.SetAttributes(config.AttributeTrainingLearningRate.Float64(float64(snapshot.Hyperparameters.LearningRate)))
	span.SetAttributes(config.AttributeTrainingMaxIterations.Int(snapshot.Hyperparameters.MaxIterations))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, t.config.Training.Timeout)
	defer cancel()

	start := time.Now()
	options := append(t.config.Training.TrainOptions(),
		perceptron.WithLearningRate(snapshot.Hyperparameters.LearningRate),
		perceptron.WithMaxIterations(snapshot.Hyperparameters.MaxIterations),
	)

	log.Infof("training %d points with learning rate %f and max iterations %d",
		len(snapshot.Points), snapshot.Hyperparameters.LearningRate, snapshot.Hyperparameters.MaxIterations)
	set, err := perceptron.TrainMulticlassContext(ctx, snapshot.Points, options...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("training failed: %v", err)
		metrics.TrainingFailureCount.WithLabelValues(rule.String()).Inc()
		return nil, err
	}

	if log.IsDebug() {
		for _, classifier := range set {
			logger.WithTrainingAndLabel(id, classifier.Label).Debugf("classifier trained in %d epochs, converged %t, weights %v, threshold %f",
				classifier.Epochs, classifier.Converged, classifier.Unit.Weights, classifier.Unit.Threshold)
		}
	}

	result := &board.Result{
		ID:          id,
		Labels:      perceptron.Labels(snapshot.Points),
		Classifiers: set,
		Converged:   set.Converged(),
		Epochs:      set.Epochs(),
		Generation:  snapshot.Generation,
	}

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		result.Boundaries = perceptron.DeriveBoundaries(set, t.config.Canvas.Width)
		return nil
	})

	eg.Go(func() error {
		result.Metrics = perceptron.ComputeMetrics(set, snapshot.Points)
		return nil
	})

	// Wait for boundaries and metrics.
	if err := eg.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("training failed: %v", err)
		metrics.TrainingFailureCount.WithLabelValues(rule.String()).Inc()
		return nil, err
	}

	result.CreatedAt = time.Now()
	if result.Converged {
		metrics.TrainingConvergedCount.WithLabelValues(rule.String()).Inc()
	}
	metrics.TrainingDuration.WithLabelValues(rule.String()).Observe(float64(time.Since(start).Milliseconds()))
	metrics.TrainingSSE.Set(result.Metrics.SSE)
	span.SetAttributes(config.AttributeTrainingEpochs.Int(result.Epochs))
	span.SetAttributes(config.AttributeTrainingConverged.Bool(result.Converged))
	span.SetAttributes(config.AttributeTrainingSSE.Float64(result.Metrics.SSE))

	log.Infof("training finished in %d epochs, converged %t, sse %f, mse %f",
		result.Epochs, result.Converged, result.Metrics.SSE, result.Metrics.MSE)
	return result, nil
}
