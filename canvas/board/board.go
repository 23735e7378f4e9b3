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

//go:generate mockgen -destination mocks/board_mock.go -source board.go -package mocks

package board

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/atomic"

	"d7y.io/perceptron/canvas/config"
	"d7y.io/perceptron/pkg/perceptron"
)

var (
	// ErrInvalidLearningRate is returned for a non-positive learning rate.
	ErrInvalidLearningRate = errors.New("learning rate must be positive")

	// ErrInvalidMaxIterations is returned for a non-positive maximum number of epochs.
	ErrInvalidMaxIterations = errors.New("max iterations must be positive")

	// ErrInvalidPoints is returned for points that can not be placed on the board.
	ErrInvalidPoints = errors.New("invalid points")

	// ErrStaleResult is returned for a result trained on points that were cleared since.
	ErrStaleResult = errors.New("board was cleared during training")
)

// Hyperparameters is the hyperparameters of the next training run.
type Hyperparameters struct {
	// LearningRate scales every update.
	LearningRate float32 `json:"learning_rate" yaml:"learningRate"`

	// MaxIterations bounds the number of epochs.
	MaxIterations int `json:"max_iterations" yaml:"maxIterations"`
}

// Validate rejects non-positive hyperparameters.
func (h Hyperparameters) Validate() error {
	if h.LearningRate <= 0 {
		return ErrInvalidLearningRate
	}

	if h.MaxIterations <= 0 {
		return ErrInvalidMaxIterations
	}

	return nil
}

// Snapshot is a copy of the points and hyperparameters a training run works on.
type Snapshot struct {
	// Points placed on the board.
	Points []perceptron.LabeledPoint

	// Hyperparameters of the run.
	Hyperparameters Hyperparameters

	// Generation of the board when the snapshot was taken.
	Generation uint64
}

// Result is the outcome of a training run.
type Result struct {
	// ID of the training run.
	ID string `json:"id" yaml:"id"`

	// Labels observed in the training points, in first-seen order.
	Labels []int `json:"labels" yaml:"labels"`

	// Classifiers trained by the run.
	Classifiers perceptron.ClassifierSet `json:"classifiers" yaml:"classifiers"`

	// Boundaries of the classifiers on the canvas.
	Boundaries []perceptron.Boundary `json:"boundaries" yaml:"boundaries"`

	// Metrics of the classifiers over the training points.
	Metrics perceptron.Metrics `json:"metrics" yaml:"metrics"`

	// Converged is true when every classifier converged.
	Converged bool `json:"converged" yaml:"converged"`

	// Epochs is the total number of epochs run.
	Epochs int `json:"epochs" yaml:"epochs"`

	// CreatedAt is when the run finished.
	CreatedAt time.Time `json:"created_at" yaml:"createdAt"`

	// Generation of the board the run was trained on.
	Generation uint64 `json:"-" yaml:"-"`
}

// EmptyResult returns the result of a board without training.
func EmptyResult() *Result {
	return &Result{
		Labels:      []int{},
		Classifiers: perceptron.ClassifierSet{},
		Boundaries:  []perceptron.Boundary{},
	}
}

// Board is the interface used for the state of the canvas.
type Board interface {
	// Points returns the points placed on the board.
	Points() []perceptron.LabeledPoint

	// AddPoint places a point, a nil label uses the selected label.
	AddPoint(perceptron.Features, *int) perceptron.LabeledPoint

	// AddPoints places points with their own labels.
	AddPoints([]perceptron.LabeledPoint)

	// Clear removes points and result, and resets the selected label.
	Clear()

	// Labels returns the label palette.
	Labels() []int

	// SelectedLabel returns the label of points added without one.
	SelectedLabel() int

	// SelectLabel sets the label of points added without one.
	SelectLabel(int)

	// Hyperparameters returns the hyperparameters of the next training run.
	Hyperparameters() Hyperparameters

	// SetHyperparameters sets the hyperparameters of the next training run.
	SetHyperparameters(Hyperparameters) error

	// Snapshot returns a copy of the state a training run works on.
	Snapshot() Snapshot

	// Generation returns the number of clears since the board was created.
	Generation() uint64

	// SetResult stores the result of a training run and replaces the palette
	// with its labels.
	SetResult(*Result) error

	// Result returns the latest result.
	Result() *Result
}

// board implements Board interface.
type board struct {
	mu sync.RWMutex

	// Canvas configuration.
	config *config.CanvasConfig

	points          []perceptron.LabeledPoint
	selected        int
	labels          []int
	hyperparameters Hyperparameters
	result          *Result
	generation      *atomic.Uint64
}

// New returns a new Board.
func New(cfg *config.CanvasConfig, hyperparameters Hyperparameters) Board {
	return &board{
		config:          cfg,
		points:          []perceptron.LabeledPoint{},
		selected:        cfg.Label,
		labels:          append([]int{}, cfg.Labels...),
		hyperparameters: hyperparameters,
		result:          EmptyResult(),
		generation:      atomic.NewUint64(0),
	}
}

func (b *board) Points() []perceptron.LabeledPoint {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]perceptron.LabeledPoint{}, b.points...)
}

func (b *board) AddPoint(features perceptron.Features, label *int) perceptron.LabeledPoint {
	b.mu.Lock()
	defer b.mu.Unlock()

	point := perceptron.LabeledPoint{Features: features, Label: b.selected}
	if label != nil {
		point.Label = *label
	}

	b.points = append(b.points, point)
	return point
}

func (b *board) AddPoints(points []perceptron.LabeledPoint) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.points = append(b.points, points...)
}

func (b *board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.points = []perceptron.LabeledPoint{}
	b.selected = b.config.Label
	b.result = EmptyResult()
	b.generation.Inc()
}

func (b *board) Labels() []int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return append([]int{}, b.labels...)
}

func (b *board) SelectedLabel() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.selected
}

func (b *board) SelectLabel(label int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.selected = label
}

func (b *board) Hyperparameters() Hyperparameters {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.hyperparameters
}

func (b *board) SetHyperparameters(hyperparameters Hyperparameters) error {
	if err := hyperparameters.Validate(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.hyperparameters = hyperparameters
	return nil
}

func (b *board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return Snapshot{
		Points:          append([]perceptron.LabeledPoint{}, b.points...),
		Hyperparameters: b.hyperparameters,
		Generation:      b.generation.Load(),
	}
}

func (b *board) Generation() uint64 {
	return b.generation.Load()
}

func (b *board) SetResult(result *Result) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if result.Generation != b.generation.Load() {
		return ErrStaleResult
	}

	b.result = result
	if len(result.Labels) > 0 {
		b.labels = append([]int{}, result.Labels...)
	}

	return nil
}

func (b *board) Result() *Result {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.result
}
