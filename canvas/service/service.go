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

package service

import (
	"context"
	"io"

	"d7y.io/perceptron/canvas/board"
	"d7y.io/perceptron/canvas/training"
	"d7y.io/perceptron/canvas/types"
	"d7y.io/perceptron/pkg/perceptron"
)

//go:generate mockgen -destination mocks/service_mock.go -source service.go -package mocks

type Service interface {
	GetPoints(context.Context) []perceptron.LabeledPoint
	CreatePoint(context.Context, types.CreatePointRequest) perceptron.LabeledPoint
	ImportPoints(context.Context, io.Reader) ([]perceptron.LabeledPoint, error)
	ExportPoints(context.Context, io.Writer) error
	DestroyPoints(context.Context)

	GetLabels(context.Context) types.Labels
	SelectLabel(context.Context, types.SelectLabelRequest) types.Labels

	GetHyperparameters(context.Context) board.Hyperparameters
	UpdateHyperparameters(context.Context, types.UpdateHyperparametersRequest) (board.Hyperparameters, error)

	Train(context.Context, types.TrainRequest) (*board.Result, error)
	GetResult(context.Context) *board.Result
}

type service struct {
	board    board.Board
	training training.Training
}

// Option is a functional option for service
type Option func(s *service)

// WithBoard set the board of the canvas
func WithBoard(board board.Board) Option {
	return func(s *service) {
		s.board = board
	}
}

// WithTraining set the training of the canvas
func WithTraining(training training.Training) Option {
	return func(s *service) {
		s.training = training
	}
}

// New returns a new Service instence
func New(options ...Option) Service {
	s := &service{}

	for _, opt := range options {
		opt(s)
	}

	return s
}
