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

	"d7y.io/perceptron/canvas/board"
	"d7y.io/perceptron/canvas/types"
	logger "d7y.io/perceptron/internal/dflog"
)

func (s *service) GetHyperparameters(ctx context.Context) board.Hyperparameters {
	return s.board.Hyperparameters()
}

func (s *service) UpdateHyperparameters(ctx context.Context, json types.UpdateHyperparametersRequest) (board.Hyperparameters, error) {
	hyperparameters := board.Hyperparameters{
		LearningRate:  json.LearningRate,
		MaxIterations: json.MaxIterations,
	}

	if err := s.board.SetHyperparameters(hyperparameters); err != nil {
		return board.Hyperparameters{}, err
	}

	return hyperparameters, nil
}

// Train trains on a snapshot of the board, the overrides of the request
// apply to this run only.
func (s *service) Train(ctx context.Context, json types.TrainRequest) (*board.Result, error) {
	snapshot := s.board.Snapshot()
	if json.LearningRate != nil {
		snapshot.Hyperparameters.LearningRate = *json.LearningRate
	}

	if json.MaxIterations != nil {
		snapshot.Hyperparameters.MaxIterations = *json.MaxIterations
	}

	if err := snapshot.Hyperparameters.Validate(); err != nil {
		return nil, err
	}

	result, err := s.training.Train(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	if err := s.board.SetResult(result); err != nil {
		logger.WithTraining(result.ID).Warnf("result discarded: %v", err)
		return nil, err
	}

	return result, nil
}

func (s *service) GetResult(ctx context.Context) *board.Result {
	return s.board.Result()
}
