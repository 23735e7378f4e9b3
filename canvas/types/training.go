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

package types

type UpdateHyperparametersRequest struct {
	LearningRate  float32 `json:"learning_rate" binding:"required,gt=0"`
	MaxIterations int     `json:"max_iterations" binding:"required,gt=0"`
}

// TrainRequest overrides the hyperparameters of the board for one run.
type TrainRequest struct {
	LearningRate  *float32 `json:"learning_rate" binding:"omitempty"`
	MaxIterations *int     `json:"max_iterations" binding:"omitempty"`
}
