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

	"d7y.io/perceptron/canvas/types"
)

func (s *service) GetLabels(ctx context.Context) types.Labels {
	return types.Labels{
		Selected: s.board.SelectedLabel(),
		Labels:   s.board.Labels(),
	}
}

func (s *service) SelectLabel(ctx context.Context, json types.SelectLabelRequest) types.Labels {
	s.board.SelectLabel(*json.Label)
	return s.GetLabels(ctx)
}
