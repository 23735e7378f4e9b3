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
	"fmt"
	"io"

	"d7y.io/perceptron/canvas/board"
	"d7y.io/perceptron/canvas/metrics"
	"d7y.io/perceptron/canvas/types"
	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/dataset"
	"d7y.io/perceptron/pkg/perceptron"
)

func (s *service) GetPoints(ctx context.Context) []perceptron.LabeledPoint {
	return s.board.Points()
}

func (s *service) CreatePoint(ctx context.Context, json types.CreatePointRequest) perceptron.LabeledPoint {
	point := s.board.AddPoint(perceptron.Features{*json.X, *json.Y}, json.Label)
	metrics.PointCount.Inc()
	logger.Debugf("point %v added with label %d", point.Features, point.Label)
	return point
}

func (s *service) ImportPoints(ctx context.Context, r io.Reader) ([]perceptron.LabeledPoint, error) {
	points, err := dataset.Unmarshal(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", board.ErrInvalidPoints, err)
	}

	s.board.AddPoints(points)
	metrics.PointCount.Add(float64(len(points)))
	logger.Infof("%d points imported", len(points))
	return s.board.Points(), nil
}

func (s *service) ExportPoints(ctx context.Context, w io.Writer) error {
	return dataset.Marshal(s.board.Points(), w)
}

func (s *service) DestroyPoints(ctx context.Context) {
	s.board.Clear()
	metrics.PointCount.Set(0)
	logger.Info("board cleared")
}
