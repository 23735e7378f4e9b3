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

package canvas

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"d7y.io/perceptron/canvas/board"
	"d7y.io/perceptron/canvas/config"
	"d7y.io/perceptron/canvas/metrics"
	"d7y.io/perceptron/canvas/router"
	"d7y.io/perceptron/canvas/service"
	"d7y.io/perceptron/canvas/training"
	logger "d7y.io/perceptron/internal/dflog"
)

type Server struct {
	// Server configuration.
	config *config.Config

	// REST server.
	restServer *http.Server

	// Metrics server.
	metricsServer *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{config: cfg}

	// Initialize board with the configured hyperparameters.
	hyperparameters := board.Hyperparameters{
		LearningRate:  cfg.Training.LearningRate,
		MaxIterations: cfg.Training.MaxIterations,
	}
	if err := hyperparameters.Validate(); err != nil {
		return nil, fmt.Errorf("invalid hyperparameters: %w", err)
	}
	b := board.New(&cfg.Canvas, hyperparameters)

	// Initialize REST server.
	svc := service.New(service.WithBoard(b), service.WithTraining(training.New(cfg)))
	s.restServer = &http.Server{
		Addr:    net.JoinHostPort(cfg.Server.ListenIP.String(), strconv.Itoa(cfg.Server.Port)),
		Handler: router.Init(cfg, svc),
	}

	// Initialize metrics.
	if cfg.Metrics.Enable {
		s.metricsServer = metrics.New(&cfg.Metrics)
	}

	return s, nil
}

func (s *Server) Serve() error {
	// Started metrics server.
	if s.metricsServer != nil {
		go func() {
			logger.Infof("started metrics server at %s", s.metricsServer.Addr)
			if err := s.metricsServer.ListenAndServe(); err != nil {
				if err == http.ErrServerClosed {
					return
				}

				logger.Fatalf("metrics server closed unexpect: %s", err.Error())
			}
		}()
	}

	// Started REST server.
	logger.Infof("started rest server at %s", s.restServer.Addr)
	if err := s.restServer.ListenAndServe(); err != nil {
		if err == http.ErrServerClosed {
			return nil
		}

		logger.Errorf("stoped rest server: %+v", err)
		return err
	}

	return nil
}

func (s *Server) Stop() {
	// Stop REST server.
	if err := s.restServer.Shutdown(context.Background()); err != nil {
		logger.Errorf("rest server failed to stop: %+v", err)
	}
	logger.Info("rest server closed under request")

	// Stop metrics server.
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(context.Background()); err != nil {
			logger.Errorf("metrics server failed to stop: %+v", err)
		}
		logger.Info("metrics server closed under request")
	}
}
