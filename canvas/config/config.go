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
	"errors"
	"math/rand"
	"net"
	"time"

	"d7y.io/perceptron/cmd/dependency/base"
	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/perceptron"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Server configuration.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Canvas configuration.
	Canvas CanvasConfig `yaml:"canvas" mapstructure:"canvas"`

	// Training configuration.
	Training TrainingConfig `yaml:"training" mapstructure:"training"`

	// Metrics configuration.
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type ServerConfig struct {
	// ListenIP is listen ip, like: 0.0.0.0, 192.168.0.1.
	ListenIP net.IP `yaml:"listenIP" mapstructure:"listenIP"`

	// Server port.
	Port int `yaml:"port" mapstructure:"port"`

	// Server work home directory.
	WorkHome string `yaml:"workHome" mapstructure:"workHome"`

	// Server log directory.
	LogDir string `yaml:"logDir" mapstructure:"logDir"`

	// AssetsDir holds the static files of the browser canvas, it is not
	// served when empty.
	AssetsDir string `yaml:"assetsDir" mapstructure:"assetsDir"`

	// Maximum size in megabytes of log files before rotation (default: 40)
	LogMaxSize int `yaml:"logMaxSize" mapstructure:"logMaxSize"`

	// Maximum number of days to retain old log files (default: 7)
	LogMaxAge int `yaml:"logMaxAge" mapstructure:"logMaxAge"`

	// Maximum number of old log files to keep (default: 20)
	LogMaxBackups int `yaml:"logMaxBackups" mapstructure:"logMaxBackups"`
}

type CanvasConfig struct {
	// Width of the drawing area, boundaries end at this abscissa.
	Width float32 `yaml:"width" mapstructure:"width"`

	// Height of the drawing area.
	Height float32 `yaml:"height" mapstructure:"height"`

	// Label is the selected label of points added without one.
	Label int `yaml:"label" mapstructure:"label"`

	// Labels is the palette shown before the first training.
	Labels []int `yaml:"labels" mapstructure:"labels"`
}

type TrainingConfig struct {
	// LearningRate scales every update.
	LearningRate float32 `yaml:"learningRate" mapstructure:"learningRate"`

	// MaxIterations bounds the number of epochs.
	MaxIterations int `yaml:"maxIterations" mapstructure:"maxIterations"`

	// Initializer is zero or random.
	Initializer string `yaml:"initializer" mapstructure:"initializer"`

	// Seed of the random initializer, 0 seeds from the clock.
	Seed int64 `yaml:"seed" mapstructure:"seed"`

	// TwoClassPolicy is single or perClass.
	TwoClassPolicy string `yaml:"twoClassPolicy" mapstructure:"twoClassPolicy"`

	// Rule is perceptron or logistic.
	Rule string `yaml:"rule" mapstructure:"rule"`

	// Timeout of a training run.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

type MetricsConfig struct {
	// Enable metrics service.
	Enable bool `yaml:"enable" mapstructure:"enable"`

	// Metrics service address.
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Options: base.Options{
			PProfPort: -1,
			Telemetry: base.TelemetryOption{
				ServiceName: DefaultTelemetryServiceName,
			},
		},
		Server: ServerConfig{
			Port:          DefaultServerPort,
			LogMaxSize:    DefaultLogRotateMaxSize,
			LogMaxAge:     DefaultLogRotateMaxAge,
			LogMaxBackups: DefaultLogRotateMaxBackups,
		},
		Canvas: CanvasConfig{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
			Label:  DefaultCanvasLabel,
			Labels: DefaultCanvasLabels,
		},
		Training: TrainingConfig{
			LearningRate:   DefaultTrainingLearningRate,
			MaxIterations:  DefaultTrainingMaxIterations,
			Initializer:    DefaultTrainingInitializer,
			TwoClassPolicy: perceptron.TwoClassSingleUnitName,
			Rule:           perceptron.RulePerceptronName,
			Timeout:        DefaultTrainingTimeout,
		},
		Metrics: MetricsConfig{
			Enable: false,
			Addr:   DefaultMetricsAddr,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Server.ListenIP == nil {
		return errors.New("server requires parameter listenIP")
	}

	if cfg.Server.Port <= 0 {
		return errors.New("server requires parameter port")
	}

	if cfg.Canvas.Width <= 0 {
		return errors.New("canvas requires parameter width")
	}

	if cfg.Canvas.Height <= 0 {
		return errors.New("canvas requires parameter height")
	}

	if len(cfg.Canvas.Labels) == 0 {
		return errors.New("canvas requires parameter labels")
	}

	if cfg.Training.LearningRate <= 0 {
		return errors.New("training requires parameter learningRate")
	}

	if cfg.Training.MaxIterations <= 0 {
		return errors.New("training requires parameter maxIterations")
	}

	if cfg.Training.Initializer != InitializerZero && cfg.Training.Initializer != InitializerRandom {
		return errors.New("training requires parameter initializer")
	}

	if _, err := perceptron.ParseTwoClassPolicy(cfg.Training.TwoClassPolicy); err != nil {
		return errors.New("training requires parameter twoClassPolicy")
	}

	if _, err := perceptron.ParseRule(cfg.Training.Rule); err != nil {
		return errors.New("training requires parameter rule")
	}

	if cfg.Training.Timeout <= 0 {
		return errors.New("training requires parameter timeout")
	}

	if cfg.Metrics.Enable {
		if cfg.Metrics.Addr == "" {
			return errors.New("metrics requires parameter addr")
		}
	}

	return nil
}

func (cfg *Config) Convert() error {
	if cfg.Server.ListenIP == nil {
		cfg.Server.ListenIP = net.IPv4zero
	}

	if cfg.Training.Initializer == InitializerRandom && cfg.Training.Seed == 0 {
		cfg.Training.Seed = time.Now().UnixNano()
	}

	return nil
}

// LogRotateConfig returns the rotation of log files.
func (cfg *ServerConfig) LogRotateConfig() logger.LogRotateConfig {
	return logger.LogRotateConfig{
		MaxSize:    cfg.LogMaxSize,
		MaxAge:     cfg.LogMaxAge,
		MaxBackups: cfg.LogMaxBackups,
	}
}

// TrainOptions returns the options of one-vs-all training, names are
// parsed by Validate first.
func (cfg *TrainingConfig) TrainOptions() []perceptron.TrainOptionFunc {
	policy, _ := perceptron.ParseTwoClassPolicy(cfg.TwoClassPolicy)
	rule, _ := perceptron.ParseRule(cfg.Rule)

	options := []perceptron.TrainOptionFunc{
		perceptron.WithLearningRate(cfg.LearningRate),
		perceptron.WithMaxIterations(cfg.MaxIterations),
		perceptron.WithTwoClassPolicy(policy),
		perceptron.WithRule(rule),
	}

	if cfg.Initializer == InitializerRandom {
		options = append(options, perceptron.WithInitializer(perceptron.RandomInitializer(rand.New(rand.NewSource(cfg.Seed)))))
	}

	return options
}
