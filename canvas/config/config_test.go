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
	"net"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"d7y.io/perceptron/cmd/dependency/base"
	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/perceptron"
)

var (
	mockMetricsConfig = MetricsConfig{
		Enable: true,
		Addr:   DefaultMetricsAddr,
	}
)

func TestConfig_Load(t *testing.T) {
	config := &Config{
		Options: base.Options{
			Console:   true,
			Verbose:   true,
			PProfPort: 9999,
			Telemetry: base.TelemetryOption{
				Jaeger:      "http://localhost:14268/api/traces",
				ServiceName: "qux",
			},
		},
		Server: ServerConfig{
			ListenIP:      net.ParseIP("0.0.0.0"),
			Port:          9090,
			WorkHome:      "foo",
			LogDir:        "bar",
			AssetsDir:     "baz",
			LogMaxSize:    512,
			LogMaxAge:     5,
			LogMaxBackups: 3,
		},
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
			Label:  2,
			Labels: []int{2, 3},
		},
		Training: TrainingConfig{
			LearningRate:   0.5,
			MaxIterations:  200,
			Initializer:    InitializerRandom,
			Seed:           42,
			TwoClassPolicy: perceptron.TwoClassPerClassName,
			Rule:           perceptron.RuleLogisticName,
			Timeout:        10 * time.Second,
		},
		Metrics: MetricsConfig{
			Enable: true,
			Addr:   ":8001",
		},
	}

	perceptronConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/perceptron.yaml")
	if err := yaml.Unmarshal(contentYAML, &perceptronConfigYAML); err != nil {
		t.Fatal(err)
	}
	assert := assert.New(t)
	assert.EqualValues(config, perceptronConfigYAML)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "server requires parameter listenIP",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Server.ListenIP = nil
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "server requires parameter listenIP")
			},
		},
		{
			name:   "server requires parameter port",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Server.Port = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "server requires parameter port")
			},
		},
		{
			name:   "canvas requires parameter width",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Canvas.Width = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "canvas requires parameter width")
			},
		},
		{
			name:   "canvas requires parameter height",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Canvas.Height = -1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "canvas requires parameter height")
			},
		},
		{
			name:   "canvas requires parameter labels",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Canvas.Labels = []int{}
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "canvas requires parameter labels")
			},
		},
		{
			name:   "training requires parameter learningRate",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.LearningRate = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter learningRate")
			},
		},
		{
			name:   "training requires parameter maxIterations",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.MaxIterations = -1
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter maxIterations")
			},
		},
		{
			name:   "training requires parameter initializer",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Initializer = "foo"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter initializer")
			},
		},
		{
			name:   "training requires parameter twoClassPolicy",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.TwoClassPolicy = "foo"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter twoClassPolicy")
			},
		},
		{
			name:   "training requires parameter rule",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Rule = "foo"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter rule")
			},
		},
		{
			name:   "training requires parameter timeout",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Training.Timeout = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "training requires parameter timeout")
			},
		},
		{
			name:   "metrics requires parameter addr",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Metrics = mockMetricsConfig
				cfg.Metrics.Addr = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "metrics requires parameter addr")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.config.Convert(); err != nil {
				t.Fatal(err)
			}

			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}

func TestConfig_Convert(t *testing.T) {
	assert := assert.New(t)
	cfg := New()
	assert.NoError(cfg.Convert())
	assert.Equal(net.IPv4zero, cfg.Server.ListenIP)
	assert.Equal(int64(0), cfg.Training.Seed)

	cfg.Training.Initializer = InitializerRandom
	assert.NoError(cfg.Convert())
	assert.NotEqual(int64(0), cfg.Training.Seed)
}

func TestServerConfig_LogRotateConfig(t *testing.T) {
	assert := assert.New(t)
	cfg := New()
	assert.Equal(logger.LogRotateConfig{
		MaxSize:    DefaultLogRotateMaxSize,
		MaxAge:     DefaultLogRotateMaxAge,
		MaxBackups: DefaultLogRotateMaxBackups,
	}, cfg.Server.LogRotateConfig())
}

func TestTrainingConfig_TrainOptions(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(cfg *TrainingConfig)
		expect func(t *testing.T, options *perceptron.TrainOptions)
	}{
		{
			name: "default options",
			mock: func(cfg *TrainingConfig) {},
			expect: func(t *testing.T, options *perceptron.TrainOptions) {
				assert := assert.New(t)
				assert.Equal(float32(DefaultTrainingLearningRate), options.LearningRate)
				assert.Equal(DefaultTrainingMaxIterations, options.MaxIterations)
				assert.Equal(perceptron.TwoClassSingleUnit, options.TwoClassPolicy)
				assert.Equal(perceptron.RulePerceptron, options.Rule)
				assert.Equal(perceptron.LinearUnit{}, options.Initializer())
			},
		},
		{
			name: "random initializer is seeded",
			mock: func(cfg *TrainingConfig) {
				cfg.Initializer = InitializerRandom
				cfg.Seed = 42
				cfg.TwoClassPolicy = perceptron.TwoClassPerClassName
				cfg.Rule = perceptron.RuleLogisticName
			},
			expect: func(t *testing.T, options *perceptron.TrainOptions) {
				assert := assert.New(t)
				assert.Equal(perceptron.TwoClassPerClass, options.TwoClassPolicy)
				assert.Equal(perceptron.RuleLogistic, options.Rule)
				assert.NotEqual(perceptron.LinearUnit{}, options.Initializer())
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New().Training
			tc.mock(&cfg)
			tc.expect(t, perceptron.NewTrainOptions(cfg.TrainOptions()...))
		})
	}
}
