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

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"d7y.io/perceptron/canvas/board"
	"d7y.io/perceptron/canvas/training"
	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/dataset"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "train one-vs-all perceptrons on a csv point set",
	Long: `train reads points from a csv file with the header x,y,label, trains one-vs-all
perceptrons with the training configuration and prints the result as yaml.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cmd.Flags().GetString("data")
		if err != nil {
			return err
		}

		output, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}

		if err := initCommandLogger(); err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if output != "" {
			file, err := os.OpenFile(output, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
			if err != nil {
				return err
			}
			defer file.Close()

			w = file
		}

		return runTrain(cmd.Context(), data, w)
	},
}

func init() {
	flags := trainCmd.Flags()
	flags.String("data", "", "the path of the csv point set")
	flags.String("output", "", "the path of the yaml result, default is stdout")
}

func initCommandLogger() error {
	if err := cfg.Convert(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return logger.InitPerceptron(cfg.Verbose, true, "", cfg.Server.LogRotateConfig())
}

func runTrain(ctx context.Context, data string, w io.Writer) error {
	if data == "" {
		return errors.New("train requires parameter data")
	}

	points, err := dataset.Load(data)
	if err != nil {
		return fmt.Errorf("load %s: %w", data, err)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	result, err := training.New(cfg).Train(ctx, board.Snapshot{
		Points: points,
		Hyperparameters: board.Hyperparameters{
			LearningRate:  cfg.Training.LearningRate,
			MaxIterations: cfg.Training.MaxIterations,
		},
	})
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(result)
}
