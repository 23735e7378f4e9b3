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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/evaluation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/perceptron/models"
)

// Evaluation is the holdout result of a one-vs-all model.
type Evaluation struct {
	Train    int     `yaml:"train"`
	Test     int     `yaml:"test"`
	Accuracy float64 `yaml:"accuracy"`
	Summary  string  `yaml:"summary"`
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "evaluate one-vs-all perceptrons on a holdout split",
	Long: `evaluate reads a csv table with two numeric features and a numeric class column last,
fits one-vs-all perceptrons on a training split and prints the accuracy on the test split.`,
	Args:              cobra.NoArgs,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		data, err := flags.GetString("data")
		if err != nil {
			return err
		}

		testPercent, err := flags.GetFloat64("test-percent")
		if err != nil {
			return err
		}

		seed, err := flags.GetInt64("seed")
		if err != nil {
			return err
		}

		model, err := flags.GetString("model")
		if err != nil {
			return err
		}

		if err := initCommandLogger(); err != nil {
			return err
		}

		return runEvaluate(data, testPercent, seed, model, cmd.OutOrStdout())
	},
}

func init() {
	flags := evaluateCmd.Flags()
	flags.String("data", "", "the path of the csv table")
	flags.Float64("test-percent", 0.2, "the share of rows held out for testing")
	flags.Int64("seed", 1, "the seed of the holdout split")
	flags.String("model", "", "the path the fitted model is saved to as json")
}

func runEvaluate(data string, testPercent float64, seed int64, model string, w io.Writer) error {
	if data == "" {
		return errors.New("evaluate requires parameter data")
	}

	if testPercent <= 0 || testPercent >= 1 {
		return errors.New("evaluate requires parameter test-percent between 0 and 1")
	}

	instances, err := base.ParseCSVToInstances(data, true)
	if err != nil {
		return fmt.Errorf("parse %s: %w", data, err)
	}

	rand.Seed(seed)
	trainData, testData := base.InstancesTrainTestSplit(instances, testPercent)

	m := models.NewOneVsAll(cfg.Training.TrainOptions()...)
	if err := m.Fit(trainData); err != nil {
		return err
	}

	predictions, err := m.Predict(testData)
	if err != nil {
		return err
	}

	confusionMatrix, err := evaluation.GetConfusionMatrix(testData, predictions)
	if err != nil {
		return err
	}

	_, trainRows := trainData.Size()
	_, testRows := testData.Size()
	result := Evaluation{
		Train:    trainRows,
		Test:     testRows,
		Accuracy: evaluation.GetAccuracy(confusionMatrix),
		Summary:  evaluation.GetSummary(confusionMatrix),
	}
	logger.Infof("evaluated %d test rows with accuracy %f", testRows, result.Accuracy)

	if model != "" {
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}

		if err := os.WriteFile(model, b, 0600); err != nil {
			return err
		}
	}

	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(result)
}
