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

// Package dataset reads and writes labeled point sets as csv files with
// the header x,y,label.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/hashicorp/go-multierror"

	"d7y.io/perceptron/pkg/perceptron"
)

// CSVFileExt is extension of file name.
const CSVFileExt = "csv"

// Record is a row of a point set csv file.
type Record struct {
	// X is the first coordinate.
	X float32 `csv:"x"`

	// Y is the second coordinate.
	Y float32 `csv:"y"`

	// Label is the class label.
	Label int `csv:"label"`
}

// Unmarshal reads labeled points from csv, every row with a non-finite
// coordinate is reported in the returned error.
func Unmarshal(r io.Reader) ([]perceptron.LabeledPoint, error) {
	var records []Record
	if err := gocsv.Unmarshal(r, &records); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []perceptron.LabeledPoint{}, nil
		}

		return nil, err
	}

	var errs *multierror.Error
	points := make([]perceptron.LabeledPoint, 0, len(records))
	for i, record := range records {
		if !isFinite(record.X) || !isFinite(record.Y) {
			// Row 1 is the header.
			errs = multierror.Append(errs, fmt.Errorf("row %d: coordinates must be finite", i+2))
			continue
		}

		points = append(points, perceptron.LabeledPoint{
			Features: perceptron.Features{record.X, record.Y},
			Label:    record.Label,
		})
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return points, nil
}

// Marshal writes labeled points as csv with header.
func Marshal(points []perceptron.LabeledPoint, w io.Writer) error {
	records := make([]Record, len(points))
	for i, point := range points {
		records[i] = Record{
			X:     point.Features[0],
			Y:     point.Features[1],
			Label: point.Label,
		}
	}

	return gocsv.Marshal(records, w)
}

// Load reads labeled points from the csv file.
func Load(filename string) ([]perceptron.LabeledPoint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Unmarshal(file)
}

// Save writes labeled points to the csv file, the file is truncated first.
func Save(filename string, points []perceptron.LabeledPoint) error {
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	return Marshal(points, file)
}

func isFinite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}
