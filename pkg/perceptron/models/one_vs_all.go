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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/mitchellh/mapstructure"
	"github.com/sjwhitworth/golearn/base"

	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/perceptron"
)

// OneVsAll fits one-vs-all perceptrons on golearn instances with two float
// features and a float class attribute holding integer labels.
type OneVsAll struct {
	Fitted      bool                     `json:"fitted"`
	Labels      []int                    `json:"labels"`
	Classifiers perceptron.ClassifierSet `json:"classifiers"`
	Attrs       []*base.FloatAttribute   `json:"attrs"`
	Cls         *base.FloatAttribute     `json:"cls"`

	options []perceptron.TrainOptionFunc
}

// NewOneVsAll return an instance of one-vs-all model.
func NewOneVsAll(options ...perceptron.TrainOptionFunc) *OneVsAll {
	return &OneVsAll{Fitted: false, options: options}
}

// Fit trains the classifiers of the model on the instances provided.
func (m *OneVsAll) Fit(inst base.FixedDataGrid) error {
	_, rows := inst.Size()
	if rows == 0 {
		return errors.New("no instances to fit")
	}

	classAttrs := inst.AllClassAttributes()
	if len(classAttrs) != 1 {
		return errors.New("only 1 class variable is permitted")
	}

	cls, ok := classAttrs[0].(*base.FloatAttribute)
	if !ok {
		return fmt.Errorf("class variable %s must be float", classAttrs[0].GetName())
	}
	classAttrSpecs := base.ResolveAttributes(inst, classAttrs)

	attrs := make([]base.Attribute, 0, perceptron.Dimensions)
	for _, a := range base.NonClassAttributes(inst) {
		if _, ok := a.(*base.FloatAttribute); ok {
			attrs = append(attrs, a)
		}
	}
	if len(attrs) != perceptron.Dimensions {
		return fmt.Errorf("%d float features are required, got %d", perceptron.Dimensions, len(attrs))
	}
	attrSpecs := base.ResolveAttributes(inst, attrs)

	points := make([]perceptron.LabeledPoint, rows)
	for i := 0; i < rows; i++ {
		for j := range attrSpecs {
			points[i].Features[j] = float32(base.UnpackBytesToFloat(inst.Get(attrSpecs[j], i)))
		}
		points[i].Label = int(math.Round(base.UnpackBytesToFloat(inst.Get(classAttrSpecs[0], i))))
	}

	m.Labels = perceptron.Labels(points)
	m.Classifiers = perceptron.TrainMulticlass(points, m.options...)
	m.Attrs = make([]*base.FloatAttribute, len(attrs))
	for idx, a := range attrs {
		m.Attrs[idx] = a.(*base.FloatAttribute)
	}
	m.Cls = cls
	m.Fitted = true
	return nil
}

// Predict classifies every row of the instances provided.
func (m *OneVsAll) Predict(X base.FixedDataGrid) (base.FixedDataGrid, error) {
	if !m.Fitted {
		logger.Info("no fitted model")
		return nil, errors.New("no fitted model")
	}

	ret := base.GeneratePredictionVector(X)
	attrs := make([]base.Attribute, len(m.Attrs))
	for idx, a := range m.Attrs {
		attrs[idx] = a
	}
	attrSpecs := base.ResolveAttributes(X, attrs)
	clsSpec, err := ret.GetAttribute(m.Cls)
	if err != nil {
		logger.Infof("OneVsAll error happens, error is %v", err)
		return nil, err
	}

	err = X.MapOverRows(attrSpecs, func(row [][]byte, i int) (bool, error) {
		var features perceptron.Features
		for j, r := range row {
			features[j] = float32(base.UnpackBytesToFloat(r))
		}

		ret.Set(clsSpec, i, base.PackFloatToBytes(float64(m.Classify(features))))
		return true, nil
	})
	if err != nil {
		logger.Infof("OneVsAll error happens, error is %v", err)
		return nil, err
	}

	return ret, nil
}

// Classify returns the label of features. With a single unit for two labels
// the second label is returned for a negative prediction, otherwise the label
// of the classifier with the largest activation wins.
func (m *OneVsAll) Classify(features perceptron.Features) int {
	if len(m.Classifiers) == 1 && len(m.Labels) == 2 {
		if m.Classifiers[0].Unit.Predict(features) == perceptron.Positive {
			return m.Labels[0]
		}

		return m.Labels[1]
	}

	var (
		label int
		best  = float32(math.Inf(-1))
	)
	for _, classifier := range m.Classifiers {
		if activation := classifier.Unit.Activation(features); activation > best {
			best = activation
			label = classifier.Label
		}
	}

	return label
}

func (m *OneVsAll) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"fitted":      m.Fitted,
		"labels":      m.Labels,
		"classifiers": m.Classifiers,
		"attrs":       m.marshalFloatAttributes(),
		"cls":         marshalFloatAttribute(m.Cls),
	})
}

func marshalFloatAttribute(f *base.FloatAttribute) map[string]interface{} {
	if f == nil {
		return nil
	}

	return map[string]interface{}{
		"name":      f.Name,
		"precision": f.Precision,
	}
}

func (m *OneVsAll) marshalFloatAttributes() []map[string]interface{} {
	ans := make([]map[string]interface{}, len(m.Attrs))
	for idx, attr := range m.Attrs {
		ans[idx] = marshalFloatAttribute(attr)
	}

	return ans
}

func (m *OneVsAll) UnmarshalJSON(data []byte) error {
	var d map[string]interface{}
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	var decoded struct {
		Fitted      bool                     `json:"fitted"`
		Labels      []int                    `json:"labels"`
		Classifiers perceptron.ClassifierSet `json:"classifiers"`
		Attrs       []*base.FloatAttribute   `json:"attrs"`
		Cls         *base.FloatAttribute     `json:"cls"`
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &decoded,
	})
	if err != nil {
		return err
	}

	if err := decoder.Decode(d); err != nil {
		return err
	}

	m.Fitted = decoded.Fitted
	m.Labels = decoded.Labels
	m.Classifiers = decoded.Classifiers
	m.Attrs = decoded.Attrs
	m.Cls = decoded.Cls
	return nil
}
