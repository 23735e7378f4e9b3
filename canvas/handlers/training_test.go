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

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"d7y.io/perceptron/canvas/board"
	"d7y.io/perceptron/canvas/middlewares"
	"d7y.io/perceptron/canvas/service/mocks"
	"d7y.io/perceptron/canvas/types"
	"d7y.io/perceptron/pkg/perceptron"
)

var (
	mockHyperparameters = board.Hyperparameters{
		LearningRate:  0.1,
		MaxIterations: 100,
	}

	mockResult = &board.Result{
		ID:          "foo",
		Labels:      []int{1, 2},
		Classifiers: perceptron.ClassifierSet{{Label: 1, Unit: perceptron.LinearUnit{Weights: perceptron.Weights{-0.2, -0.2}, Threshold: 1.2}, Epochs: 7, Converged: true}},
		Boundaries:  []perceptron.Boundary{{Label: 1, Start: perceptron.Point{X: 0, Y: 6}, End: perceptron.Point{X: 600, Y: -594}, Defined: true}},
		Converged:   true,
		Epochs:      7,
	}
)

func mockTrainingRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Error())
	apiv1 := r.Group("/api/v1")
	hp := apiv1.Group("/hyperparameters")
	hp.GET("", h.GetHyperparameters)
	hp.PUT("", h.UpdateHyperparameters)
	apiv1.POST("/train", h.Train)
	apiv1.GET("/result", h.GetResult)
	return r
}

func TestHandlers_GetHyperparameters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assert := assert.New(t)
	svc := mocks.NewMockService(ctl)
	svc.EXPECT().GetHyperparameters(gomock.Any()).Return(mockHyperparameters).Times(1)

	w := httptest.NewRecorder()
	mockTrainingRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/hyperparameters", nil))
	assert.Equal(http.StatusOK, w.Code)
	assert.JSONEq(`{"learning_rate":0.1,"max_iterations":100}`, w.Body.String())
}

func TestHandlers_UpdateHyperparameters(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity caused by non-positive learning rate",
			req:  httptest.NewRequest(http.MethodPut, "/api/v1/hyperparameters", strings.NewReader(`{"learning_rate": -0.1, "max_iterations": 10}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "unprocessable entity caused by zero max iterations",
			req:  httptest.NewRequest(http.MethodPut, "/api/v1/hyperparameters", strings.NewReader(`{"learning_rate": 0.1, "max_iterations": 0}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "bad request",
			req:  httptest.NewRequest(http.MethodPut, "/api/v1/hyperparameters", strings.NewReader(`{"learning_rate": 0.1, "max_iterations": 10}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.UpdateHyperparameters(gomock.Any(), gomock.Any()).Return(board.Hyperparameters{}, board.ErrInvalidMaxIterations).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPut, "/api/v1/hyperparameters", strings.NewReader(`{"learning_rate": 0.5, "max_iterations": 10}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.UpdateHyperparameters(gomock.Any(), types.UpdateHyperparametersRequest{LearningRate: 0.5, MaxIterations: 10}).Return(board.Hyperparameters{LearningRate: 0.5, MaxIterations: 10}, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
				assert.JSONEq(`{"learning_rate":0.5,"max_iterations":10}`, w.Body.String())
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockTrainingRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_Train(t *testing.T) {
	maxIterations := 5

	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success without body",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/train", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.Train(gomock.Any(), types.TrainRequest{}).Return(mockResult, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)

				var result board.Result
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &result))
				assert.Equal(mockResult.Classifiers, result.Classifiers)
				assert.Equal(mockResult.Boundaries, result.Boundaries)
				assert.Equal(mockResult.Metrics, result.Metrics)
			},
		},
		{
			name: "success with overrides",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/train", strings.NewReader(`{"max_iterations": 5}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.Train(gomock.Any(), types.TrainRequest{MaxIterations: &maxIterations}).Return(mockResult, nil).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "unprocessable entity caused by body",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/train", strings.NewReader(`{"max_iterations": "foo"}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "bad request caused by overrides",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/train", strings.NewReader(`{"learning_rate": 0}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.Train(gomock.Any(), gomock.Any()).Return(nil, board.ErrInvalidLearningRate).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
			},
		},
		{
			name: "conflict caused by clear during training",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/train", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.Train(gomock.Any(), gomock.Any()).Return(nil, board.ErrStaleResult).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusConflict, w.Code)
			},
		},
		{
			name: "training timeout",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/train", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.Train(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusServiceUnavailable, w.Code)
			},
		},
		{
			name: "internal server error",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/train", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.Train(gomock.Any(), gomock.Any()).Return(nil, errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusInternalServerError, w.Code)
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			svc := mocks.NewMockService(ctl)
			w := httptest.NewRecorder()
			h := New(svc)
			mockRouter := mockTrainingRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_GetResult(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assert := assert.New(t)
	svc := mocks.NewMockService(ctl)
	svc.EXPECT().GetResult(gomock.Any()).Return(board.EmptyResult()).Times(1)

	w := httptest.NewRecorder()
	mockTrainingRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/result", nil))
	assert.Equal(http.StatusOK, w.Code)

	var result board.Result
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(result.Classifiers)
	assert.Equal(perceptron.Metrics{}, result.Metrics)
}
