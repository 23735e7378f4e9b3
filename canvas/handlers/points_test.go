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
	"encoding/json"
	"errors"
	"fmt"
	"io"
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
	mockX     = float32(1.5)
	mockY     = float32(2)
	mockLabel = 3

	mockPoints = []perceptron.LabeledPoint{
		{Features: perceptron.Features{1, 1}, Label: 1},
		{Features: perceptron.Features{5, 5}, Label: 2},
	}
)

func mockPointRouter(h *Handlers) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Error())
	apiv1 := r.Group("/api/v1")
	p := apiv1.Group("/points")
	p.GET("", h.GetPoints)
	p.POST("", h.CreatePoint)
	p.DELETE("", h.DestroyPoints)
	p.POST("import", h.ImportPoints)
	p.GET("export", h.ExportPoints)
	return r
}

func TestHandlers_GetPoints(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assert := assert.New(t)
	svc := mocks.NewMockService(ctl)
	svc.EXPECT().GetPoints(gomock.Any()).Return(mockPoints).Times(1)

	w := httptest.NewRecorder()
	mockPointRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/points", nil))
	assert.Equal(http.StatusOK, w.Code)

	var points []perceptron.LabeledPoint
	assert.NoError(json.Unmarshal(w.Body.Bytes(), &points))
	assert.Equal(mockPoints, points)
}

func TestHandlers_CreatePoint(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "unprocessable entity caused by empty body",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/points", nil),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "unprocessable entity caused by missing coordinate",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/points", strings.NewReader(`{"x": 1.5}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusUnprocessableEntity, w.Code)
			},
		},
		{
			name: "success with selected label",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/points", strings.NewReader(`{"x": 1.5, "y": 2}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreatePoint(gomock.Any(), types.CreatePointRequest{X: &mockX, Y: &mockY}).Return(perceptron.LabeledPoint{Features: perceptron.Features{mockX, mockY}, Label: 1}).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)

				var point perceptron.LabeledPoint
				assert.NoError(json.Unmarshal(w.Body.Bytes(), &point))
				assert.Equal(perceptron.LabeledPoint{Features: perceptron.Features{mockX, mockY}, Label: 1}, point)
			},
		},
		{
			name: "success with label",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/points", strings.NewReader(`{"x": 1.5, "y": 2, "label": 3}`)),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.CreatePoint(gomock.Any(), types.CreatePointRequest{X: &mockX, Y: &mockY, Label: &mockLabel}).Return(perceptron.LabeledPoint{Features: perceptron.Features{mockX, mockY}, Label: mockLabel}).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
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
			mockRouter := mockPointRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_DestroyPoints(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assert := assert.New(t)
	svc := mocks.NewMockService(ctl)
	svc.EXPECT().DestroyPoints(gomock.Any()).Times(1)

	w := httptest.NewRecorder()
	mockPointRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/points", nil))
	assert.Equal(http.StatusOK, w.Code)
}

func TestHandlers_ImportPoints(t *testing.T) {
	tests := []struct {
		name   string
		req    *http.Request
		mock   func(ms *mocks.MockServiceMockRecorder)
		expect func(t *testing.T, w *httptest.ResponseRecorder)
	}{
		{
			name: "success",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/points/import", strings.NewReader("x,y,label\n1,1,1\n5,5,2\n")),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ImportPoints(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, r io.Reader) ([]perceptron.LabeledPoint, error) {
					data, err := io.ReadAll(r)
					if err != nil {
						return nil, err
					}

					if string(data) != "x,y,label\n1,1,1\n5,5,2\n" {
						return nil, errors.New("unexpected body")
					}

					return mockPoints, nil
				}).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusOK, w.Code)
			},
		},
		{
			name: "bad request",
			req:  httptest.NewRequest(http.MethodPost, "/api/v1/points/import", strings.NewReader("x,y,label\nNaN,1,1\n")),
			mock: func(ms *mocks.MockServiceMockRecorder) {
				ms.ImportPoints(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: row 2: coordinates must be finite", board.ErrInvalidPoints)).Times(1)
			},
			expect: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert := assert.New(t)
				assert.Equal(http.StatusBadRequest, w.Code)
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
			mockRouter := mockPointRouter(h)

			tc.mock(svc.EXPECT())
			mockRouter.ServeHTTP(w, tc.req)
			tc.expect(t, w)
		})
	}
}

func TestHandlers_ExportPoints(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	assert := assert.New(t)
	svc := mocks.NewMockService(ctl)
	svc.EXPECT().ExportPoints(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, w io.Writer) error {
		_, err := io.WriteString(w, "x,y,label\n1,1,1\n")
		return err
	}).Times(1)

	w := httptest.NewRecorder()
	mockPointRouter(New(svc)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/points/export", nil))
	assert.Equal(http.StatusOK, w.Code)
	assert.Equal("text/csv", w.Header().Get("Content-Type"))
	assert.Equal("attachment; filename=points.csv", w.Header().Get("Content-Disposition"))
	assert.Equal("x,y,label\n1,1,1\n", w.Body.String())
}
