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
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-http-utils/headers"

	"d7y.io/perceptron/canvas/types"
	"d7y.io/perceptron/pkg/dataset"
)

const exportFileName = "points"

// @Summary Get Points
// @Description Get points placed on the board
// @Tags Point
// @Accept json
// @Produce json
// @Success 200 {object} []perceptron.LabeledPoint
// @Router /points [get]
func (h *Handlers) GetPoints(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.GetPoints(ctx.Request.Context()))
}

// @Summary Create Point
// @Description Create by json config, the selected label is used without label
// @Tags Point
// @Accept json
// @Produce json
// @Param Point body types.CreatePointRequest true "Point"
// @Success 200 {object} perceptron.LabeledPoint
// @Failure 422
// @Router /points [post]
func (h *Handlers) CreatePoint(ctx *gin.Context) {
	var json types.CreatePointRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, h.service.CreatePoint(ctx.Request.Context(), json))
}

// @Summary Destroy Points
// @Description Clear the board
// @Tags Point
// @Accept json
// @Produce json
// @Success 200
// @Router /points [delete]
func (h *Handlers) DestroyPoints(ctx *gin.Context) {
	h.service.DestroyPoints(ctx.Request.Context())
	ctx.Status(http.StatusOK)
}

// @Summary Import Points
// @Description Import points from csv with header x,y,label
// @Tags Point
// @Accept text/csv
// @Produce json
// @Success 200 {object} []perceptron.LabeledPoint
// @Failure 400
// @Router /points/import [post]
func (h *Handlers) ImportPoints(ctx *gin.Context) {
	points, err := h.service.ImportPoints(ctx.Request.Context(), ctx.Request.Body)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, points)
}

// @Summary Export Points
// @Description Export points as csv with header x,y,label
// @Tags Point
// @Produce text/csv
// @Success 200
// @Failure 500
// @Router /points/export [get]
func (h *Handlers) ExportPoints(ctx *gin.Context) {
	ctx.Header(headers.ContentType, "text/csv")
	ctx.Header(headers.ContentDisposition, fmt.Sprintf("attachment; filename=%s.%s", exportFileName, dataset.CSVFileExt))
	if err := h.service.ExportPoints(ctx.Request.Context(), ctx.Writer); err != nil {
		ctx.Error(err) // nolint: errcheck
	}
}
