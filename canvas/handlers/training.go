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
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"d7y.io/perceptron/canvas/types"
)

// @Summary Get Hyperparameters
// @Description Get hyperparameters of the next training
// @Tags Training
// @Accept json
// @Produce json
// @Success 200 {object} board.Hyperparameters
// @Router /hyperparameters [get]
func (h *Handlers) GetHyperparameters(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.GetHyperparameters(ctx.Request.Context()))
}

// @Summary Update Hyperparameters
// @Description Update by json config
// @Tags Training
// @Accept json
// @Produce json
// @Param Hyperparameters body types.UpdateHyperparametersRequest true "Hyperparameters"
// @Success 200 {object} board.Hyperparameters
// @Failure 400
// @Failure 422
// @Router /hyperparameters [put]
func (h *Handlers) UpdateHyperparameters(ctx *gin.Context) {
	var json types.UpdateHyperparametersRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	hyperparameters, err := h.service.UpdateHyperparameters(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, hyperparameters)
}

// @Summary Train
// @Description Train classifiers on the points of the board, an empty body
// @Description uses the hyperparameters of the board
// @Tags Training
// @Accept json
// @Produce json
// @Param Train body types.TrainRequest false "Train"
// @Success 200 {object} board.Result
// @Failure 400
// @Failure 409
// @Failure 422
// @Failure 500
// @Failure 503
// @Router /train [post]
func (h *Handlers) Train(ctx *gin.Context) {
	var json types.TrainRequest
	if err := ctx.ShouldBindJSON(&json); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	result, err := h.service.Train(ctx.Request.Context(), json)
	if err != nil {
		ctx.Error(err) // nolint: errcheck
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// @Summary Get Result
// @Description Get the result of the latest training
// @Tags Training
// @Accept json
// @Produce json
// @Success 200 {object} board.Result
// @Router /result [get]
func (h *Handlers) GetResult(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.GetResult(ctx.Request.Context()))
}
