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
	"net/http"

	"github.com/gin-gonic/gin"

	"d7y.io/perceptron/canvas/types"
)

// @Summary Get Labels
// @Description Get the label palette and the selected label
// @Tags Label
// @Accept json
// @Produce json
// @Success 200 {object} types.Labels
// @Router /labels [get]
func (h *Handlers) GetLabels(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.service.GetLabels(ctx.Request.Context()))
}

// @Summary Select Label
// @Description Select the label of points created without one
// @Tags Label
// @Accept json
// @Produce json
// @Param Label body types.SelectLabelRequest true "Label"
// @Success 200 {object} types.Labels
// @Failure 422
// @Router /labels/selected [put]
func (h *Handlers) SelectLabel(ctx *gin.Context) {
	var json types.SelectLabelRequest
	if err := ctx.ShouldBindJSON(&json); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, h.service.SelectLabel(ctx.Request.Context(), json))
}
