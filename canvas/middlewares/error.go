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

package middlewares

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"d7y.io/perceptron/canvas/board"
)

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"errors,omitempty"`
}

func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		err := c.Errors.Last()
		if err == nil {
			return
		}

		// Gin error handler
		switch {
		case err.IsType(gin.ErrorTypeBind):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
				Message: http.StatusText(http.StatusUnprocessableEntity),
				Error:   err.Error(),
			})
			return
		case err.IsType(gin.ErrorTypeRender):
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Message: http.StatusText(http.StatusInternalServerError),
			})
			return
		}

		// Board error handler
		switch {
		case errors.Is(err.Err, board.ErrInvalidLearningRate),
			errors.Is(err.Err, board.ErrInvalidMaxIterations),
			errors.Is(err.Err, board.ErrInvalidPoints):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Message: http.StatusText(http.StatusBadRequest),
				Error:   err.Error(),
			})
			return
		case errors.Is(err.Err, board.ErrStaleResult):
			c.JSON(http.StatusConflict, ErrorResponse{
				Message: http.StatusText(http.StatusConflict),
				Error:   err.Error(),
			})
			return
		}

		// Training error handler
		if errors.Is(err.Err, context.DeadlineExceeded) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{
				Message: http.StatusText(http.StatusServiceUnavailable),
				Error:   err.Error(),
			})
			return
		}

		// Unknown error
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message: http.StatusText(http.StatusInternalServerError),
		})
	}
}
