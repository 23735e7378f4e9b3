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

package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/static"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	ginprometheus "github.com/mcuadros/go-gin-prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	// canvas swag api
	_ "d7y.io/perceptron/api/canvas"
	"d7y.io/perceptron/canvas/config"
	"d7y.io/perceptron/canvas/handlers"
	"d7y.io/perceptron/canvas/middlewares"
	"d7y.io/perceptron/canvas/service"
	logger "d7y.io/perceptron/internal/dflog"
)

const (
	PrometheusSubsystemName = "perceptron_canvas"
	OtelServiceName         = "perceptron-canvas"
)

func Init(cfg *config.Config, service service.Service) *gin.Engine {
	// Set mode.
	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	h := handlers.New(service)

	// Prometheus metrics.
	p := ginprometheus.NewPrometheus(PrometheusSubsystemName)
	// URL removes query string.
	p.ReqCntURLLabelMappingFn = func(c *gin.Context) string {
		return c.Request.URL.Path
	}
	p.Use(r)

	// Opentelemetry
	if cfg.Telemetry.Jaeger != "" {
		r.Use(otelgin.Middleware(OtelServiceName))
	}

	// CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true

	// Middleware
	r.Use(gin.Recovery())
	r.Use(ginzap.Ginzap(logger.GinLogger.Desugar(), time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(logger.GinLogger.Desugar(), true))
	r.Use(middlewares.Error())
	r.Use(cors.New(corsConfig))

	// Canvas view.
	if cfg.Server.AssetsDir != "" {
		r.Use(static.Serve("/", static.LocalFile(cfg.Server.AssetsDir, true)))
	}

	// Router
	apiv1 := r.Group("/api/v1")

	// Point
	pt := apiv1.Group("/points")
	pt.GET("", h.GetPoints)
	pt.POST("", h.CreatePoint)
	pt.DELETE("", h.DestroyPoints)
	pt.POST("import", h.ImportPoints)
	pt.GET("export", h.ExportPoints)

	// Label
	l := apiv1.Group("/labels")
	l.GET("", h.GetLabels)
	l.PUT("selected", h.SelectLabel)

	// Hyperparameters
	hp := apiv1.Group("/hyperparameters")
	hp.GET("", h.GetHyperparameters)
	hp.PUT("", h.UpdateHyperparameters)

	// Training
	apiv1.POST("/train", h.Train)
	apiv1.GET("/result", h.GetResult)

	// Health Check
	r.GET("/healthy", h.GetHealth)

	// Swagger
	apiSwagger := ginSwagger.URL("/swagger/doc.json")
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, apiSwagger))

	return r
}
