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

package dependency

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/mitchellh/mapstructure"
	"github.com/phayes/freeport"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.7.0"

	"d7y.io/perceptron/cmd/dependency/base"
	logger "d7y.io/perceptron/internal/dflog"
	"d7y.io/perceptron/pkg/dfpath"
)

// InitCommandAndConfig initializes flags binding and common sub cmds.
// config is a pointer to configuration struct.
func InitCommandAndConfig(cmd *cobra.Command, useConfigFile bool, config any) {
	// Initialize cobra.
	cobra.OnInitialize(func() { initConfig(useConfigFile, cmd.Name(), config) })

	if !cmd.HasParent() {
		// Add common flags.
		flags := cmd.PersistentFlags()
		flags.Bool("console", false, "whether logger output records to the stdout")
		flags.Bool("verbose", false, "whether logger use debug level")
		flags.Int("pprof-port", -1, "listen port for pprof and statsview, 0 represents random port")
		flags.String("jaeger", "", "jaeger collector endpoint url, like: http://localhost:14268/api/traces")
		flags.String("service-name", cmd.Name(), "name of the service for tracer")
		flags.String("config", "", fmt.Sprintf("the path of configuration file with yaml extension name, default is %s, it can also be set by env var: %s",
			filepath.Join(dfpath.DefaultConfigDir, cmd.Name()+".yaml"), strings.ToUpper(cmd.Name()+"_config")))

		// Bind common flags.
		if err := viper.BindPFlags(flags); err != nil {
			panic(fmt.Errorf("bind common flags to viper: %w", err))
		}

		// Telemetry flags are nested in config.
		for key, name := range map[string]string{"telemetry.jaeger": "jaeger", "telemetry.service-name": "service-name"} {
			if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
				panic(fmt.Errorf("bind telemetry flags to viper: %w", err))
			}
		}

		// Config for binding env.
		viper.SetEnvPrefix(cmd.Name())
		viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
		viper.AutomaticEnv()
		_ = viper.BindEnv("config")

		// Add common cmds only on root cmd.
		cmd.AddCommand(VersionCmd)
	}
}

// InitMonitor starts pprof and statsview when pprofPort is not negative
// and the jaeger tracer when its endpoint is set, the returned function
// stops them.
func InitMonitor(pprofPort int, otelOption base.TelemetryOption) func() {
	var fc = make(chan func(), 2)

	if pprofPort >= 0 {
		go func() {
			if pprofPort == 0 {
				pprofPort, _ = freeport.GetFreePort()
			}

			debugAddr := fmt.Sprintf("%s:%d", net.IPv4zero.String(), pprofPort)
			viewer.SetConfiguration(viewer.WithAddr(debugAddr))

			logger.With("pprof", fmt.Sprintf("http://%s/debug/pprof", debugAddr),
				"statsview", fmt.Sprintf("http://%s/debug/statsview", debugAddr)).
				Infof("enable pprof at %s", debugAddr)

			vm := statsview.New()
			fc <- func() { vm.Stop() }
			if err := vm.Start(); err != nil {
				logger.Warnf("serve pprof error: %v", err)
			}
		}()
	}

	if otelOption.Jaeger != "" {
		if ff, err := initJaegerTracer(otelOption); err != nil {
			logger.Warnf("init jaeger tracer error: %v", err)
		} else {
			fc <- ff
		}
	}

	return func() {
		logger.Infof("do %d monitor finalizer", len(fc))
		for {
			select {
			case f := <-fc:
				f()
			default:
				return
			}
		}
	}
}

// initJaegerTracer sets the global tracer provider exporting spans to jaeger.
func initJaegerTracer(otelOption base.TelemetryOption) (func(), error) {
	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(jaeger.WithEndpoint(otelOption.Jaeger)))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(otelOption.ServiceName),
		)),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	logger.Infof("enable jaeger tracer at %s", otelOption.Jaeger)

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			logger.Errorf("shutdown jaeger tracer error: %v", err)
		}
	}, nil
}

// SetupQuitSignalHandler calls handler once on the first SIGINT or SIGTERM.
func SetupQuitSignalHandler(handler func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		var done bool
		for sig := range signals {
			logger.Warnf("receive %s signal", sig)
			if !done {
				done = true
				handler()
				logger.Warnf("handle signal %s finish", sig)
			}
		}
	}()
}

func initConfig(useConfigFile bool, name string, config any) {
	// Use config file and read once.
	if useConfigFile {
		cfgFile := viper.GetString("config")
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath(dfpath.DefaultConfigDir)
			viper.SetConfigName(name)
			viper.SetConfigType("yaml")
		}

		if err := viper.ReadInConfig(); err != nil {
			var ignoreErr viper.ConfigFileNotFoundError
			if !errors.As(err, &ignoreErr) {
				panic(fmt.Errorf("viper read config: %w", err))
			}
		}
	}

	if err := viper.Unmarshal(config, initDecoderConfig); err != nil {
		panic(fmt.Errorf("unmarshal config to struct: %w", err))
	}
}

func initDecoderConfig(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToIPHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
}
