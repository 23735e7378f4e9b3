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

package base

// Options is the options shared by every command.
type Options struct {
	// Console prints logs to stdout instead of files.
	Console bool `yaml:"console" mapstructure:"console"`

	// Verbose enables debug level logs.
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`

	// PProfPort is the port of pprof and statsview, 0 picks a free port
	// and a negative value disables them.
	PProfPort int `yaml:"pprof-port" mapstructure:"pprof-port"`

	// Telemetry options.
	Telemetry TelemetryOption `yaml:"telemetry" mapstructure:"telemetry"`
}

// TelemetryOption is the option for telemetry
type TelemetryOption struct {
	// Jaeger is the collector endpoint, tracing is disabled when empty.
	Jaeger string `yaml:"jaeger" mapstructure:"jaeger"`

	// ServiceName is the name of the service in traces.
	ServiceName string `yaml:"service-name" mapstructure:"service-name"`
}
