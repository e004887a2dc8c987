/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package mapper

import (
	"fmt"

	"dirpx.dev/apicem"
	"dirpx.dev/apicem/apis"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// ConfigKey is the viper key holding the mapper configuration block.
const ConfigKey = "apicem.mapper"

// Config is the file/env representation of mapper rules:
//
//	apicem:
//	  mapper:
//	    defaults:
//	      - kind: task
//	        http: 500
//	    overrides:
//	      - kind: base
//	        grpc: 13
//	    rules:
//	      - kind: call
//	        prefix: NCND
//	        http: 503
//	        grpc: 14
//
// The struct is validated via go-playground/validator tags.
type Config struct {
	Defaults  []StatusConfig `mapstructure:"defaults" validate:"dive"`
	Overrides []StatusConfig `mapstructure:"overrides" validate:"dive"`
	Rules     []RuleConfig   `mapstructure:"rules" validate:"dive"`
}

// StatusConfig sets the statuses of one kind. At least one of HTTP and GRPC
// must be present.
type StatusConfig struct {
	Kind string `mapstructure:"kind" validate:"required,oneof=base call task"`
	HTTP *int   `mapstructure:"http" validate:"required_without=GRPC,omitempty,gte=100,lte=599"`
	GRPC *int   `mapstructure:"grpc" validate:"omitempty,gte=0,lte=16"`
}

// RuleConfig is a code prefix rule for one kind.
type RuleConfig struct {
	Kind   string `mapstructure:"kind" validate:"required,oneof=base call task"`
	Prefix string `mapstructure:"prefix" validate:"required"`
	HTTP   *int   `mapstructure:"http" validate:"required_without=GRPC,omitempty,gte=100,lte=599"`
	GRPC   *int   `mapstructure:"grpc" validate:"omitempty,gte=0,lte=16"`
}

// LoadConfig reads the ConfigKey block from v and validates it. A nil
// validate uses a fresh validator.
func LoadConfig(v *viper.Viper, validate *validator.Validate) (Config, error) {
	var cfg Config
	if err := v.UnmarshalKey(ConfigKey, &cfg); err != nil {
		return Config{}, fmt.Errorf("mapper: decode %s: %w", ConfigKey, err)
	}
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("mapper: invalid %s: %w", ConfigKey, err)
	}
	return cfg, nil
}

// Options converts the configuration into mapper options. Rules keep their
// order, so a later rule for the same prefix wins.
func (c Config) Options() ([]Option, error) {
	var opts []Option
	add := func(kind string, http, grpc *int, httpOpt, grpcOpt func(apicem.Kind, int) Option) error {
		k, err := apicem.ParseKind(kind)
		if err != nil {
			return fmt.Errorf("mapper: kind %q: %w", kind, err)
		}
		if http != nil {
			opts = append(opts, httpOpt(k, *http))
		}
		if grpc != nil {
			opts = append(opts, grpcOpt(k, *grpc))
		}
		return nil
	}

	for _, d := range c.Defaults {
		if err := add(d.Kind, d.HTTP, d.GRPC, WithHTTPDefault, WithGRPCDefault); err != nil {
			return nil, err
		}
	}
	for _, o := range c.Overrides {
		if err := add(o.Kind, o.HTTP, o.GRPC, WithHTTPOverride, WithGRPCOverride); err != nil {
			return nil, err
		}
	}
	for _, r := range c.Rules {
		prefix := r.Prefix
		httpOpt := func(k apicem.Kind, v int) Option { return WithHTTPPrefix(k, prefix, v) }
		grpcOpt := func(k apicem.Kind, v int) Option { return WithGRPCPrefix(k, prefix, v) }
		if err := add(r.Kind, r.HTTP, r.GRPC, httpOpt, grpcOpt); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// FromViper loads the configuration from v and builds a mapper with it.
// Extra options are applied after the configured ones.
func FromViper(v *viper.Viper, validate *validator.Validate, extra ...Option) (apis.Mapper, error) {
	cfg, err := LoadConfig(v, validate)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...)
}
