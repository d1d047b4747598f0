/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	tokfs "bennypowers.dev/tokencss/fs"
)

// EnvPrefix prefixes environment variables that override settings,
// e.g. TOKENCSS_TYPOGRAPHY_MODE.
const EnvPrefix = "TOKENCSS"

// Setting keys shared by flags, environment variables and the config file.
const (
	KeyInput          = "input"
	KeyOutput         = "output"
	KeyFoundations    = "foundations"
	KeyTypography     = "typography"
	KeyTypographyMode = "typography-mode"
	KeyUnit           = "unit"
	KeyLogLevel       = "log-level"
)

// NewViper returns a viper instance reading TOKENCSS_* environment variables.
func NewViper() *viper.Viper {
	return Configure(viper.New())
}

// Configure makes v read TOKENCSS_* environment variables.
func Configure(v *viper.Viper) *viper.Viper {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Resolve loads the config file under rootDir, if any, and merges v over it.
// Unlike LoadOrDefault, a malformed config file is an error.
func Resolve(v *viper.Viper, filesystem tokfs.FileSystem, rootDir string) (*Config, error) {
	file, err := Load(filesystem, rootDir)
	if err != nil {
		return nil, err
	}
	return Merge(v, file)
}

// Merge layers the settings held by v over file. Values set explicitly on
// v or bound flags that were changed win, then environment variables, then
// file, then defaults.
func Merge(v *viper.Viper, file *Config) (*Config, error) {
	base := file.WithDefaults()
	for key, value := range map[string]string{
		KeyInput:          base.Input,
		KeyOutput:         base.Output,
		KeyFoundations:    base.Foundations,
		KeyTypography:     base.Typography,
		KeyTypographyMode: base.TypographyMode,
		KeyUnit:           base.Unit,
		KeyLogLevel:       base.LogLevel,
	} {
		v.SetDefault(key, value)
	}

	merged := &Config{}
	if err := v.Unmarshal(merged); err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return merged.WithDefaults(), nil
}
