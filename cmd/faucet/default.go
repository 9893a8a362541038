// Copyright 2018 The zipper team Authors
// This file is part of the z0 library.
//
// The z0 library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The z0 library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the z0 library. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/luozexuan/miden-base/config"
	"github.com/luozexuan/miden-base/host"
	"github.com/luozexuan/miden-base/node"
	"github.com/luozexuan/miden-base/params"
	"github.com/naoina/toml"
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		link := ""
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// AllCfg all configs
var AllCfg []Config

// Config is a configuration section that must be applied before a command runs.
type Config interface {
	Setup() error
}

var (
	// log config
	logConfig = func() *config.LogConfig {
		c := config.DefaultLogConfig
		return &c
	}()

	// node config
	nodeConfig = &node.Config{
		Name:    params.ClientIdentifier,
		DataDir: defaultDataDir(),
	}

	// host config
	hostConfig = func() *host.Config {
		c := host.DefaultConfig
		return &c
	}()

	faucetCfg = &faucetConfig{
		Node: nodeConfig,
		Host: hostConfig,
		Log:  logConfig,
	}
)

func init() {
	AllCfg = append(AllCfg, logConfig)
}

func setUpConfig() error {
	for _, c := range AllCfg {
		if err := c.Setup(); err != nil {
			return err
		}
	}
	return nil
}

func loadConfig(file string, cfg *faucetConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}
