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

package node

import (
	"os"
	"path/filepath"

	"github.com/ethereum/go-ethereum/log"
)

// Config represents a small collection of configuration values to fine tune the
// node. These values can be further extended by all registered services.
type Config struct {
	// Name sets the instance name of the node. It must not contain the / character.
	Name string `toml:"-"`

	// DataDir is the file system folder the node should use for any data storage
	// requirements. An empty DataDir keeps every database in memory.
	DataDir string

	// Logger is a custom logger to use with the node.
	Logger log.Logger `toml:",omitempty"`
}

// instanceDir returns the directory holding the node's databases.
func (c *Config) instanceDir() string {
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.DataDir, c.Name)
}

// ResolvePath resolves path in the instance directory.
func (c *Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if c.DataDir == "" {
		return ""
	}
	return filepath.Join(c.instanceDir(), path)
}

func (c *Config) openDataDir() error {
	if c.DataDir == "" {
		return nil
	}
	return os.MkdirAll(c.instanceDir(), 0700)
}
