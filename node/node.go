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
	"reflect"
	"sync"

	"github.com/ethereum/go-ethereum/log"
)

// Node owns the data directory and runs the one service the faucet is
// built around.
type Node struct {
	config      *Config
	constructor ServiceConstructor
	service     Service       // nil unless running
	stop        chan struct{} // closed on Stop
	lock        sync.RWMutex

	log log.Logger
}

// New creates a new node, ready for service registration.
func New(conf *Config) *Node {
	if conf.Logger == nil {
		conf.Logger = log.New()
	}
	return &Node{config: conf, log: conf.Logger}
}

// Register sets the constructor of the service run by the node. It can be
// called once, before Start.
func (n *Node) Register(constructor ServiceConstructor) error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.service != nil {
		return ErrNodeRunning
	}
	if n.constructor != nil {
		return ErrServiceRegistered
	}
	n.constructor = constructor
	return nil
}

// Start opens the data directory, then constructs and starts the service.
func (n *Node) Start() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.service != nil {
		return ErrNodeRunning
	}
	if n.constructor == nil {
		return ErrServiceUnknown
	}
	if err := n.config.openDataDir(); err != nil {
		return err
	}
	service, err := n.constructor(&ServiceContext{config: n.config})
	if err != nil {
		return err
	}
	if err := service.Start(); err != nil {
		service.Stop()
		return err
	}
	n.log.Info("Node started", "name", n.config.Name, "datadir", n.config.DataDir, "service", reflect.TypeOf(service))
	n.service = service
	n.stop = make(chan struct{})
	return nil
}

// Stop stops the running service. The node can be started again afterwards.
func (n *Node) Stop() error {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.service == nil {
		return ErrNodeStopped
	}
	err := n.service.Stop()
	kind := reflect.TypeOf(n.service)
	n.service = nil
	close(n.stop)
	n.log.Info("Node stopped", "name", n.config.Name)
	if err != nil {
		return &StopError{Service: kind, Err: err}
	}
	return nil
}

// Wait blocks until the node is stopped. It returns at once if the node is
// not running.
func (n *Node) Wait() {
	n.lock.RLock()
	if n.service == nil {
		n.lock.RUnlock()
		return
	}
	stop := n.stop
	n.lock.RUnlock()

	<-stop
}

// Service stores the running service into the pointer it is given, provided
// the types match.
func (n *Node) Service(service interface{}) error {
	n.lock.RLock()
	defer n.lock.RUnlock()

	if n.service == nil {
		return ErrNodeStopped
	}
	element := reflect.ValueOf(service).Elem()
	if element.Type() != reflect.TypeOf(n.service) {
		return ErrServiceUnknown
	}
	element.Set(reflect.ValueOf(n.service))
	return nil
}

// DataDir returns the configured data directory.
func (n *Node) DataDir() string { return n.config.DataDir }
