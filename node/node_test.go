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
	"errors"
	"path/filepath"
	"testing"
)

type testService struct {
	started, stopped bool
	stopErr          error
}

func (s *testService) Start() error { s.started = true; return nil }
func (s *testService) Stop() error  { s.stopped = true; return s.stopErr }

func TestNodeLifecycle(t *testing.T) {
	stack := New(&Config{Name: "test"})
	var svc *testService
	if err := stack.Register(func(ctx *ServiceContext) (Service, error) {
		db, err := ctx.OpenDatabase("ledger", 16, 16)
		if err != nil {
			return nil, err
		}
		db.Close()
		svc = new(testService)
		return svc, nil
	}); err != nil {
		t.Fatal(err)
	}
	if err := stack.Register(nil); !errors.Is(err, ErrServiceRegistered) {
		t.Errorf("second register: %v", err)
	}
	if err := stack.Service(new(*testService)); !errors.Is(err, ErrNodeStopped) {
		t.Errorf("service lookup before start: %v", err)
	}
	if err := stack.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := stack.Start(); !errors.Is(err, ErrNodeRunning) {
		t.Errorf("second start: %v", err)
	}
	if err := stack.Register(nil); !errors.Is(err, ErrNodeRunning) {
		t.Errorf("register while running: %v", err)
	}
	var found *testService
	if err := stack.Service(&found); err != nil || found != svc || !svc.started {
		t.Fatalf("service lookup: %v", err)
	}
	if err := stack.Service(new(*StopError)); !errors.Is(err, ErrServiceUnknown) {
		t.Errorf("unknown service: %v", err)
	}
	if err := stack.Stop(); err != nil || !svc.stopped {
		t.Fatalf("stop: %v", err)
	}
	if err := stack.Stop(); !errors.Is(err, ErrNodeStopped) {
		t.Errorf("second stop: %v", err)
	}
	stack.Wait()

	// A stopped node constructs a fresh service when started again.
	prev := svc
	if err := stack.Start(); err != nil {
		t.Fatalf("restart: %v", err)
	}
	if svc == prev || !svc.started {
		t.Error("restart reused the stopped service")
	}
	stack.Stop()
}

func TestStartWithoutService(t *testing.T) {
	if err := New(&Config{Name: "test"}).Start(); !errors.Is(err, ErrServiceUnknown) {
		t.Errorf("start: %v", err)
	}
}

func TestStopError(t *testing.T) {
	stack := New(&Config{Name: "test"})
	boom := errors.New("boom")
	stack.Register(func(*ServiceContext) (Service, error) {
		return &testService{stopErr: boom}, nil
	})
	if err := stack.Start(); err != nil {
		t.Fatal(err)
	}
	var stopErr *StopError
	err := stack.Stop()
	if !errors.As(err, &stopErr) || !errors.Is(err, boom) {
		t.Errorf("stop: %v", err)
	}
	if err := stack.Stop(); !errors.Is(err, ErrNodeStopped) {
		t.Errorf("stop after failed stop: %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	conf := &Config{Name: "faucet", DataDir: dir}
	if got, want := conf.ResolvePath("ledger"), filepath.Join(dir, "faucet", "ledger"); got != want {
		t.Errorf("relative path %q, want %q", got, want)
	}
	abs := filepath.Join(dir, "elsewhere")
	if got := conf.ResolvePath(abs); got != abs {
		t.Errorf("absolute path %q", got)
	}
	if got := (&Config{Name: "faucet"}).ResolvePath("ledger"); got != "" {
		t.Errorf("ephemeral path %q", got)
	}
}

func TestOpenPersistentDatabase(t *testing.T) {
	stack := New(&Config{Name: "faucet", DataDir: t.TempDir()})
	stack.Register(func(ctx *ServiceContext) (Service, error) {
		db, err := ctx.OpenDatabase("ledger", 16, 16)
		if err != nil {
			return nil, err
		}
		if err := db.Put([]byte("k"), []byte("v")); err != nil {
			return nil, err
		}
		return new(testService), db.Close()
	})
	if err := stack.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	stack.Stop()
}
