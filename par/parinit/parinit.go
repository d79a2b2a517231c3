// Copyright 2025 The go-parallel Authors. SPDX-License-Identifier: Apache-2.0

// Package parinit resolves runtime configuration shared by the bench
// harness and tests: the worker-count setting ("all" or an explicit
// count) and the random seed.
package parinit

import (
	"runtime"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/ajroetker/go-parallel/par"
	"github.com/ajroetker/go-parallel/par/threadpool"
)

// Config carries the resolved settings.
type Config struct {
	// OSThreads is "all", "", or a positive decimal count.
	OSThreads string `mapstructure:"os_threads"`

	// Seed for randomized workloads; 0 requests a derived seed.
	Seed uint32 `mapstructure:"seed"`
}

// Workers resolves the OSThreads setting to a worker count. "all" and
// the empty string mean every available processor.
func (c Config) Workers() (int, error) {
	switch c.OSThreads {
	case "", "all":
		return runtime.GOMAXPROCS(0), nil
	}
	n, err := strconv.Atoi(c.OSThreads)
	if err != nil {
		return 0, errors.Wrapf(err, "parinit: invalid os_threads %q", c.OSThreads)
	}
	if n <= 0 {
		return 0, errors.Errorf("parinit: os_threads must be positive, got %d", n)
	}
	return n, nil
}

// ResolveSeed returns the explicit seed, or one derived from the clock
// when none was given. Callers print the value so failing runs can be
// reproduced.
func (c Config) ResolveSeed() uint32 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint32(time.Now().UnixNano())
}

// Install builds a pool per the configuration and registers it as the
// default executor. The caller owns the returned pool and should Close
// it on shutdown.
func Install(c Config) (*threadpool.Pool, error) {
	workers, err := c.Workers()
	if err != nil {
		return nil, err
	}
	pool := threadpool.New(workers)
	par.SetDefaultExecutor(pool)
	return pool, nil
}
