// MIT License
//
// Copyright (c) 2025-2026 Priact Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package actor

import (
	"github.com/DrewBurkhart/priact/log"
)

// DefaultMailboxSize is the capacity of the bounded ingestion endpoint when
// none is set. A smaller capacity applies backpressure to producers sooner.
const DefaultMailboxSize = 32

// spawnConfig defines the configuration to apply when creating an actor
type spawnConfig struct {
	// name identifies the actor in logs and observer events
	name string
	// mailboxSize is the capacity of the bounded ingestion endpoint
	mailboxSize int
	// logger receives the runtime's own messages
	logger log.Logger
	// observer receives the lifecycle events
	observer Observer
}

// newSpawnConfig creates an instance of spawnConfig
func newSpawnConfig(opts ...SpawnOption) *spawnConfig {
	config := &spawnConfig{
		mailboxSize: DefaultMailboxSize,
		logger:      log.DefaultLogger,
	}

	for _, opt := range opts {
		opt.Apply(config)
	}

	if config.observer == nil {
		config.observer = NewLogObserver(config.logger)
	}
	return config
}

// SpawnOption is the interface that applies to a spawn configuration.
type SpawnOption interface {
	// Apply sets the Option value of a config.
	Apply(config *spawnConfig)
}

var _ SpawnOption = spawnOption(nil)

// spawnOption implements the SpawnOption interface.
type spawnOption func(config *spawnConfig)

// Apply sets the Option value of a config.
func (f spawnOption) Apply(c *spawnConfig) {
	f(c)
}

// WithName sets the actor name used in logs and observer events.
// The default is derived from the behavior's type.
func WithName(name string) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.name = name
	})
}

// WithMailboxSize sets the capacity of the bounded ingestion endpoint.
// Values less than one fall back to DefaultMailboxSize, and the effective
// capacity is never below two: the endpoint cannot enforce its bound at
// capacity one.
func WithMailboxSize(size int) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		if size > 0 {
			config.mailboxSize = size
		}
	})
}

// WithLogger sets the logger the runtime uses for its own messages and, when
// no observer is set, for the default lifecycle observer.
func WithLogger(logger log.Logger) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.logger = logger
	})
}

// WithObserver sets the lifecycle observer.
// The default observer logs lifecycle events through the configured logger.
func WithObserver(observer Observer) SpawnOption {
	return spawnOption(func(config *spawnConfig) {
		config.observer = observer
	})
}
