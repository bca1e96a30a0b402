// Package app provides application initialization, lifecycle management,
// and dependency injection for teelog.
package app

import (
	"sync"

	"github.com/tungetti/teelog/internal/config"
	"github.com/tungetti/teelog/internal/console"
	"github.com/tungetti/teelog/internal/errors"
	"github.com/tungetti/teelog/internal/logging"
)

// Container holds all application dependencies.
// It provides thread-safe access to shared components.
type Container struct {
	mu       sync.RWMutex
	Config   *config.Config
	Facility *logging.Logger
	Console  console.Logger
}

// NewContainer creates a new dependency container.
func NewContainer() *Container {
	return &Container{}
}

// SetConfig sets the configuration.
func (c *Container) SetConfig(cfg *config.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Config = cfg
}

// SetFacility sets the logging facility.
func (c *Container) SetFacility(l *logging.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Facility = l
}

// SetConsole sets the operator logger.
func (c *Container) SetConsole(l console.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Console = l
}

// GetConfig returns the configuration.
func (c *Container) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Config
}

// GetFacility returns the logging facility.
func (c *Container) GetFacility() *logging.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Facility
}

// GetConsole returns the operator logger.
func (c *Container) GetConsole() console.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Console
}

// Validate checks that all required dependencies are set.
func (c *Container) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Config == nil {
		return errors.New(errors.Configuration, "config not initialized")
	}
	if c.Facility == nil {
		return errors.New(errors.Configuration, "logging facility not initialized")
	}
	if c.Console == nil {
		return errors.New(errors.Configuration, "operator logger not initialized")
	}
	return nil
}
