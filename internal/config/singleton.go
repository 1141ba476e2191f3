package config

import "sync"

var (
	instanceOnce sync.Once
	instance     *Config
)

// Instance returns the process-wide Config, creating it on the first call.
// sync.Once provides the happens-before edge between the constructing
// goroutine and every later caller, so all callers observe the same fully
// constructed instance even when the first calls race. The instance lives
// until process exit and its attribute table never changes.
func Instance() *Config {
	instanceOnce.Do(func() {
		instance = NewDefault()
	})
	return instance
}
