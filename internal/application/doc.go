// Package application provides application initialization and dependency
// wiring for the configuration inspection server. It resolves the server's
// own runtime settings, attaches the process-wide configuration instance to
// the HTTP layer, and builds the server, keeping the main package focused on
// CLI parsing and orchestration.
package application
