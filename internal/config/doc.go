// Package config exposes the process-wide configuration object for codegen
// agent deployments: a fixed table of environment-backed attributes (builder
// token, agent type, snapshot bucket) resolved lazily on every read, plus a
// singleton accessor shared by the whole process.
package config
