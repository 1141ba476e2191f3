// Package envvar provides lazily resolved, environment-backed configuration
// attributes. A Var binds one attribute to a named environment variable with
// an optional static default; resolution happens on every read, so changes to
// the process environment are observed immediately. Absence is a normal
// outcome carried by Value, never an error.
package envvar
