package config

import (
	"sort"

	"github.com/eugenenazirov/agent-config/internal/envvar"
)

// Attribute names exposed by the configuration table.
const (
	AttrBuilderToken   = "builder_token"
	AttrAgentType      = "agent_type"
	AttrSnapshotBucket = "snapshot_bucket"
)

// Environment variables backing the well-known attributes.
const (
	EnvBuilderToken   = "BUILDER_TOKEN"
	EnvCodegenAgent   = "CODEGEN_AGENT"
	EnvSnapshotBucket = "SNAPSHOT_BUCKET"
)

// DefaultAgentType is the agent identifier used when CODEGEN_AGENT is unset.
const DefaultAgentType = "trpc_agent"

// Config owns a fixed table of named environment-backed attributes. The table
// is populated during setup and never mutated afterwards, so steady-state
// reads need no locking; only resolution touches mutable state, and that
// state (the process environment) is owned by the operating system.
type Config struct {
	attrs map[string]envvar.Var
}

// New creates a Config with an empty attribute table.
func New() *Config {
	return &Config{attrs: make(map[string]envvar.Var)}
}

// NewDefault creates a Config with the well-known attribute set registered.
func NewDefault() *Config {
	cfg := New()
	cfg.Register(AttrBuilderToken, envvar.New(EnvBuilderToken))
	cfg.Register(AttrAgentType, envvar.WithDefault(EnvCodegenAgent, DefaultAgentType))
	cfg.Register(AttrSnapshotBucket, envvar.New(EnvSnapshotBucket))
	return cfg
}

// Register adds an attribute under name. Registering a name twice replaces
// the earlier attribute: the last registration wins. Register is intended
// for setup only and must not race with readers.
func (c *Config) Register(name string, v envvar.Var) {
	c.attrs[name] = v
}

// Get resolves the attribute registered under name against the current
// environment. Unknown names return ErrUnknownAttribute; a registered
// attribute always resolves, with absence reported through the returned
// Value rather than through an error.
func (c *Config) Get(name string) (envvar.Value, error) {
	v, ok := c.attrs[name]
	if !ok {
		return envvar.Absent(), ErrUnknownAttribute
	}
	return v.Resolve(), nil
}

// Names returns the registered attribute names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.attrs))
	for name := range c.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Snapshot resolves every registered attribute in a single pass. The result
// is a point-in-time view; later environment changes are not reflected.
func (c *Config) Snapshot() map[string]envvar.Value {
	snap := make(map[string]envvar.Value, len(c.attrs))
	for name, v := range c.attrs {
		snap[name] = v.Resolve()
	}
	return snap
}

// BuilderToken resolves the builder API token. Absent when BUILDER_TOKEN is unset.
func (c *Config) BuilderToken() envvar.Value {
	return c.resolve(AttrBuilderToken)
}

// AgentType resolves the codegen agent identifier, falling back to DefaultAgentType.
func (c *Config) AgentType() string {
	return c.resolve(AttrAgentType).Or(DefaultAgentType)
}

// SnapshotBucket resolves the snapshot storage bucket. Absent when SNAPSHOT_BUCKET is unset.
func (c *Config) SnapshotBucket() envvar.Value {
	return c.resolve(AttrSnapshotBucket)
}

func (c *Config) resolve(name string) envvar.Value {
	v, ok := c.attrs[name]
	if !ok {
		return envvar.Absent()
	}
	return v.Resolve()
}
