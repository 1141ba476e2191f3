package config

import (
	"errors"
	"os"
	"slices"
	"testing"

	"github.com/eugenenazirov/agent-config/internal/envvar"
)

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset %s: %v", key, err)
	}
}

func TestBuilderToken(t *testing.T) {
	cfg := NewDefault()

	t.Run("unset is absent", func(t *testing.T) {
		unsetEnv(t, EnvBuilderToken)

		if got := cfg.BuilderToken(); got.IsPresent() {
			t.Fatalf("expected absent builder token, got %q", got.String())
		}
	})

	t.Run("set is returned verbatim", func(t *testing.T) {
		t.Setenv(EnvBuilderToken, "abc123")

		got := cfg.BuilderToken()
		if !got.IsPresent() || got.String() != "abc123" {
			t.Fatalf("expected abc123, got %q (present=%v)", got.String(), got.IsPresent())
		}
	})
}

func TestAgentType(t *testing.T) {
	cfg := NewDefault()

	t.Run("unset falls back to default", func(t *testing.T) {
		unsetEnv(t, EnvCodegenAgent)

		if got := cfg.AgentType(); got != DefaultAgentType {
			t.Fatalf("expected %s, got %s", DefaultAgentType, got)
		}
	})

	t.Run("set overrides default", func(t *testing.T) {
		t.Setenv(EnvCodegenAgent, "custom_agent")

		if got := cfg.AgentType(); got != "custom_agent" {
			t.Fatalf("expected custom_agent, got %s", got)
		}
	})
}

func TestSnapshotBucketEmptyStringIsPresent(t *testing.T) {
	cfg := NewDefault()

	t.Setenv(EnvSnapshotBucket, "")

	got := cfg.SnapshotBucket()
	if !got.IsPresent() {
		t.Fatalf("expected empty string to be present, not absent")
	}
	if got.String() != "" {
		t.Fatalf("expected empty string, got %q", got.String())
	}
}

func TestGetResolvesRegisteredAttribute(t *testing.T) {
	cfg := NewDefault()
	t.Setenv(EnvBuilderToken, "tok")

	got, err := cfg.Get(AttrBuilderToken)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.String() != "tok" {
		t.Fatalf("expected tok, got %q", got.String())
	}
}

func TestGetUnknownAttribute(t *testing.T) {
	cfg := NewDefault()

	_, err := cfg.Get("no_such_attribute")
	if !errors.Is(err, ErrUnknownAttribute) {
		t.Fatalf("expected ErrUnknownAttribute, got %v", err)
	}
}

func TestRegisterLastWins(t *testing.T) {
	const key = "CONFIG_TEST_REREGISTER"
	unsetEnv(t, key)

	cfg := New()
	cfg.Register("attr", envvar.WithDefault(key, "first"))
	cfg.Register("attr", envvar.WithDefault(key, "second"))

	got, err := cfg.Get("attr")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.String() != "second" {
		t.Fatalf("expected last registration to win, got %q", got.String())
	}
	if names := cfg.Names(); len(names) != 1 {
		t.Fatalf("expected a single attribute after re-registration, got %v", names)
	}
}

func TestNamesSorted(t *testing.T) {
	cfg := NewDefault()

	want := []string{AttrAgentType, AttrBuilderToken, AttrSnapshotBucket}
	if got := cfg.Names(); !slices.Equal(got, want) {
		t.Fatalf("expected names %v, got %v", want, got)
	}
}

func TestSnapshotResolvesAllAttributes(t *testing.T) {
	cfg := NewDefault()

	unsetEnv(t, EnvBuilderToken)
	unsetEnv(t, EnvCodegenAgent)
	t.Setenv(EnvSnapshotBucket, "fsm_snapshots")

	snap := cfg.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(snap))
	}
	if snap[AttrBuilderToken].IsPresent() {
		t.Fatalf("expected builder token to be absent")
	}
	if got := snap[AttrAgentType].String(); got != DefaultAgentType {
		t.Fatalf("expected %s, got %q", DefaultAgentType, got)
	}
	if got := snap[AttrSnapshotBucket].String(); got != "fsm_snapshots" {
		t.Fatalf("expected fsm_snapshots, got %q", got)
	}
}
