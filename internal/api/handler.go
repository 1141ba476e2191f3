package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/agent-config/internal/config"
	"github.com/eugenenazirov/agent-config/internal/envvar"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler exposes the configuration table over HTTP.
type Handler struct {
	config *config.Config

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler around the provided configuration table.
func NewHandler(cfg *config.Config, opts ...HandlerOption) *Handler {
	h := &Handler{
		config: cfg,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	resp := configResponse{
		Attributes: h.config.Snapshot(),
		ResolvedAt: h.clock(),
	}

	switch strings.ToLower(r.URL.Query().Get("format")) {
	case "", "json":
		writeJSON(w, http.StatusOK, resp)
	case "yaml", "yml":
		writeYAML(w, http.StatusOK, resp)
	default:
		writeError(w, http.StatusBadRequest, "Invalid request", "format must be json or yaml")
	}
}

func (h *Handler) handleGetAttribute(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	value, err := h.config.Get(name)
	if err != nil {
		if errors.Is(err, config.ErrUnknownAttribute) {
			writeError(w, http.StatusNotFound, "Attribute not found", fmt.Sprintf("no attribute registered under %q", name))
			return
		}
		writeInternalError(w, err)
		return
	}

	resp := attributeResponse{
		Name:       name,
		Value:      value,
		Present:    value.IsPresent(),
		ResolvedAt: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type configResponse struct {
	Attributes map[string]envvar.Value `json:"attributes" yaml:"attributes"`
	ResolvedAt time.Time               `json:"resolvedAt" yaml:"resolved_at"`
}

type attributeResponse struct {
	Name       string       `json:"name"`
	Value      envvar.Value `json:"value"`
	Present    bool         `json:"present"`
	ResolvedAt time.Time    `json:"resolvedAt"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeYAML(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/yaml")
	if status != 0 {
		w.WriteHeader(status)
	}
	enc := yaml.NewEncoder(w)
	_ = enc.Encode(payload)
	_ = enc.Close()
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
