// Package api exposes HTTP handlers for the activities service.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jbequiniti/skills-getting-started-with-github-copilot/internal/domain"
	"github.com/jbequiniti/skills-getting-started-with-github-copilot/internal/observability"
	"github.com/jbequiniti/skills-getting-started-with-github-copilot/web"
)

// Handler coordinates HTTP requests with the activity registry.
type Handler struct {
	registry *domain.Registry
}

// NewHandler builds a Handler.
func NewHandler(registry *domain.Registry) *Handler {
	return &Handler{registry: registry}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", h.root)
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.activityAction)
	// The ServeFile family (like FileServer) 301s any path ending in
	// /index.html to ./, but the root redirect sends clients to
	// /static/index.html, so the index gets its own route that serves
	// the bytes directly without that canonicalization.
	mux.HandleFunc("/static/index.html", func(w http.ResponseWriter, r *http.Request) {
		data, err := web.Assets.ReadFile("static/index.html")
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", "failed to load index")
			return
		}
		http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(data))
	})
	mux.Handle("/static/", http.FileServer(http.FS(web.Assets)))
	mux.HandleFunc("/healthz", healthz)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the bare URL to the static signup page.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	activities := h.registry.List()
	resp := make(map[string]ActivityView, len(activities))
	for name, activity := range activities {
		resp[name] = toActivityView(activity)
	}
	writeJSON(w, http.StatusOK, resp)
}

// activityAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. Activity names may contain spaces and
// arrive percent-decoded; the action is always the final path segment.
func (h *Handler) activityAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	idx := strings.LastIndex(rest, "/")
	if idx <= 0 {
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
		return
	}
	name, action := rest[:idx], rest[idx+1:]

	switch action {
	case "signup":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.signup(w, r, name)
	case "unregister":
		if r.Method != http.MethodDelete {
			writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
			return
		}
		h.unregister(w, r, name)
	default:
		writeError(w, http.StatusNotFound, "not_found", "resource not found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")

	size, err := h.registry.Signup(name, email)
	if err != nil {
		observability.RecordSignup(signupOutcome(err))
		writeRegistryError(w, err)
		return
	}

	observability.RecordSignup(observability.OutcomeSuccess)
	observability.SetRosterSize(name, size)
	writeJSON(w, http.StatusOK, MutationResponse{
		Message:      fmt.Sprintf("Signed up %s for %s", email, name),
		Participants: size,
	})
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name string) {
	email := r.URL.Query().Get("email")

	size, err := h.registry.Unregister(name, email)
	if err != nil {
		observability.RecordUnregistration(unregisterOutcome(err))
		writeRegistryError(w, err)
		return
	}

	observability.RecordUnregistration(observability.OutcomeSuccess)
	observability.SetRosterSize(name, size)
	writeJSON(w, http.StatusOK, MutationResponse{
		Message:      fmt.Sprintf("Unregistered %s from %s", email, name),
		Participants: size,
	})
}

// writeRegistryError maps registry failures onto HTTP statuses. Detail
// texts are part of the public API contract.
func writeRegistryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		writeError(w, http.StatusNotFound, "not_found", "Activity not found")
	case errors.Is(err, domain.ErrAlreadyRegistered):
		writeError(w, http.StatusBadRequest, "already_registered", "Student already signed up")
	case errors.Is(err, domain.ErrNotRegistered):
		writeError(w, http.StatusBadRequest, "not_registered", "Student is not registered for this activity")
	case errors.Is(err, domain.ErrActivityFull):
		writeError(w, http.StatusBadRequest, "capacity_exceeded", "Activity is already full")
	case errors.Is(err, domain.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "validation_failed", "email query parameter is required")
	default:
		writeError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

func signupOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, domain.ErrAlreadyRegistered):
		return observability.OutcomeDuplicate
	case errors.Is(err, domain.ErrActivityFull):
		return observability.OutcomeFull
	default:
		return observability.OutcomeBadRequest
	}
}

func unregisterOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrActivityNotFound):
		return observability.OutcomeNotFound
	case errors.Is(err, domain.ErrNotRegistered):
		return observability.OutcomeNotMember
	default:
		return observability.OutcomeBadRequest
	}
}

// ActivityView is the wire representation of one activity.
type ActivityView struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// MutationResponse confirms a signup or unregistration.
type MutationResponse struct {
	Message      string `json:"message"`
	Participants int    `json:"participants"`
}

func toActivityView(activity domain.Activity) ActivityView {
	participants := activity.Participants
	if participants == nil {
		participants = []string{}
	}
	return ActivityView{
		Description:     activity.Description,
		Schedule:        activity.Schedule,
		MaxParticipants: activity.MaxParticipants,
		Participants:    participants,
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	payload := map[string]string{
		"type":   code,
		"detail": detail,
	}
	writeJSON(w, status, payload)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
