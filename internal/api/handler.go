// Package api exposes the content library and chat assistant over HTTP to
// the web client.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/capyhoc/capyhoc/internal/assistant"
	"github.com/capyhoc/capyhoc/internal/catalog"
	"github.com/capyhoc/capyhoc/internal/library"
)

// Handler holds the dependencies of the HTTP surface.
type Handler struct {
	library     *library.Library
	chain       *assistant.Chain
	transcripts *assistant.TranscriptStore
}

// NewHandler creates the API handler.
func NewHandler(lib *library.Library, chain *assistant.Chain, transcripts *assistant.TranscriptStore) *Handler {
	return &Handler{
		library:     lib,
		chain:       chain,
		transcripts: transcripts,
	}
}

// Routes builds the HTTP router.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealthz)
	mux.HandleFunc("GET /readyz", h.handleReadyz)

	mux.HandleFunc("GET /api/videos", h.collection(h.library.Videos))
	mux.HandleFunc("GET /api/ebooks", h.collection(h.library.Ebooks))
	mux.HandleFunc("GET /api/lectures", h.collection(h.library.Lectures))
	mux.HandleFunc("GET /api/documents", h.collection(h.library.Documents))
	mux.HandleFunc("GET /api/worksheets", h.handleWorksheets)
	mux.HandleFunc("GET /api/worksheets/{id}", h.handleWorksheet)
	mux.HandleFunc("POST /api/reload", h.handleReload)

	mux.HandleFunc("POST /api/chat", h.handleChat)
	mux.HandleFunc("GET /ws/chat", h.handleChatSocket)

	return mux
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleReadyz(w http.ResponseWriter, r *http.Request) {
	// The library is seeded with fallback data at construction, so the
	// service is ready as soon as it is listening.
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// collection adapts a library accessor into a list endpoint.
func (h *Handler) collection(get func() []catalog.ResourceItem) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, get())
	}
}

func (h *Handler) handleWorksheets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.library.Worksheets())
}

func (h *Handler) handleWorksheet(w http.ResponseWriter, r *http.Request) {
	ws, ok := h.library.Worksheet(r.PathValue("id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "worksheet not found"})
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

func (h *Handler) handleReload(w http.ResponseWriter, r *http.Request) {
	h.library.Load(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "reloaded",
		"loadedAt": h.library.LoadedAt(),
	})
}

// chatRequest is the POST /api/chat body.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the POST /api/chat reply.
type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	text := strings.TrimSpace(req.Message)
	if text == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "message is required"})
		return
	}

	// Reply never errors; exhaustion produces the child-safe fallback text.
	writeJSON(w, http.StatusOK, chatResponse{Reply: h.chain.Reply(r.Context(), text)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("writing response failed", "error", err)
	}
}
