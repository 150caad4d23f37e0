package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"livetv/internal/models"
	"livetv/internal/player"
	"livetv/internal/query"
	"livetv/internal/shared"
	"livetv/internal/store"
	"livetv/internal/tasks"
)

// ChannelHandler serves the directory's JSON API: channel CRUD, query views,
// embed resolution, the share deep link, and import/export.
//
// The store is single-writer; the handler serializes all access with a mutex
// so concurrent requests cannot interleave mutations.
type ChannelHandler struct {
	mu     sync.Mutex
	store  *store.ChannelStore
	engine *tasks.BackupEngine
	logger *log.Logger
}

// NewChannelHandler creates a ChannelHandler over the given store and backup engine.
func NewChannelHandler(s *store.ChannelStore, engine *tasks.BackupEngine, logger *log.Logger) *ChannelHandler {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &ChannelHandler{store: s, engine: engine, logger: logger}
}

// Routes returns the path patterns this handler serves.
func (h *ChannelHandler) Routes() []string {
	return []string{
		"/api/channels",
		"/api/channels/{id}",
		"/api/channels/{id}/embed",
		"/api/export",
		"/api/import",
		"/api/activity",
		"/api/backups",
		"/api/stats",
		"/watch",
	}
}

// ServeHTTP dispatches to the operation for the matched route.
func (h *ChannelHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch r.URL.Path {
	case "/api/channels":
		switch r.Method {
		case http.MethodGet:
			h.handleList(w, r)
		case http.MethodPost:
			h.handleCreate(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	case "/api/export":
		h.require(w, r, http.MethodGet, h.handleExport)
	case "/api/import":
		h.require(w, r, http.MethodPost, h.handleImport)
	case "/api/activity":
		h.require(w, r, http.MethodGet, h.handleActivity)
	case "/api/backups":
		h.require(w, r, http.MethodGet, h.handleBackups)
	case "/api/stats":
		h.require(w, r, http.MethodGet, h.handleStats)
	case "/watch":
		h.require(w, r, http.MethodGet, h.handleWatch)
	default:
		h.serveChannelByID(w, r)
	}
}

func (h *ChannelHandler) require(w http.ResponseWriter, r *http.Request, method string, fn http.HandlerFunc) {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	fn(w, r)
}

func (h *ChannelHandler) serveChannelByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: channel id must be an integer", shared.ErrInvalidArgument))
		return
	}

	embed := strings.HasSuffix(r.URL.Path, "/embed")
	switch {
	case embed && r.Method == http.MethodGet:
		h.handleEmbed(w, id)
	case r.Method == http.MethodGet:
		h.handleGet(w, id)
	case r.Method == http.MethodPut:
		h.handleUpdate(w, r, id)
	case r.Method == http.MethodDelete:
		h.handleDelete(w, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ChannelHandler) handleList(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	channels := query.Filter(h.store.List(), query.Filters{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Type:     params.Get("type"),
	})
	h.writeJSON(w, http.StatusOK, channels)
}

func (h *ChannelHandler) handleGet(w http.ResponseWriter, id int) {
	channel, err := h.store.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, channel)
}

func (h *ChannelHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r.Body)
	if err != nil {
		h.writeError(w, err)
		return
	}

	channel, err := h.store.Add(fields)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, channel)
}

func (h *ChannelHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id int) {
	fields, err := decodeFields(r.Body)
	if err != nil {
		h.writeError(w, err)
		return
	}

	channel, err := h.store.Update(id, fields)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, channel)
}

func (h *ChannelHandler) handleDelete(w http.ResponseWriter, id int) {
	if err := h.store.Remove(id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ChannelHandler) handleEmbed(w http.ResponseWriter, id int) {
	channel, err := h.store.Get(id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"embedUrl": player.ToEmbedURL(channel.URL, channel.Type),
	})
}

// handleWatch resolves the share deep link. An absent or unknown channel id
// is a silent no-op: 204, no error surfaced.
func (h *ChannelHandler) handleWatch(w http.ResponseWriter, r *http.Request) {
	id, ok := player.ChannelIDFromQuery(r.URL.Query())
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	channel, err := h.store.Get(id)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"channel":  channel,
		"embedUrl": player.ToEmbedURL(channel.URL, channel.Type),
	})
}

func (h *ChannelHandler) handleExport(w http.ResponseWriter, _ *http.Request) {
	document, err := h.engine.Export()
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", tasks.ExportFilename(time.Now())))
	w.WriteHeader(http.StatusOK)
	w.Write(document)
}

// handleImport parses the uploaded document. Without confirm=true it only
// previews the result; replacement is the confirmed, destructive half.
func (h *ChannelHandler) handleImport(w http.ResponseWriter, r *http.Request) {
	document, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: failed to read import document: %v", shared.ErrFormat, err))
		return
	}

	result, err := tasks.ParseImport(document)
	if err != nil {
		h.writeError(w, err)
		return
	}

	confirmed := r.URL.Query().Get("confirm") == "true"
	if !confirmed {
		h.writeJSON(w, http.StatusOK, map[string]any{
			"accepted":  len(result.Accepted),
			"rejected":  result.RejectedCount,
			"confirmed": false,
		})
		return
	}

	if err := h.engine.ImportReplace(result); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"accepted":  len(result.Accepted),
		"rejected":  result.RejectedCount,
		"confirmed": true,
	})
}

func (h *ChannelHandler) handleActivity(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	h.writeJSON(w, http.StatusOK, h.store.Activity().Recent(limit))
}

func (h *ChannelHandler) handleBackups(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.Activity().BackupHistory())
}

func (h *ChannelHandler) handleStats(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, query.Summarize(h.store.List()))
}

func (h *ChannelHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode response", "err", err)
	}
}

// writeError maps the error taxonomy onto HTTP status codes.
func (h *ChannelHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, shared.ErrValidation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, shared.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, shared.ErrFormat), errors.Is(err, shared.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, shared.ErrPersistence):
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}

func decodeFields(body io.Reader) (models.Fields, error) {
	var fields models.Fields
	if err := json.NewDecoder(body).Decode(&fields); err != nil {
		return models.Fields{}, fmt.Errorf("%w: invalid channel payload: %v", shared.ErrFormat, err)
	}
	return fields, nil
}
