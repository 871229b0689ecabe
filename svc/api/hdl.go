package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"time"

	"pastepad/cfg"
	"pastepad/pkg/domain"
	"pastepad/svc/svc"
	"pastepad/svc/util"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/hlog"
)

type Hdl struct {
	paste *svc.Paste
	cfg   *cfg.Cfg
}

type CreateBody struct {
	Content     string `json:"content"`
	Prompt      string `json:"prompt"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CreateResp struct {
	Success     bool      `json:"success"`
	PasteID     string    `json:"paste_id"`
	URL         string    `json:"url"`
	RawURL      string    `json:"raw_url"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type PasteResp struct {
	Success     bool      `json:"success"`
	PasteID     string    `json:"paste_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	URL         string    `json:"url"`
	RawURL      string    `json:"raw_url"`
}

type ListItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	URL       string    `json:"url"`
}

type ListResp struct {
	Pastes []ListItem `json:"pastes"`
}

// baseURL prefers the configured BASE_URL and otherwise reconstructs it from
// the request, trusting X-Forwarded-Proto only behind a proxy setup.
func (h *Hdl) baseURL(r *http.Request) string {
	if h.cfg.BaseURL != "" {
		return h.cfg.BaseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if len(h.cfg.TrustedProxies) > 0 {
		if proto := r.Header.Get("X-Forwarded-Proto"); proto == "https" {
			scheme = "https"
		}
	}
	return scheme + "://" + r.Host
}

func (h *Hdl) pasteURL(r *http.Request, id string) string {
	return h.baseURL(r) + "/" + id
}

func (h *Hdl) rawURL(r *http.Request, id string) string {
	return h.pasteURL(r, id) + "/raw"
}

func isJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// CreatePaste accepts content from query parameters, a JSON body, or a form
// body, in that precedence order. Form submissions are redirected to the
// paste page instead of receiving JSON.
func (h *Hdl) CreatePaste(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)
	requestID := util.GetRequestID(r.Context())

	q := r.URL.Query()
	content := q.Get("content")
	if content == "" {
		content = q.Get("prompt")
	}
	title := q.Get("title")
	description := q.Get("description")

	fromJSON := r.Method == http.MethodPost && isJSONRequest(r)
	if r.Method == http.MethodPost {
		r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxPasteSize*2)
		if fromJSON {
			var body CreateBody
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
				log.Warn().Err(err).Msg("invalid JSON body")
				writeErr(w, domain.ErrInvalidRequest, requestID)
				return
			}
			if content == "" {
				content = body.Content
			}
			if content == "" {
				content = body.Prompt
			}
			if title == "" {
				title = body.Title
			}
			if description == "" {
				description = body.Description
			}
		} else {
			if err := r.ParseForm(); err != nil {
				log.Warn().Err(err).Msg("invalid form body")
				writeErr(w, domain.ErrInvalidRequest, requestID)
				return
			}
			if content == "" {
				content = r.PostFormValue("content")
			}
			if content == "" {
				content = r.PostFormValue("prompt")
			}
			if title == "" {
				title = r.PostFormValue("title")
			}
			if description == "" {
				description = r.PostFormValue("description")
			}
		}
	}

	if content == "" {
		log.Warn().Str("method", r.Method).Msg("create without content")
		writeErr(w, domain.ErrContentRequired, requestID)
		return
	}

	paste, err := h.paste.Create(r.Context(), domain.CreateParams{
		Content:     content,
		Title:       title,
		Description: description,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create paste")
		if errors.Is(err, domain.ErrPasteTooLarge) || errors.Is(err, domain.ErrContentRequired) {
			writeErr(w, err, requestID)
			return
		}
		writeErr(w, domain.ErrInternalServer, requestID)
		return
	}
	log.Info().Str("paste_id", paste.ID).Msg("paste created")

	if r.Method == http.MethodPost && !fromJSON {
		http.Redirect(w, r, h.pasteURL(r, paste.ID), http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(CreateResp{
		Success:     true,
		PasteID:     paste.ID,
		URL:         h.pasteURL(r, paste.ID),
		RawURL:      h.rawURL(r, paste.ID),
		Title:       paste.Title,
		Description: paste.Description,
		CreatedAt:   paste.CreatedAt,
	})
}

func (h *Hdl) GetPaste(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)
	requestID := util.GetRequestID(r.Context())
	id := chi.URLParam(r, "id")
	paste, err := h.paste.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPasteNotFound) {
			writeErr(w, domain.ErrPasteNotFound, requestID)
			return
		}
		log.Error().Err(err).Str("paste_id", id).Msg("get failed")
		writeErr(w, domain.ErrInternalServer, requestID)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PasteResp{
		Success:     true,
		PasteID:     paste.ID,
		Title:       paste.Title,
		Description: paste.Description,
		Content:     paste.Content,
		CreatedAt:   paste.CreatedAt,
		URL:         h.pasteURL(r, paste.ID),
		RawURL:      h.rawURL(r, paste.ID),
	})
}

func (h *Hdl) ListPastes(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)
	requestID := util.GetRequestID(r.Context())
	pastes, err := h.paste.List(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list failed")
		writeErr(w, domain.ErrInternalServer, requestID)
		return
	}
	items := make([]ListItem, 0, len(pastes))
	for _, p := range pastes {
		items = append(items, ListItem{
			ID:        p.ID,
			Title:     p.Title,
			CreatedAt: p.CreatedAt,
			URL:       h.pasteURL(r, p.ID),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListResp{Pastes: items})
}

func (h *Hdl) ViewRaw(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	paste, err := h.paste.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPasteNotFound) {
			http.Error(w, "Paste not found", http.StatusNotFound)
			return
		}
		hlog.FromRequest(r).Error().Err(err).Str("paste_id", id).Msg("raw view failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, paste.Content)
}

func writeErr(w http.ResponseWriter, err error, requestID string) {
	statusCode := domain.Status(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	errorMsg := domain.ToResp(err).Error.Msg
	if statusCode >= 500 {
		errorMsg = "internal server error"
	}
	json.NewEncoder(w).Encode(map[string]string{
		"error":      errorMsg,
		"request_id": requestID,
	})
}
