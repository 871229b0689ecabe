package api

import (
	"html/template"
	"net/http"
	"time"

	"pastepad/pkg/domain"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/hlog"
)

const pasteTmplSrc = `<!DOCTYPE html>
<html>
<head>
    <title>{{ .Title }}</title>

    <!-- Open Graph meta tags for link embedding -->
    <meta property="og:title" content="{{ .Title }}" />
    <meta property="og:description" content="{{ .Description }}" />
    <meta property="og:url" content="{{ .PasteURL }}" />
    <meta property="og:type" content="article" />
    <meta property="og:site_name" content="Pastepad" />

    <!-- Twitter Card meta tags -->
    <meta name="twitter:card" content="summary" />
    <meta name="twitter:title" content="{{ .Title }}" />
    <meta name="twitter:description" content="{{ .Description }}" />

    <meta name="description" content="{{ .Description }}" />

    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .paste-container { max-width: 800px; margin: 0 auto; }
        .paste-content {
            background: #f5f5f5;
            padding: 20px;
            border-radius: 5px;
            white-space: pre-wrap;
            font-family: monospace;
        }
    </style>
</head>
<body>
    <div class="paste-container">
        <h1>{{ .Title }}</h1>
        <div class="paste-meta">
            Created: {{ .CreatedAt }}<br>
            Paste ID: {{ .PasteID }}
        </div>
        <div class="paste-content">{{ .Content }}</div>
    </div>
</body>
</html>
`

const homeTmplSrc = `<!DOCTYPE html>
<html>
<head>
    <title>Pastepad</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .container { max-width: 600px; margin: 0 auto; }
        textarea { width: 100%; height: 200px; margin: 10px 0; }
        input[type="text"] { width: 100%; margin: 10px 0; padding: 5px; }
        button { background: #007bff; color: white; padding: 10px 20px; border: none; border-radius: 3px; cursor: pointer; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Pastepad</h1>
        <form action="/api/paste" method="post" enctype="application/x-www-form-urlencoded">
            <input type="text" name="title" placeholder="Paste title (optional)">
            <input type="text" name="description" placeholder="Paste description (optional)">
            <textarea name="content" placeholder="Enter your content here..." required></textarea>
            <button type="submit">Create Paste</button>
        </form>
    </div>
</body>
</html>
`

var (
	pasteTmpl = template.Must(template.New("paste").Parse(pasteTmplSrc))
	homeTmpl  = template.Must(template.New("home").Parse(homeTmplSrc))
)

type pasteView struct {
	Title       string
	Description string
	Content     string
	PasteURL    string
	CreatedAt   string
	PasteID     string
}

func (h *Hdl) ViewPaste(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)
	id := chi.URLParam(r, "id")
	paste, err := h.paste.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPasteNotFound) {
			http.Error(w, "Paste not found", http.StatusNotFound)
			return
		}
		log.Error().Err(err).Str("paste_id", id).Msg("html view failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	data := pasteView{
		Title:       paste.Title,
		Description: paste.Excerpt(),
		Content:     paste.Content,
		PasteURL:    h.pasteURL(r, paste.ID),
		CreatedAt:   paste.CreatedAt.Format(time.RFC3339),
		PasteID:     paste.ID,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pasteTmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Str("paste_id", id).Msg("render paste page")
	}
}

func (h *Hdl) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTmpl.Execute(w, nil); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("render home page")
	}
}
