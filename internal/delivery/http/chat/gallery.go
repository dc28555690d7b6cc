package http_chat

import (
	"html/template"
	"strings"

	"github.com/moviemind/core/internal/model"
)

// Visual layout carried over from the original chat page: a centered
// flex row of capped-width poster cards.
const galleryTemplate = `<div style="display: flex; flex-wrap: wrap; gap: 20px; justify-content: center; margin-top: 20px;">
{{- range . }}
<div style="text-align: center; max-width: 200px;">
<div style="font-weight: bold; margin-bottom: 8px; font-size: 14px;"><strong>{{ .Title }}</strong></div>
<img src="{{ .URL }}" alt="{{ .Title }}" style="max-height: 300px; border-radius: 10px; box-shadow: 0 0 10px rgba(0,0,0,0.3);" />
</div>
{{- end }}
</div>`

var galleryTmpl = template.Must(template.New("gallery").Parse(galleryTemplate))

// RenderGalleryHTML renders the poster gallery for direct embedding into
// the chat page. Empty gallery renders to an empty string.
func RenderGalleryHTML(cards []model.PosterCard) string {
	if len(cards) == 0 {
		return ""
	}

	var b strings.Builder
	if err := galleryTmpl.Execute(&b, cards); err != nil {
		return ""
	}
	return b.String()
}
