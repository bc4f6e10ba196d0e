package sections

import (
	"html/template"
	"strings"

	"storefront-backend/internal/models"
)

var richTextTmpl = template.Must(template.New("rich_text").Parse(`<section class="rich-text rich-text--{{.Width}}" style="background-color:{{.BgColor}};color:{{.TextColor}};text-align:{{.Align}}">
{{- if .Title}}
  <h2 class="rich-text__title">{{.Title}}</h2>
{{- end}}
  <div class="rich-text__content">{{.Content}}</div>
</section>`))

type richTextData struct {
	Title     string
	Content   template.HTML
	Align     string
	BgColor   string
	TextColor string
	Width     string
}

// RegisterRichText registers the free-form content section. Its content
// setting carries HTML authored in the editor, so it passes through the
// sanitizer before rendering.
func RegisterRichText(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister("rich_text", &Descriptor{
		Renderer: renderRichText,
		Schema: Schema{
			Name: "Rich Text",
			Settings: []SettingSpec{
				{ID: "title", Type: "text", Label: "Título", Default: "Conte sua história"},
				{ID: "content", Type: "richtext", Label: "Conteúdo"},
				{ID: "align", Type: "select", Label: "Alinhamento", Default: "center", Options: []Option{
					{Value: "left", Label: "Esquerda"},
					{Value: "center", Label: "Centro"},
					{Value: "right", Label: "Direita"},
				}},
				{ID: "bg_color", Type: "color", Label: "Cor de Fundo", Default: "#ffffff"},
				{ID: "text_color", Type: "color", Label: "Cor do Texto", Default: "#111827"},
				{ID: "width", Type: "select", Label: "Largura", Default: "full", Options: []Option{
					{Value: "narrow", Label: "Estreito"},
					{Value: "full", Label: "Largura Total"},
				}},
			},
		},
	})
}

func renderRichText(ctx RenderContext, inst models.SectionInstance) string {
	settings := inst.Settings

	content := stringSetting(settings, "content", "")
	if ctx != nil {
		content = ctx.SanitizeHTML(content)
	}

	data := richTextData{
		Title:     stringSetting(settings, "title", ""),
		Content:   template.HTML(content),
		Align:     stringSetting(settings, "align", "center"),
		BgColor:   stringSetting(settings, "bg_color", "#ffffff"),
		TextColor: stringSetting(settings, "text_color", "#111827"),
		Width:     stringSetting(settings, "width", "full"),
	}

	var sb strings.Builder
	if err := richTextTmpl.Execute(&sb, data); err != nil {
		return ""
	}
	return sb.String()
}
