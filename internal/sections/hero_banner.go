package sections

import (
	"html/template"
	"strings"

	"storefront-backend/internal/models"
)

var heroBannerTmpl = template.Must(template.New("hero_banner").Parse(`<section class="hero-banner" style="--hero-height:{{.HeightDesktop}};--hero-height-mobile:{{.HeightMobile}}">
{{- if .ImageMobile}}
  <img class="hero-banner__image hero-banner__image--mobile" src="{{.ImageMobile}}" alt="{{.Title}}">
{{- end}}
{{- if .ImageDesktop}}
  <img class="hero-banner__image" src="{{.ImageDesktop}}" alt="{{.Title}}">
{{- else}}
  <div class="hero-banner__placeholder"></div>
{{- end}}
  <div class="hero-banner__overlay" style="opacity:{{.OverlayOpacity}}"></div>
  <div class="hero-banner__content" style="color:{{.TextColor}};text-align:{{.TextAlign}}">
{{- if .Title}}
    <h1 class="hero-banner__title">{{.Title}}</h1>
{{- end}}
{{- if .Subtitle}}
    <p class="hero-banner__subtitle">{{.Subtitle}}</p>
{{- end}}
{{- if .ButtonText}}
    <a class="hero-banner__button" href="{{.ButtonLink}}">{{.ButtonText}}</a>
{{- end}}
  </div>
</section>`))

type heroBannerData struct {
	ImageDesktop   string
	ImageMobile    string
	Title          string
	Subtitle       string
	TextColor      string
	TextAlign      string
	ButtonText     string
	ButtonLink     string
	OverlayOpacity float64
	HeightDesktop  string
	HeightMobile   string
}

// RegisterHeroBanner registers the full-width banner section.
func RegisterHeroBanner(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister("hero_banner", &Descriptor{
		Renderer: renderHeroBanner,
		Schema: Schema{
			Name: "Hero Banner",
			Settings: []SettingSpec{
				{ID: "image_desktop", Type: "image", Label: "Imagem Desktop (1920x800)"},
				{ID: "image_mobile", Type: "image", Label: "Imagem Mobile (800x1200)"},
				{ID: "height_desktop", Type: "select", Label: "Altura Desktop", Default: "600px", Options: []Option{
					{Value: "400px", Label: "Pequeno (400px)"},
					{Value: "600px", Label: "Médio (600px)"},
					{Value: "800px", Label: "Grande (800px)"},
					{Value: "100vh", Label: "Tela Cheia"},
				}},
				{ID: "height_mobile", Type: "select", Label: "Altura Mobile", Default: "400px", Options: []Option{
					{Value: "300px", Label: "Pequeno (300px)"},
					{Value: "400px", Label: "Médio (400px)"},
					{Value: "500px", Label: "Grande (500px)"},
					{Value: "80vh", Label: "Tela Quase Cheia"},
				}},
				{ID: "title", Type: "text", Label: "Título", Default: "Nova Coleção"},
				{ID: "subtitle", Type: "textarea", Label: "Subtítulo"},
				{ID: "text_color", Type: "color", Label: "Cor do Texto", Default: "#ffffff"},
				{ID: "text_align", Type: "select", Label: "Alinhamento", Default: "center", Options: []Option{
					{Value: "left", Label: "Esquerda"},
					{Value: "center", Label: "Centro"},
					{Value: "right", Label: "Direita"},
				}},
				{ID: "button_text", Type: "text", Label: "Texto do Botão", Default: "Comprar Agora"},
				{ID: "button_link", Type: "url", Label: "Link do Botão", Default: "/category/kits"},
				{ID: "overlay_opacity", Type: "range", Label: "Opacidade do Overlay (%)", Min: 0, Max: 90, Step: 5, Default: 20},
			},
		},
	})
}

func renderHeroBanner(_ RenderContext, inst models.SectionInstance) string {
	settings := inst.Settings

	data := heroBannerData{
		ImageDesktop:   stringSetting(settings, "image_desktop", ""),
		ImageMobile:    stringSetting(settings, "image_mobile", ""),
		Title:          stringSetting(settings, "title", ""),
		Subtitle:       stringSetting(settings, "subtitle", ""),
		TextColor:      stringSetting(settings, "text_color", "#ffffff"),
		TextAlign:      stringSetting(settings, "text_align", "center"),
		ButtonText:     stringSetting(settings, "button_text", ""),
		ButtonLink:     stringSetting(settings, "button_link", "/"),
		OverlayOpacity: float64(intSetting(settings, "overlay_opacity", 20)) / 100,
		HeightDesktop:  stringSetting(settings, "height_desktop", "600px"),
		HeightMobile:   stringSetting(settings, "height_mobile", "400px"),
	}

	var sb strings.Builder
	if err := heroBannerTmpl.Execute(&sb, data); err != nil {
		return ""
	}
	return sb.String()
}
