package sections

import (
	"fmt"
	"html/template"
	"strings"

	"storefront-backend/internal/models"
)

var productGridTmpl = template.Must(template.New("product_grid").Parse(`<section class="product-grid" style="--grid-cols:{{.ColumnsDesktop}};--grid-cols-mobile:{{.ColumnsMobile}}">
{{- if .Title}}
  <div class="product-grid__header">
    <h2 class="product-grid__title">{{.Title}}</h2>
{{- if .ShowViewAll}}
    <a class="product-grid__view-all" href="{{.ViewAllLink}}">Ver tudo</a>
{{- end}}
  </div>
{{- end}}
  <div class="product-grid__items">
{{- range .Products}}
    <article class="product-card">
      <a href="/product/{{.Handle}}">
{{- if .Image}}
        <img class="product-card__image" src="{{.Image}}" alt="{{.Title}}" loading="lazy">
{{- end}}
        <h3 class="product-card__title">{{.Title}}</h3>
{{- if .OldPrice}}
        <s class="product-card__old-price">{{.OldPrice}}</s>
{{- end}}
        <span class="product-card__price">{{.Price}}</span>
{{- if .Installments}}
        <span class="product-card__installments">{{.Installments}}</span>
{{- end}}
      </a>
    </article>
{{- end}}
  </div>
</section>`))

type productCardData struct {
	Handle       string
	Title        string
	Image        string
	Price        string
	OldPrice     string
	Installments string
}

type productGridData struct {
	Title          string
	ShowViewAll    bool
	ViewAllLink    string
	ColumnsDesktop int
	ColumnsMobile  int
	Products       []productCardData
}

// RegisterProductGrid registers the catalog grid section. It is the only
// data-driven section: products are pulled through the render context at
// render time.
func RegisterProductGrid(reg *Registry) {
	if reg == nil {
		return
	}

	reg.MustRegister("product_grid", &Descriptor{
		Renderer: renderProductGrid,
		Schema: Schema{
			Name: "Grid de Produtos",
			Settings: []SettingSpec{
				{ID: "title", Type: "text", Label: "Título da Seção", Default: "Destaques"},
				{ID: "category_filter", Type: "select", Label: "Categoria", Default: "all", Options: []Option{
					{Value: "all", Label: "Todas"},
					{Value: "kits", Label: "Kits"},
					{Value: "conjuntos", Label: "Conjuntos"},
					{Value: "vestidos", Label: "Vestidos"},
				}},
				{ID: "limit", Type: "range", Label: "Quantidade de Produtos", Min: 2, Max: 12, Step: 1, Default: 8},
				{ID: "columns_desktop", Type: "select", Label: "Colunas Desktop", Default: "4", Options: []Option{
					{Value: "3", Label: "3 Colunas"},
					{Value: "4", Label: "4 Colunas"},
				}},
				{ID: "columns_mobile", Type: "select", Label: "Colunas Mobile", Default: "2", Options: []Option{
					{Value: "1", Label: "1 Coluna"},
					{Value: "2", Label: "2 Colunas"},
				}},
				{ID: "show_view_all", Type: "checkbox", Label: "Mostrar link Ver Tudo", Default: true},
			},
		},
	})
}

func renderProductGrid(ctx RenderContext, inst models.SectionInstance) string {
	settings := inst.Settings

	category := stringSetting(settings, "category_filter", "all")
	limit := intSetting(settings, "limit", 8)

	var products []models.Product
	if ctx != nil {
		products = ctx.Products(category, limit)
	}

	data := productGridData{
		Title:          stringSetting(settings, "title", ""),
		ShowViewAll:    boolSetting(settings, "show_view_all", true),
		ViewAllLink:    "/category/" + category,
		ColumnsDesktop: intSetting(settings, "columns_desktop", 4),
		ColumnsMobile:  intSetting(settings, "columns_mobile", 2),
	}
	if category == "" || category == "all" {
		data.ViewAllLink = "/"
	}

	for _, p := range products {
		card := productCardData{
			Handle:       p.Handle,
			Title:        p.Title,
			Price:        formatPrice(p.Price),
			Installments: p.Installments,
		}
		if len(p.Images) > 0 {
			card.Image = p.Images[0]
		}
		if p.OldPrice > p.Price {
			card.OldPrice = formatPrice(p.OldPrice)
		}
		data.Products = append(data.Products, card)
	}

	var sb strings.Builder
	if err := productGridTmpl.Execute(&sb, data); err != nil {
		return ""
	}
	return sb.String()
}

// formatPrice renders a BRL price the way the storefront displays it.
func formatPrice(v float64) string {
	return strings.Replace(fmt.Sprintf("R$ %.2f", v), ".", ",", 1)
}
