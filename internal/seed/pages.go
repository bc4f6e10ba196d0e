package seed

import "storefront-backend/internal/models"

// Pages returns the default informational pages served under /pages/<type>.
func Pages() []models.Page {
	return []models.Page{
		{Type: "trust", Title: "Compra Segura", Published: true},
		{Type: "about", Title: "Sobre Nós", Published: true},
		{Type: "exchanges", Title: "Trocas e Devoluções", Published: true},
		{Type: "tracking", Title: "Rastrear Pedido", Published: true},
		{Type: "privacy", Title: "Política de Privacidade", Published: true},
		{Type: "shipping", Title: "Política de Envio", Published: true},
		{Type: "refund", Title: "Política de Reembolso", Published: true},
		{Type: "legal", Title: "Informações Legais", Published: true},
		{Type: "terms", Title: "Termos de Serviço", Published: true},
		{Type: "contact", Title: "Fale Conosco", Published: true},
	}
}
