package seed

import "storefront-backend/internal/models"

// Products is the compiled-in catalog fallback. The storefront prefers
// database rows, but a failed read degrades to this list instead of a
// blank page. Category association is by slug; the seeder resolves ids.
func Products() []models.Product {
	return []models.Product{
		{
			Handle:       "kit-3-camisas-ibiza-em-linho-de-algodao",
			ExternalID:   "e3284dde-2a39-490b-9b41-28305d2e0a77",
			Title:        "Kit 3 Camisas Ibiza em Linho de Algodão",
			Description:  "O Kit 3 Camisas Ibiza em Linho de Algodão é ideal para quem busca leveza, conforto e elegância no dia a dia.",
			Price:        109.90,
			OldPrice:     297.00,
			Installments: "12x de R$ 10,96",
			Images: models.StringList{
				"https://cdn.shopify.com/s/files/1/0809/1274/4673/files/Gemini_Generated_Image_3si0m13si0m13si0.png?v=1770007798",
				"https://cdn.shopify.com/s/files/1/0809/1274/4673/files/Gemini_Generated_Image_6uri3j6uri3j6uri.png?v=1770007797",
				"https://cdn.shopify.com/s/files/1/0809/1274/4673/files/Gemini_Generated_Image_asp7k2asp7k2asp7.png?v=1770007797",
			},
			Sizes:       models.StringList{"PP", "P", "M", "G", "GG", "3G", "4G", "5G"},
			IsKit:       true,
			CheckoutURL: "https://compra.lojadasdivas.com.br/pay/b6ba4039-5b33-4ba4-aaea-8a3e8d10098a",
			Stock:       120,
			Active:      true,
			Category:    models.Category{Slug: "kits"},
		},
		{
			Handle:       "conjunto-regata-e-saia-longa-babados-marrom",
			Title:        "Conjunto Regata e Saia Longa Babados Marrom",
			Description:  "A Saia Longa Babados é a escolha perfeita para quem busca elegância e conforto nos dias quentes.",
			Price:        99.90,
			OldPrice:     142.71,
			Installments: "3x sem juros",
			Images: models.StringList{
				"https://cdn.shopify.com/s/files/1/0805/6055/4224/files/marrom1_18731aac-7308-47ff-8098-6868edcc6d56.jpg?v=1769027431",
				"https://cdn.shopify.com/s/files/1/0805/6055/4224/files/marrom2_68664ec8-5c57-4c88-8a5d-4a7691332c11.jpg?v=1769027431",
			},
			Sizes: models.StringList{"PPP", "PP", "P", "M", "GG"},
			VariantURLs: models.StringMap{
				"PPP": "https://compra.lojadasdivas.com.br/pay/5c3b8ead-c039-451f-99bd-29e424708dc1",
				"PP":  "https://compra.lojadasdivas.com.br/pay/90956b83-0c3b-4e30-a015-1ceff0906ed8",
				"P":   "https://compra.lojadasdivas.com.br/pay/a0bff8b6-7004-4373-b649-9d5afef4c891",
				"M":   "https://compra.lojadasdivas.com.br/pay/31144fa0-631b-4106-9c98-b41987767be1",
				"GG":  "https://compra.lojadasdivas.com.br/pay/64f05064-9f8a-4397-89d9-9ad111413d08",
			},
			Stock:    45,
			Active:   true,
			Category: models.Category{Slug: "conjuntos"},
		},
		{
			Handle:       "conjunto-regata-e-saia-longa-babados-lima",
			Title:        "Conjunto Regata e Saia Longa Babados Lima",
			Description:  "Confeccionada em um tecido leve e respirável, esta saia proporciona frescor e liberdade de movimentos.",
			Price:        99.90,
			OldPrice:     142.71,
			Installments: "3x sem juros",
			Images: models.StringList{
				"https://cdn.shopify.com/s/files/1/0805/6055/4224/files/2_c8e9ecc9-ce1c-421f-b040-2457818ea6af.jpg?v=1769027348",
				"https://cdn.shopify.com/s/files/1/0805/6055/4224/files/lima1.jpg?v=1769027348",
			},
			Sizes: models.StringList{"PPP", "PP", "P", "M", "G", "GG"},
			VariantURLs: models.StringMap{
				"PPP": "https://compra.lojadasdivas.com.br/pay/bf608024-f079-4441-a0ac-03b5c6aec618",
				"PP":  "https://compra.lojadasdivas.com.br/pay/b5b2bad0-5dec-4a73-9ceb-c6d7331daf59",
				"P":   "https://compra.lojadasdivas.com.br/pay/bad6bce5-ac7e-452a-ae6f-5cd174a9cb90",
				"M":   "https://compra.lojadasdivas.com.br/pay/8f711a44-ca11-433a-bad7-9a905b48354e",
				"G":   "https://compra.lojadasdivas.com.br/pay/ebc3617d-f437-4a11-b79f-452c71d31d60",
				"GG":  "https://compra.lojadasdivas.com.br/pay/f9ae17e3-5ea2-4f11-aca9-dca3ee626c24",
			},
			Stock:    38,
			Active:   true,
			Category: models.Category{Slug: "conjuntos"},
		},
		{
			Handle:       "vestido-longo-alca-fina-vermelho",
			Title:        "Vestido Longo Alça Fina Vermelho",
			Description:  "Vestido longo de alça fina em tecido fluido, perfeito para ocasiões especiais e dias quentes.",
			Price:        89.90,
			OldPrice:     129.90,
			Installments: "3x sem juros",
			Images: models.StringList{
				"https://cdn.shopify.com/s/files/1/0805/6055/4224/files/vermelho1_5e09aea8-c814-4ad3-b0ab-3d727043a6d8.jpg?v=1769025311",
			},
			Sizes:    models.StringList{"PP", "P", "M", "G"},
			Stock:    22,
			Active:   true,
			Category: models.Category{Slug: "vestidos"},
		},
	}
}

// KitColorIDs are the selectable shirt colors for kit products.
func KitColorIDs() []string {
	return []string{
		"rosa-malva",
		"preto-ebano",
		"vermelho-terracota",
		"roxo-ametista",
		"amarelo-mostarda",
		"branco-neve",
		"azul-sereno",
		"bege-fendi",
	}
}
