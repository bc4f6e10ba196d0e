package seed

import "storefront-backend/internal/models"

// Categories is the compiled-in category list. It seeds the database on
// first boot and doubles as the read fallback when the database is
// unavailable, so navigation never resolves against an empty list.
func Categories() []models.Category {
	return []models.Category{
		{
			Slug:  "kits",
			Name:  "Kits Promocionais",
			Image: "https://cdn.shopify.com/s/files/1/0809/1274/4673/files/heronew.png?v=1770054480",
			Order: 1,
		},
		{
			Slug:  "conjuntos",
			Name:  "Conjuntos",
			Image: "https://cdn.shopify.com/s/files/1/0805/6055/4224/files/marrom1_18731aac-7308-47ff-8098-6868edcc6d56.jpg?v=1769027431",
			Order: 2,
		},
		{
			Slug:  "vestidos",
			Name:  "Vestidos",
			Image: "https://cdn.shopify.com/s/files/1/0805/6055/4224/files/vermelho1_5e09aea8-c814-4ad3-b0ab-3d727043a6d8.jpg?v=1769025311",
			Order: 3,
		},
	}
}
