package response

import (
	"portal_expositor/internal/domain/entities"
	"portal_expositor/pkg/format"
)

type ProductResponse struct {
	entities.MenuProduct
	PriceLabel string `json:"priceLabel"`
}

type CategoryResponse struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Order    int               `json:"order"`
	Products []ProductResponse `json:"products"`
}

// StallResponse is a stall plus the labels the list and detail screens print.
type StallResponse struct {
	entities.Stall
	StallSizeLabel string             `json:"stallSizeLabel"`
	Categories     []CategoryResponse `json:"categories"`
	ProductsCount  int                `json:"productsCount"`
}

func FromStall(s entities.Stall) StallResponse {
	res := StallResponse{Stall: s, StallSizeLabel: s.StallSize.Label(), Categories: make([]CategoryResponse, 0, len(s.Categories))}
	for _, c := range s.Categories {
		cat := CategoryResponse{ID: c.ID, Name: c.Name, Order: c.Order, Products: make([]ProductResponse, 0, len(c.Products))}
		for _, p := range c.Products {
			cat.Products = append(cat.Products, ProductResponse{MenuProduct: p, PriceLabel: format.CentsToBrl(p.PriceCents)})
		}
		res.ProductsCount += len(c.Products)
		res.Categories = append(res.Categories, cat)
	}
	return res
}

type StallPageResponse struct {
	Items []StallResponse   `json:"items"`
	Meta  entities.PageMeta `json:"meta"`
}

func FromStallPage(p entities.StallPage) StallPageResponse {
	res := StallPageResponse{Items: make([]StallResponse, 0, len(p.Items)), Meta: p.Meta}
	for _, s := range p.Items {
		res.Items = append(res.Items, FromStall(s))
	}
	return res
}
