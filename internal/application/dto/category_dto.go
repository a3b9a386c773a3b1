package dto

// AddCategoryRequest alta de una categoría personalizada.
type AddCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse una categoría con su origen.
type CategoryResponse struct {
	Name   string `json:"name"`
	Origin string `json:"origin"` // base | custom
}

// CategoryListResponse listado ordenado de categorías.
type CategoryListResponse struct {
	Items []CategoryResponse `json:"items"`
}

// SizeOptionsResponse tallas sugeridas para una categoría (solo orientativo;
// la talla sigue siendo texto libre).
type SizeOptionsResponse struct {
	Category string   `json:"category"`
	Sizes    []string `json:"sizes"`
}
