package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
)

// AddCategory da de alta una categoría personalizada. El nombre debe ser
// único contra base ∪ personalizadas (comparación exacta).
func (s *Store) AddCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(name) == "" {
		return domain.ErrValidation
	}
	if s.categoryExists(name) {
		return domain.ErrDuplicate
	}
	s.customCats = append(s.customCats, name)

	s.log.Info().Str("categoria", name).Msg("categoría agregada")
	return s.persist(ctx)
}

// RemoveCategory elimina una categoría personalizada. Las base son
// inmutables y una personalizada con productos asociados no se puede borrar.
func (s *Store) RemoveCategory(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range entity.BaseCategories() {
		if c == name {
			return domain.ErrImmutableCategory
		}
	}
	idx := -1
	for i, c := range s.customCats {
		if c == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrNotFound
	}
	for _, p := range s.products {
		if p.Category == name {
			return domain.ErrCategoryInUse
		}
	}
	s.customCats = append(s.customCats[:idx], s.customCats[idx+1:]...)

	s.log.Info().Str("categoria", name).Msg("categoría eliminada")
	return s.persist(ctx)
}

// ListCategories devuelve base ∪ personalizadas ordenadas por nombre, sin
// duplicados (el alta ya garantiza unicidad).
func (s *Store) ListCategories() dto.CategoryListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]dto.CategoryResponse, 0, len(s.customCats)+5)
	for _, c := range entity.BaseCategories() {
		items = append(items, dto.CategoryResponse{Name: c, Origin: entity.CategoryOriginBase})
	}
	for _, c := range s.customCats {
		items = append(items, dto.CategoryResponse{Name: c, Origin: entity.CategoryOriginCustom})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return dto.CategoryListResponse{Items: items}
}

// SizeOptions tallas sugeridas según la categoría, como el formulario
// original: numéricas para pantalones y shorts, de letra para lo demás.
func SizeOptions(category string) dto.SizeOptionsResponse {
	lower := strings.ToLower(category)
	if strings.Contains(lower, "pantal") || strings.Contains(lower, "short") {
		return dto.SizeOptionsResponse{
			Category: category,
			Sizes:    []string{"28", "30", "32", "34", "36", "38", "40", "42"},
		}
	}
	return dto.SizeOptionsResponse{
		Category: category,
		Sizes:    []string{"XCH", "CH", "M", "G", "XG", "XXG"},
	}
}
