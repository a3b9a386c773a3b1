package entity

// Origen de una categoría.
const (
	CategoryOriginBase   = "base"   // incluida con el sistema, inmutable
	CategoryOriginCustom = "custom" // creada por el administrador
)

// Category representa una categoría de prendas (línea de ropa).
type Category struct {
	Name   string
	Origin string // base, custom
}

// BaseCategories líneas de ropa con las que arranca la tienda.
// No se pueden eliminar; las personalizadas viven en el snapshot.
func BaseCategories() []string {
	return []string{"Camisas", "Chamarras", "Pantalones", "Playeras", "Shorts"}
}
