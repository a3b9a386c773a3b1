package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
	invdomain "github.com/tu-usuario/inventario-tienda/internal/domain/inventory"
)

// CreateProduct da de alta mercancía nueva. La cantidad inicial completa
// queda en la ubicación inicial (piso por defecto, como en la tienda física).
func (s *Store) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Size) == "" || strings.TrimSpace(in.Color) == "" {
		return nil, domain.ErrValidation
	}
	if !s.categoryExists(in.Category) {
		return nil, domain.ErrValidation
	}
	if in.InitialQuantity <= 0 {
		return nil, domain.ErrValidation
	}
	if !nonNegative(in.SuggestedPrice) {
		return nil, domain.ErrValidation
	}
	salePrice := in.SuggestedPrice
	if in.SalePrice != nil {
		if !nonNegative(*in.SalePrice) {
			return nil, domain.ErrValidation
		}
		salePrice = *in.SalePrice
	}
	loc, err := parseLocation(in.InitialLocation, entity.LocationFloor)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &entity.Product{
		ID:              newProductID(now),
		Category:        in.Category,
		Name:            in.Name,
		Size:            in.Size,
		Color:           in.Color,
		PrimaryLocation: loc,
		SuggestedPrice:  in.SuggestedPrice,
		SalePrice:       salePrice,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.SetQuantityAt(loc, in.InitialQuantity)
	s.products = append(s.products, p)

	s.log.Info().Str("producto", p.ID).Str("categoria", p.Category).
		Int64("cantidad", in.InitialQuantity).Msg("mercancía cargada")
	return toProductResponse(p), s.persist(ctx)
}

// Sell registra la venta de una unidad descontando de la ubicación principal
// del producto. No busca en la otra ubicación: una venta de piso no se surte
// de bodega sin un traslado explícito. Anexa el evento al journal con el
// precio realizado (el indicado, o el precio de venta guardado).
func (s *Store) Sell(ctx context.Context, productID string, realizedPrice *decimal.Decimal) (*dto.SaleEventResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(productID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if realizedPrice != nil && !nonNegative(*realizedPrice) {
		return nil, domain.ErrValidation
	}
	if p.QuantityAt(p.PrimaryLocation) == 0 {
		return nil, domain.ErrOutOfStock
	}

	price := p.SalePrice
	if realizedPrice != nil {
		price = *realizedPrice
	}
	now := time.Now()
	ev := entity.SaleEvent{
		ID:          uuid.NewString(),
		Timestamp:   now,
		ProductID:   p.ID,
		ProductName: p.Name,
		Size:        p.Size,
		Category:    p.Category,
		Location:    p.PrimaryLocation,
		Price:       price,
	}
	if err := s.journal.Append(ev); err != nil {
		return nil, err
	}
	p.SetQuantityAt(p.PrimaryLocation, p.QuantityAt(p.PrimaryLocation)-1)
	p.UnitsSold++
	p.UpdatedAt = now

	s.log.Info().Str("producto", p.ID).Str("precio", price.String()).Msg("venta registrada")
	out := toSaleEventResponse(ev)
	return &out, s.persist(ctx)
}

// MoveStock traslada unidades entre bodega y piso y recalcula la ubicación
// principal (gana la de mayor cantidad; empate conserva la actual).
func (s *Store) MoveStock(ctx context.Context, productID string, in dto.MoveStockRequest) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(productID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	from := entity.Location(in.From)
	to := entity.Location(in.To)
	if !from.Valid() || !to.Valid() || from == to || in.Quantity <= 0 {
		return nil, domain.ErrValidation
	}
	if in.Quantity > p.QuantityAt(from) {
		return nil, domain.ErrInsufficientStock
	}

	p.SetQuantityAt(from, p.QuantityAt(from)-in.Quantity)
	p.SetQuantityAt(to, p.QuantityAt(to)+in.Quantity)
	p.PrimaryLocation = invdomain.RecomputePrimary(p.PrimaryLocation, p.QuantityWarehouse, p.QuantityFloor)
	p.UpdatedAt = time.Now()

	return toProductResponse(p), s.persist(ctx)
}

// EditProduct edita campos del producto. Si cambia el total de entrada, el
// nuevo stock en existencia (entrada - vendido) se reparte proporcional al
// reparto actual bodega/piso; no se permite bajar de lo ya vendido.
func (s *Store) EditProduct(ctx context.Context, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(productID)
	if p == nil {
		return nil, domain.ErrNotFound
	}

	// Validar todo antes de tocar nada (todo-o-nada).
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return nil, domain.ErrValidation
	}
	if in.Size != nil && strings.TrimSpace(*in.Size) == "" {
		return nil, domain.ErrValidation
	}
	if in.Color != nil && strings.TrimSpace(*in.Color) == "" {
		return nil, domain.ErrValidation
	}
	if in.Category != nil && !s.categoryExists(*in.Category) {
		return nil, domain.ErrValidation
	}
	if in.EntryTotal != nil && *in.EntryTotal < p.UnitsSold {
		return nil, domain.ErrValidation
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Size != nil {
		p.Size = *in.Size
	}
	if in.Color != nil {
		p.Color = *in.Color
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.EntryTotal != nil {
		s.applyEntryTotal(p, *in.EntryTotal)
	}
	p.UpdatedAt = time.Now()

	return toProductResponse(p), s.persist(ctx)
}

// AdjustStock variante estrecha de EditProduct que solo toca cantidades.
func (s *Store) AdjustStock(ctx context.Context, productID string, newEntryTotal int64) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(productID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if newEntryTotal < p.UnitsSold {
		return nil, domain.ErrValidation
	}
	s.applyEntryTotal(p, newEntryTotal)
	p.UpdatedAt = time.Now()

	return toProductResponse(p), s.persist(ctx)
}

// applyEntryTotal recalcula el stock en existencia desde un nuevo total de
// entrada, conservando lo vendido, y recalcula la ubicación principal.
// Caller debe tener el lock y haber validado newEntryTotal >= UnitsSold.
func (s *Store) applyEntryTotal(p *entity.Product, newEntryTotal int64) {
	newOnHand := newEntryTotal - p.UnitsSold
	w, f := invdomain.Redistribute(p.QuantityWarehouse, p.QuantityFloor, newOnHand, p.PrimaryLocation)
	p.QuantityWarehouse = w
	p.QuantityFloor = f
	p.TotalQuantity = w + f
	p.PrimaryLocation = invdomain.RecomputePrimary(p.PrimaryLocation, w, f)
}

// DeleteProduct elimina el producto (estado terminal, irreversible). El
// journal no se toca: la historia de ventas es inmutable; el reporte de caja
// filtra los eventos de productos eliminados al momento de consultar.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.products {
		if p.ID == productID {
			s.products = append(s.products[:i], s.products[i+1:]...)
			s.log.Info().Str("producto", productID).Msg("producto eliminado")
			return s.persist(ctx)
		}
	}
	return domain.ErrNotFound
}

// Cuál de los dos precios actualizar.
const (
	PriceSuggested = "sugerido"
	PriceSale      = "venta"
)

// UpdatePrice cambia el precio sugerido o el de venta; nunca ambos a la vez.
func (s *Store) UpdatePrice(ctx context.Context, productID string, in dto.UpdatePriceRequest) (*dto.ProductResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.find(productID)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if !nonNegative(in.Price) {
		return nil, domain.ErrValidation
	}
	switch in.Which {
	case PriceSuggested:
		p.SuggestedPrice = in.Price
	case PriceSale:
		p.SalePrice = in.Price
	default:
		return nil, domain.ErrValidation
	}
	p.UpdatedAt = time.Now()

	return toProductResponse(p), s.persist(ctx)
}

// ResetAll pone la tienda en cero: borra ventas y caja, vacía el journal y
// regresa el total de entrada completo de cada producto a su ubicación
// principal (el mismo reparto que un alta recién creada).
func (s *Store) ResetAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for _, p := range s.products {
		total := p.EntryTotal()
		p.UnitsSold = 0
		p.QuantityWarehouse = 0
		p.QuantityFloor = 0
		p.SetQuantityAt(p.PrimaryLocation, total)
		p.UpdatedAt = now
	}
	s.journal.Clear()

	s.log.Info().Int("productos", len(s.products)).Msg("reset general de ventas y caja")
	return s.persist(ctx)
}
