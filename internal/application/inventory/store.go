// Package inventory implementa la sesión de la tienda: el libro mayor de
// productos, el catálogo de categorías y el journal de ventas, con guardado
// write-through tras cada mutación.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/domain"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
	"github.com/tu-usuario/inventario-tienda/internal/domain/journal"
	"github.com/tu-usuario/inventario-tienda/internal/domain/repository"
	"github.com/tu-usuario/inventario-tienda/pkg/logger"
)

// Store sesión única de la tienda. Es el dueño exclusivo de la colección de
// productos y del catálogo; el journal vive en la misma sesión y solo admite
// anexar. Un mutex serializa las mutaciones (una sesión lógica a la vez; no
// hay arbitraje multi-escritor).
//
// Toda operación mutadora es todo-o-nada: se valida completo antes de tocar
// el estado. El guardado ocurre tras cada mutación; si falla, el estado en
// memoria queda aplicado y el error envuelve domain.ErrPersistence para que
// el caller pueda reintentar con Flush.
type Store struct {
	mu sync.Mutex

	products   []*entity.Product
	journal    *journal.Journal
	customCats []string

	repo     repository.SnapshotRepository
	storeRef string
	log      *logger.Logger
}

// Open carga (y migra si hace falta) el estado de la tienda desde el puerto
// de persistencia. Una tienda sin estado previo arranca vacía.
func Open(ctx context.Context, repo repository.SnapshotRepository, storeRef string, log *logger.Logger) (*Store, error) {
	snap, err := repo.Load(ctx, storeRef)
	if err != nil {
		return nil, fmt.Errorf("cargar tienda %q: %w", storeRef, err)
	}
	s := &Store{
		products:   snap.Products,
		journal:    journal.New(snap.SalesJournal),
		customCats: append([]string{}, snap.CustomCategories...),
		repo:       repo,
		storeRef:   storeRef,
		log:        log,
	}
	log.Info().
		Str("store", storeRef).
		Int("productos", len(s.products)).
		Int("eventos", s.journal.Len()).
		Msg("tienda cargada")
	return s, nil
}

// Flush vuelve a guardar el estado actual (reintento tras un fallo de
// persistencia, o flush final al apagar).
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx)
}

// persist guarda el snapshot completo. Caller debe tener el lock.
// La caja escrita en el snapshot es derivada del journal; al cargar se
// recalcula igual, nunca se usa como segunda fuente de verdad.
func (s *Store) persist(ctx context.Context) error {
	snap := &entity.Snapshot{
		Products:         s.products,
		SalesJournal:     s.journal.Events(),
		CustomCategories: append([]string{}, s.customCats...),
		Cash:             s.journal.Sum(nil),
		LastUpdated:      time.Now(),
	}
	if err := s.repo.Save(ctx, s.storeRef, snap); err != nil {
		s.log.Warn().Err(err).Str("store", s.storeRef).
			Msg("guardado fallido; el estado en memoria sigue vigente")
		return fmt.Errorf("%w: %v", domain.ErrPersistence, err)
	}
	return nil
}

// find busca un producto por ID. Caller debe tener el lock.
func (s *Store) find(id string) *entity.Product {
	for _, p := range s.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// newProductID genera un ID opaco con sello de tiempo, como los de la hoja
// original, más un fragmento de UUID para que dos altas en el mismo segundo
// no choquen.
func newProductID(now time.Time) string {
	return fmt.Sprintf("PROD_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:4])
}

// categoryExists reporta si el nombre está en base ∪ personalizadas
// (comparación exacta, sensible a mayúsculas). Caller debe tener el lock.
func (s *Store) categoryExists(name string) bool {
	for _, c := range entity.BaseCategories() {
		if c == name {
			return true
		}
	}
	for _, c := range s.customCats {
		if c == name {
			return true
		}
	}
	return false
}

func parseLocation(raw string, def entity.Location) (entity.Location, error) {
	if strings.TrimSpace(raw) == "" {
		return def, nil
	}
	loc := entity.Location(raw)
	if !loc.Valid() {
		return "", domain.ErrValidation
	}
	return loc, nil
}

func nonNegative(d decimal.Decimal) bool { return !d.IsNegative() }

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Category:          p.Category,
		Name:              p.Name,
		Size:              p.Size,
		Color:             p.Color,
		PrimaryLocation:   string(p.PrimaryLocation),
		QuantityWarehouse: p.QuantityWarehouse,
		QuantityFloor:     p.QuantityFloor,
		TotalQuantity:     p.TotalQuantity,
		EntryTotal:        p.EntryTotal(),
		UnitsSold:         p.UnitsSold,
		SuggestedPrice:    p.SuggestedPrice,
		SalePrice:         p.SalePrice,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func toSaleEventResponse(ev entity.SaleEvent) dto.SaleEventResponse {
	return dto.SaleEventResponse{
		ID:          ev.ID,
		Timestamp:   ev.Timestamp,
		ProductID:   ev.ProductID,
		ProductName: ev.ProductName,
		Size:        ev.Size,
		Category:    ev.Category,
		Location:    string(ev.Location),
		Price:       ev.Price,
	}
}
