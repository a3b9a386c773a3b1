package inventory

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
)

// Consultas de solo lectura para la pestaña de reporte y caja. Nunca mutan
// estado ni disparan guardados.

var cashPrinter = message.NewPrinter(language.MustParse("es-MX"))

// Summary métricas principales: caja, stock total, ventas y productos únicos.
//
// Política de eliminación: el journal es historia inmutable. Cash suma solo
// eventos de productos que siguen existiendo; GrossCash es la suma completa.
func (s *Store) Summary() dto.SummaryResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := make(map[string]bool, len(s.products))
	names := make(map[string]bool, len(s.products))
	var totalStock, totalSold int64
	for _, p := range s.products {
		live[p.ID] = true
		names[p.Name] = true
		totalStock += p.TotalQuantity
		totalSold += p.UnitsSold
	}

	cash := s.journal.Sum(func(ev entity.SaleEvent) bool { return live[ev.ProductID] })
	f, _ := cash.Float64()
	return dto.SummaryResponse{
		Cash:             cash,
		CashDisplay:      cashPrinter.Sprintf("$%.2f", f),
		GrossCash:        s.journal.Sum(nil),
		TotalUnitsSold:   totalSold,
		TotalStock:       totalStock,
		DistinctProducts: len(names),
	}
}

// SalesByCategory unidades vendidas por categoría (datos de la gráfica de pay).
func (s *Store) SalesByCategory() []dto.CategoryMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := map[string]int64{}
	for _, p := range s.products {
		acc[p.Category] += p.UnitsSold
	}
	return sortedMetrics(acc)
}

// StockByCategory unidades en existencia por categoría (gráfica de barras).
func (s *Store) StockByCategory() []dto.CategoryMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc := map[string]int64{}
	for _, p := range s.products {
		acc[p.Category] += p.TotalQuantity
	}
	return sortedMetrics(acc)
}

// CashByCategory caja por categoría, derivada del journal. Igual que en
// Summary, excluye eventos de productos ya eliminados.
func (s *Store) CashByCategory() []dto.CategoryCashMetric {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := make(map[string]bool, len(s.products))
	for _, p := range s.products {
		live[p.ID] = true
	}
	acc := map[string]decimal.Decimal{}
	for _, ev := range s.journal.Events() {
		if !live[ev.ProductID] {
			continue
		}
		acc[ev.Category] = acc[ev.Category].Add(ev.Price)
	}
	out := make([]dto.CategoryCashMetric, 0, len(acc))
	for cat, v := range acc {
		out = append(out, dto.CategoryCashMetric{Category: cat, Cash: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

func sortedMetrics(acc map[string]int64) []dto.CategoryMetric {
	out := make([]dto.CategoryMetric, 0, len(acc))
	for cat, v := range acc {
		out = append(out, dto.CategoryMetric{Category: cat, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// ListProducts productos filtrados por subcadena del nombre (el buscador de
// la pestaña de ventas); query vacío devuelve todos, en orden de alta.
func (s *Store) ListProducts(query string) dto.ProductListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	items := make([]dto.ProductResponse, 0, len(s.products))
	for _, p := range s.products {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return dto.ProductListResponse{Items: items, Total: len(items)}
}

// GetProduct un producto por ID, o nil si no existe.
func (s *Store) GetProduct(id string) *dto.ProductResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return toProductResponse(s.find(id))
}

// ListSales el journal completo, en orden de anexado.
func (s *Store) ListSales() dto.SalesListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	evs := s.journal.Events()
	items := make([]dto.SaleEventResponse, 0, len(evs))
	for _, ev := range evs {
		items = append(items, toSaleEventResponse(ev))
	}
	return dto.SalesListResponse{Items: items, Total: len(items)}
}
