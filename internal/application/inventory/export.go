package inventory

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

// csvHeader columnas fijas del export tabular. Valores numéricos crudos, sin
// formato de moneda: el formato es asunto de la pantalla, no del archivo.
var csvHeader = []string{
	"categoria", "producto", "talla", "color", "ubicacion",
	"stock_bodega", "stock_piso", "stock_total", "ventas",
	"precio_sugerido", "precio_venta",
}

// ExportCSV serializa el inventario completo con fila de encabezado.
func (s *Store) ExportCSV() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("exportar CSV: %w", err)
	}
	for _, p := range s.products {
		row := []string{
			p.Category, p.Name, p.Size, p.Color, string(p.PrimaryLocation),
			strconv.FormatInt(p.QuantityWarehouse, 10),
			strconv.FormatInt(p.QuantityFloor, 10),
			strconv.FormatInt(p.TotalQuantity, 10),
			strconv.FormatInt(p.UnitsSold, 10),
			p.SuggestedPrice.String(),
			p.SalePrice.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("exportar CSV: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("exportar CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportFilename nombre con sello de tiempo, como la descarga original.
func ExportFilename(ext string) string {
	return fmt.Sprintf("inventario_%s.%s", time.Now().Format("20060102_150405"), ext)
}
