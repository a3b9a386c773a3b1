package inventory_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventario-tienda/internal/application/inventory"
)

func TestExportCSV_EncabezadoYValoresCrudos(t *testing.T) {
	s, _ := abrirTienda(t)
	cargarProducto(t, s, "Camisa Oxford", "Camisas", 5, 350.50, "bodega")

	data, err := s.ExportCSV()
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "encabezado + un producto")

	assert.Equal(t, []string{
		"categoria", "producto", "talla", "color", "ubicacion",
		"stock_bodega", "stock_piso", "stock_total", "ventas",
		"precio_sugerido", "precio_venta",
	}, rows[0])

	fila := rows[1]
	assert.Equal(t, "Camisas", fila[0])
	assert.Equal(t, "Camisa Oxford", fila[1])
	assert.Equal(t, "bodega", fila[4])
	assert.Equal(t, "5", fila[5])
	assert.Equal(t, "0", fila[6])
	assert.Equal(t, "5", fila[7])
	assert.Equal(t, "0", fila[8])
	assert.Equal(t, "350.5", fila[9], "numérico crudo, sin formato de moneda")
}

func TestExportCSV_TiendaVacia(t *testing.T) {
	s, _ := abrirTienda(t)

	data, err := s.ExportCSV()
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "solo el encabezado")
}

func TestExportFilename_ConSelloDeTiempo(t *testing.T) {
	name := inventory.ExportFilename("csv")
	assert.True(t, strings.HasPrefix(name, "inventario_"))
	assert.True(t, strings.HasSuffix(name, ".csv"))
}
