// Package importer reads and writes stock workbooks in XLSX form. The reader
// is tolerant of the header spellings found in the field spreadsheets,
// including the Indonesian column names the older sheets still carry.
package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

// column identifies a logical import column.
type column int

const (
	colSKU column = iota
	colName
	colSize
	colUnit
	colStatus
	colUsage
	colQuantity
)

// headerAliases maps normalized header cells to logical columns.
var headerAliases = map[string]column{
	"sku":  colSKU,
	"kode": colSKU,
	"id":   colSKU,

	"nama barang": colName,
	"nama":        colName,
	"name":        colName,
	"item":        colName,

	"size":   colSize,
	"ukuran": colSize,

	"satuan": colUnit,
	"unit":   colUnit,
	"uom":    colUnit,

	"status":   colStatus,
	"protokol": colStatus,
	"protocol": colStatus,

	"pakai_sh":        colUsage,
	"usage":           colUsage,
	"usage per shift": colUsage,

	"qty":      colQuantity,
	"jumlah":   colQuantity,
	"stok":     colQuantity,
	"quantity": colQuantity,
}

func normalizeHeader(cell string) string {
	return strings.ToLower(strings.TrimSpace(cell))
}

// parseProtocol maps the status spellings seen in the sheets. Anything not
// recognized as reusable counts as disposable, matching how the sheets are
// filled in practice.
func parseProtocol(cell string) core.Protocol {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "berulang", "reusable":
		return core.ProtocolReusable
	}
	return core.ProtocolDisposable
}

func parseFloat(cell string) float64 {
	cell = strings.TrimSpace(strings.ReplaceAll(cell, ",", "."))
	if cell == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseInt(cell string) int {
	v := parseFloat(cell)
	return int(v)
}

// ParseWorkbook reads the first sheet of an XLSX workbook into import rows.
// The first row must be a header naming at least the product name column.
// Rows without a name are skipped; rows without a SKU come back with an
// empty ProductID for the caller to assign one.
func ParseWorkbook(r io.Reader) ([]core.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	columns := make(map[column]int)
	for i, cell := range rows[0] {
		if col, ok := headerAliases[normalizeHeader(cell)]; ok {
			if _, taken := columns[col]; !taken {
				columns[col] = i
			}
		}
	}
	if _, ok := columns[colName]; !ok {
		return nil, fmt.Errorf("sheet %q has no product name column", sheets[0])
	}

	cell := func(row []string, col column) string {
		i, ok := columns[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var out []core.ImportRow
	for _, row := range rows[1:] {
		name := cell(row, colName)
		if name == "" {
			continue
		}
		out = append(out, core.ImportRow{
			ProductID:     cell(row, colSKU),
			Name:          name,
			Size:          cell(row, colSize),
			Unit:          cell(row, colUnit),
			Status:        parseProtocol(cell(row, colStatus)),
			UsagePerShift: parseFloat(cell(row, colUsage)),
			Quantity:      parseInt(cell(row, colQuantity)),
		})
	}
	return out, nil
}

// exportHeader uses spellings ParseWorkbook recognizes, so an exported
// workbook can be re-imported unchanged.
var exportHeader = []string{"SKU", "Name", "Size", "Unit", "Status", "Location", "Quantity", "Usage"}

// WriteWorkbook writes the stock table to w as an XLSX workbook, one row per
// stock record.
func WriteWorkbook(w io.Writer, stock []core.StockRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to name header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, rec := range stock {
		values := []any{
			rec.ProductID, rec.Name, rec.Size, rec.Unit,
			string(rec.Status), string(rec.Location), rec.Quantity, rec.UsagePerShift,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return fmt.Errorf("failed to name cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i+1, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
