package core

import (
	"sort"
	"strings"
)

// DeriveCatalog collapses per-location stock records into one master Product
// per product ID. The first record encountered for a product supplies the
// descriptive fields. The result is sorted ascending by name, size, unit and
// protocol, case-insensitively. Empty input yields an empty catalog.
func DeriveCatalog(stock []StockRecord) []Product {
	seen := make(map[string]bool, len(stock))
	var products []Product
	for _, rec := range stock {
		if seen[rec.ProductID] {
			continue
		}
		seen[rec.ProductID] = true
		products = append(products, Product{
			ProductID:     rec.ProductID,
			Name:          rec.Name,
			Size:          rec.Size,
			Unit:          rec.Unit,
			Status:        rec.Status,
			UsagePerShift: rec.UsagePerShift,
		})
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c < 0
		}
		if c := strings.Compare(strings.ToLower(a.Size), strings.ToLower(b.Size)); c != 0 {
			return c < 0
		}
		if c := strings.Compare(strings.ToLower(a.Unit), strings.ToLower(b.Unit)); c != 0 {
			return c < 0
		}
		return a.Status < b.Status
	})
	return products
}
