package core

import "strings"

// defaultMinStock seeds the reorder threshold for newly registered products.
const defaultMinStock = 10

// ProductInput is the caller-supplied identity for a new or updated product.
type ProductInput struct {
	Name          string   `json:"name"`
	Size          string   `json:"size"`
	Unit          string   `json:"unit"`
	Status        Protocol `json:"status"`
	UsagePerShift float64  `json:"usagePerShift"`
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return invalidRequestf("product name must not be empty")
	}
	switch in.Status {
	case ProtocolReusable, ProtocolDisposable:
	default:
		return invalidRequestf("unknown protocol %q", string(in.Status))
	}
	if in.UsagePerShift < 0 {
		return invalidRequestf("usage per shift must not be negative, got %g", in.UsagePerShift)
	}
	return nil
}

// ProductSKU derives a short human-facing SKU from a raw generated ID.
func ProductSKU(raw string) string {
	s := strings.ToUpper(strings.ReplaceAll(raw, "-", ""))
	if len(s) > 6 {
		s = s[:6]
	}
	return "SKU-" + s
}

// RegisterProduct creates a product with one zero-quantity stock record per
// tracked location. The generated product ID is returned alongside the new
// State.
func (e *Engine) RegisterProduct(st State, in ProductInput) (State, Product, error) {
	if err := in.validate(); err != nil {
		return st, Product{}, err
	}

	next := st.clone()
	now := e.now()
	productID := ProductSKU(e.newID())
	sortOrder := len(next.Stock)
	for _, loc := range TrackedLocations {
		next.Stock = append(next.Stock, StockRecord{
			ID:            e.newID(),
			ProductID:     productID,
			Name:          in.Name,
			Size:          in.Size,
			Status:        in.Status,
			Location:      loc,
			Quantity:      0,
			Unit:          in.Unit,
			MinStock:      defaultMinStock,
			LastUpdated:   now,
			SortOrder:     sortOrder,
			UsagePerShift: in.UsagePerShift,
		})
	}
	return next, Product{
		ProductID:     productID,
		Name:          in.Name,
		Size:          in.Size,
		Unit:          in.Unit,
		Status:        in.Status,
		UsagePerShift: in.UsagePerShift,
	}, nil
}

// UpdateProduct rewrites the descriptive fields on every stock record of the
// product. Quantities are untouched.
func (e *Engine) UpdateProduct(st State, productID string, in ProductInput) (State, error) {
	if err := in.validate(); err != nil {
		return st, err
	}
	if _, ok := lookupProduct(st.Stock, productID); !ok {
		return st, invalidRequestf("product %s is not registered", productID)
	}

	next := st.clone()
	now := e.now()
	for i := range next.Stock {
		if next.Stock[i].ProductID != productID {
			continue
		}
		rec := &next.Stock[i]
		rec.Name = in.Name
		rec.Size = in.Size
		rec.Unit = in.Unit
		rec.Status = in.Status
		rec.UsagePerShift = in.UsagePerShift
		rec.LastUpdated = now
	}
	return next, nil
}

// DeleteProduct removes every stock record of the product. The ledger keeps
// its history.
func (e *Engine) DeleteProduct(st State, productID string) (State, error) {
	if _, ok := lookupProduct(st.Stock, productID); !ok {
		return st, invalidRequestf("product %s is not registered", productID)
	}

	next := st.clone()
	kept := next.Stock[:0]
	for _, rec := range next.Stock {
		if rec.ProductID != productID {
			kept = append(kept, rec)
		}
	}
	next.Stock = kept
	return next, nil
}

// SetQuantity overwrites the quantity of one stock record directly, outside
// the transfer workflows. Negative values clamp to zero. No ledger entry is
// written; corrections are deliberate and silent.
func (e *Engine) SetQuantity(st State, productID string, loc Location, quantity int) (State, error) {
	if !loc.Tracked() {
		return st, invalidRequestf("unknown location %q", string(loc))
	}
	i := findRecord(st.Stock, productID, loc)
	if i < 0 {
		return st, invalidRequestf("product %s is not registered", productID)
	}
	if quantity < 0 {
		quantity = 0
	}

	next := st.clone()
	next.Stock[i].Quantity = quantity
	next.Stock[i].LastUpdated = e.now()
	return next, nil
}

// SetUsageRate overwrites the per-shift usage rate on every stock record of
// the product. Negative values clamp to zero.
func (e *Engine) SetUsageRate(st State, productID string, usagePerShift float64) (State, error) {
	if _, ok := lookupProduct(st.Stock, productID); !ok {
		return st, invalidRequestf("product %s is not registered", productID)
	}
	if usagePerShift < 0 {
		usagePerShift = 0
	}

	next := st.clone()
	now := e.now()
	for i := range next.Stock {
		if next.Stock[i].ProductID == productID {
			next.Stock[i].UsagePerShift = usagePerShift
			next.Stock[i].LastUpdated = now
		}
	}
	return next, nil
}

// ImportRow is one parsed spreadsheet row ready to merge into the stock
// table.
type ImportRow struct {
	ProductID     string
	Name          string
	Size          string
	Unit          string
	Status        Protocol
	UsagePerShift float64
	Quantity      int
}

// ApplyImport merges rows into st. Rows whose product ID already exists
// overwrite the descriptive fields on every record and the quantity at the
// target location only; unknown product IDs get a fresh five-location record
// set seeded with the imported quantity at target. Imports write no ledger
// entries. Only the three operational locations accept imports.
func (e *Engine) ApplyImport(st State, rows []ImportRow, target Location) (State, error) {
	switch target {
	case LocationCentral, LocationBuildingA, LocationBuildingB:
	default:
		return st, invalidRequestf("cannot import into location %q", string(target))
	}
	for _, row := range rows {
		if strings.TrimSpace(row.ProductID) == "" {
			return st, invalidRequestf("import row for %q has no product ID", row.Name)
		}
		switch row.Status {
		case ProtocolReusable, ProtocolDisposable:
		default:
			return st, invalidRequestf("import row %s has unknown protocol %q", row.ProductID, string(row.Status))
		}
	}

	next := st.clone()
	now := e.now()
	for _, row := range rows {
		qty := row.Quantity
		if qty < 0 {
			qty = 0
		}
		usage := row.UsagePerShift
		if usage < 0 {
			usage = 0
		}

		if _, ok := lookupProduct(next.Stock, row.ProductID); ok {
			for i := range next.Stock {
				if next.Stock[i].ProductID != row.ProductID {
					continue
				}
				rec := &next.Stock[i]
				rec.Name = row.Name
				rec.Size = row.Size
				rec.Unit = row.Unit
				rec.Status = row.Status
				rec.UsagePerShift = usage
				if rec.Location == target {
					rec.Quantity = qty
				}
				rec.LastUpdated = now
			}
			continue
		}

		sortOrder := len(next.Stock)
		for _, loc := range TrackedLocations {
			quantity := 0
			if loc == target {
				quantity = qty
			}
			next.Stock = append(next.Stock, StockRecord{
				ID:            e.newID(),
				ProductID:     row.ProductID,
				Name:          row.Name,
				Size:          row.Size,
				Status:        row.Status,
				Location:      loc,
				Quantity:      quantity,
				Unit:          row.Unit,
				MinStock:      defaultMinStock,
				LastUpdated:   now,
				SortOrder:     sortOrder,
				UsagePerShift: usage,
			})
		}
	}
	return next, nil
}
