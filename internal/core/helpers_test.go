package core_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

// newTestEngine returns an engine with a frozen clock and sequential IDs so
// test runs are reproducible.
func newTestEngine(t *testing.T) *core.Engine {
	t.Helper()
	seq := 0
	return core.NewEngine(
		func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) },
		func() string {
			seq++
			return fmt.Sprintf("id-%04d", seq)
		},
	)
}

// seedProduct appends a full five-location record set for one product, with
// the given quantities keyed by location. Locations absent from quantities
// start at zero.
func seedProduct(t *testing.T, st core.State, productID, name string, usage float64, quantities map[core.Location]int) core.State {
	t.Helper()
	sortOrder := len(st.Stock)
	for _, loc := range core.TrackedLocations {
		st.Stock = append(st.Stock, core.StockRecord{
			ID:            productID + "/" + string(loc),
			ProductID:     productID,
			Name:          name,
			Size:          "M",
			Status:        core.ProtocolReusable,
			Location:      loc,
			Quantity:      quantities[loc],
			Unit:          "pcs",
			MinStock:      10,
			SortOrder:     sortOrder,
			UsagePerShift: usage,
		})
	}
	return st
}
