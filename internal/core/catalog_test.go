package core_test

import (
	"testing"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

func TestDeriveCatalog_CollapsesLocations(t *testing.T) {
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, nil)
	st = seedProduct(t, st, "SKU-BBB222", "Apron", 1, nil)

	catalog := core.DeriveCatalog(st.Stock)
	if len(catalog) != 2 {
		t.Fatalf("expected 2 products from 10 records, got %d", len(catalog))
	}
}

func TestDeriveCatalog_SortsCaseInsensitively(t *testing.T) {
	st := seedProduct(t, core.State{}, "SKU-CCC333", "zebra wipes", 0, nil)
	st = seedProduct(t, st, "SKU-AAA111", "Apron", 0, nil)
	st = seedProduct(t, st, "SKU-BBB222", "BOOT covers", 0, nil)

	catalog := core.DeriveCatalog(st.Stock)
	want := []string{"Apron", "BOOT covers", "zebra wipes"}
	for i, name := range want {
		if catalog[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, catalog[i].Name)
		}
	}
}

func TestDeriveCatalog_FirstRecordWins(t *testing.T) {
	stock := []core.StockRecord{
		{ProductID: "SKU-AAA111", Name: "Coverall", Size: "L", Unit: "pcs", Status: core.ProtocolReusable, Location: core.LocationCentral},
		{ProductID: "SKU-AAA111", Name: "Coverall (stale)", Size: "M", Unit: "box", Status: core.ProtocolDisposable, Location: core.LocationRepair},
	}

	catalog := core.DeriveCatalog(stock)
	if len(catalog) != 1 {
		t.Fatalf("expected 1 product, got %d", len(catalog))
	}
	p := catalog[0]
	if p.Name != "Coverall" || p.Size != "L" || p.Unit != "pcs" || p.Status != core.ProtocolReusable {
		t.Errorf("later record overrode the first: %+v", p)
	}
}

func TestDeriveCatalog_Empty(t *testing.T) {
	if got := core.DeriveCatalog(nil); len(got) != 0 {
		t.Errorf("expected empty catalog, got %d products", len(got))
	}
}
