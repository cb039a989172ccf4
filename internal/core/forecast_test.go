package core_test

import (
	"errors"
	"testing"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

func TestHorizon_Days(t *testing.T) {
	tests := []struct {
		horizon core.Horizon
		days    int
	}{
		{core.HorizonOneDay, 1},
		{core.HorizonOneWeek, 7},
		{core.HorizonTwoWeeks, 14},
		{core.HorizonThreeWeeks, 21},
		{core.HorizonOneMonth, 30},
	}
	for _, tt := range tests {
		got, err := tt.horizon.Days()
		if err != nil {
			t.Errorf("Days(%s) failed: %v", tt.horizon, err)
		}
		if got != tt.days {
			t.Errorf("Days(%s) = %d, want %d", tt.horizon, got, tt.days)
		}
	}

	if _, err := core.Horizon("fortnight").Days(); err == nil {
		t.Error("unknown horizon should fail")
	}
	var invalid *core.InvalidRequestError
	_, err := core.Horizon("").Days()
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidRequestError, got %v", err)
	}
}

// One week of combined demand for 15 units held across the buildings:
// daily usage 15 * 1.3 * 3 = 58.5, total need round(58.5*7) = 410,
// minimum stock round(58.5) = 59.
func TestComputeForecast_SupplyStatusLadder(t *testing.T) {
	tests := []struct {
		name       string
		centralQty int
		want       core.SupplyStatus
	}{
		{"empty central", 0, core.SupplyEmpty},
		{"at minimum stock", 59, core.SupplyMustOrder},
		{"below total need", 200, core.SupplyShort},
		{"covered", 500, core.SupplyOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
				core.LocationCentral:   tt.centralQty,
				core.LocationBuildingA: 10,
				core.LocationBuildingB: 5,
			})
			catalog := core.DeriveCatalog(st.Stock)

			rows, err := core.ComputeForecast(catalog, st.Stock, core.ScopeCombined, 7)
			if err != nil {
				t.Fatalf("ComputeForecast failed: %v", err)
			}
			if len(rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(rows))
			}
			row := rows[0]

			if row.StockAtLocation != 15 {
				t.Errorf("expected stockAtLocation=15, got %d", row.StockAtLocation)
			}
			if row.DailyUsage.String() != "58.5" {
				t.Errorf("expected dailyUsage=58.5, got %s", row.DailyUsage)
			}
			if row.TotalNeed != 410 {
				t.Errorf("expected totalNeed=410, got %d", row.TotalNeed)
			}
			if row.MinStock != 59 {
				t.Errorf("expected minStock=59, got %d", row.MinStock)
			}
			if row.SupplyStatus != tt.want {
				t.Errorf("expected status %q, got %q", tt.want, row.SupplyStatus)
			}
		})
	}
}

func TestComputeForecast_ScopeSelectsBuilding(t *testing.T) {
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral:   100,
		core.LocationBuildingA: 10,
		core.LocationBuildingB: 4,
	})
	catalog := core.DeriveCatalog(st.Stock)

	tests := []struct {
		scope core.ForecastScope
		want  int
	}{
		{core.ScopeCombined, 14},
		{core.ScopeBuildingA, 10},
		{core.ScopeBuildingB, 4},
	}
	for _, tt := range tests {
		rows, err := core.ComputeForecast(catalog, st.Stock, tt.scope, 1)
		if err != nil {
			t.Fatalf("ComputeForecast(%s) failed: %v", tt.scope, err)
		}
		if rows[0].StockAtLocation != tt.want {
			t.Errorf("scope %s: expected stockAtLocation=%d, got %d", tt.scope, tt.want, rows[0].StockAtLocation)
		}
	}
}

func TestComputeForecast_ZeroUsageIsUnbounded(t *testing.T) {
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 0, map[core.Location]int{
		core.LocationCentral: 40,
	})
	catalog := core.DeriveCatalog(st.Stock)

	rows, err := core.ComputeForecast(catalog, st.Stock, core.ScopeCombined, 7)
	if err != nil {
		t.Fatalf("ComputeForecast failed: %v", err)
	}
	row := rows[0]
	if !row.Unbounded {
		t.Error("expected unbounded supply when nothing is held at the buildings")
	}
	if row.TotalNeed != 0 {
		t.Errorf("expected totalNeed=0, got %d", row.TotalNeed)
	}
	if row.SupplyStatus != core.SupplyOK {
		t.Errorf("expected status ok with zero need, got %q", row.SupplyStatus)
	}
}

func TestComputeForecast_DaysOfSupply(t *testing.T) {
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral:   500,
		core.LocationBuildingA: 10,
		core.LocationBuildingB: 5,
	})
	catalog := core.DeriveCatalog(st.Stock)

	rows, err := core.ComputeForecast(catalog, st.Stock, core.ScopeCombined, 7)
	if err != nil {
		t.Fatalf("ComputeForecast failed: %v", err)
	}
	// 500 / 58.5 = 8.547..., rounded to two places.
	if got := rows[0].DaysOfSupply.String(); got != "8.55" {
		t.Errorf("expected daysOfSupply=8.55, got %s", got)
	}
}

func TestComputeForecast_Rejections(t *testing.T) {
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, nil)
	catalog := core.DeriveCatalog(st.Stock)

	if _, err := core.ComputeForecast(catalog, st.Stock, "everywhere", 7); err == nil {
		t.Error("unknown scope should fail")
	}
	if _, err := core.ComputeForecast(catalog, st.Stock, core.ScopeCombined, 0); err == nil {
		t.Error("zero horizon should fail")
	}
	if _, err := core.ComputeForecast(catalog, st.Stock, core.ScopeCombined, -7); err == nil {
		t.Error("negative horizon should fail")
	}
}

func TestComputeForecast_Deterministic(t *testing.T) {
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral:   200,
		core.LocationBuildingA: 15,
	})
	st = seedProduct(t, st, "SKU-BBB222", "Face Shield", 1, map[core.Location]int{
		core.LocationCentral:   30,
		core.LocationBuildingB: 8,
	})
	catalog := core.DeriveCatalog(st.Stock)

	first, err := core.ComputeForecast(catalog, st.Stock, core.ScopeCombined, 14)
	if err != nil {
		t.Fatalf("ComputeForecast failed: %v", err)
	}
	second, err := core.ComputeForecast(catalog, st.Stock, core.ScopeCombined, 14)
	if err != nil {
		t.Fatalf("ComputeForecast failed: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("row counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].TotalNeed != second[i].TotalNeed || first[i].SupplyStatus != second[i].SupplyStatus {
			t.Errorf("row %d differs between identical runs", i)
		}
	}
}
