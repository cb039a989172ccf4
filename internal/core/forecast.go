package core

import "github.com/shopspring/decimal"

// ForecastScope selects which consuming buildings feed the projection.
type ForecastScope string

const (
	ScopeCombined  ForecastScope = "combined"
	ScopeBuildingA ForecastScope = "building-A"
	ScopeBuildingB ForecastScope = "building-B"
)

// Horizon is a named forecast period.
type Horizon string

const (
	HorizonOneDay     Horizon = "1day"
	HorizonOneWeek    Horizon = "1week"
	HorizonTwoWeeks   Horizon = "2weeks"
	HorizonThreeWeeks Horizon = "3weeks"
	HorizonOneMonth   Horizon = "1month"
)

// Days maps a horizon to its day multiplier.
func (h Horizon) Days() (int, error) {
	switch h {
	case HorizonOneDay:
		return 1, nil
	case HorizonOneWeek:
		return 7, nil
	case HorizonTwoWeeks:
		return 14, nil
	case HorizonThreeWeeks:
		return 21, nil
	case HorizonOneMonth:
		return 30, nil
	}
	return 0, invalidRequestf("unknown forecast horizon %q", string(h))
}

// SupplyStatus classifies central-warehouse sufficiency against projected
// need over the forecast horizon.
type SupplyStatus string

const (
	SupplyOK        SupplyStatus = "ok"
	SupplyShort     SupplyStatus = "short"
	SupplyMustOrder SupplyStatus = "must-order"
	SupplyEmpty     SupplyStatus = "empty"
)

// ForecastRow is the derived projection for one product. Rows are recomputed
// on demand and never persisted.
type ForecastRow struct {
	Product
	BuildingAQty    int             `json:"buildingAQty"`
	BuildingBQty    int             `json:"buildingBQty"`
	CentralQty      int             `json:"centralQty"`
	StockAtLocation int             `json:"stockAtLocation"`
	ShiftUsage      float64         `json:"shiftUsage"` // scoped sum of recorded usage rates
	DailyUsage      decimal.Decimal `json:"dailyUsage"`
	TotalNeed       int64           `json:"totalNeed"`
	MinStock        int64           `json:"minStock"`
	DaysOfSupply    decimal.Decimal `json:"daysOfSupply"`
	Unbounded       bool            `json:"unbounded"` // true when daily usage is zero: supply never runs out
	SupplyStatus    SupplyStatus    `json:"supplyStatus"`
}

// dailyUsageFactor bakes the 30% safety buffer and the three shifts per day
// into one multiplier. Policy rule: projected use is based on the stock held
// at the consuming location, not on the recorded usage rate.
var dailyUsageFactor = decimal.NewFromFloat(1.3).Mul(decimal.NewFromInt(3))

// ComputeForecast projects per-product need over horizonDays for the given
// scope. It is pure: identical inputs always yield identical rows, and it
// never writes. Missing or malformed stock records count as zero quantity
// and zero usage; the only error paths are an unrecognized scope or a
// non-positive horizon.
func ComputeForecast(catalog []Product, stock []StockRecord, scope ForecastScope, horizonDays int) ([]ForecastRow, error) {
	switch scope {
	case ScopeCombined, ScopeBuildingA, ScopeBuildingB:
	default:
		return nil, invalidRequestf("unknown forecast scope %q", string(scope))
	}
	if horizonDays <= 0 {
		return nil, invalidRequestf("forecast horizon must be a positive number of days, got %d", horizonDays)
	}

	horizon := decimal.NewFromInt(int64(horizonDays))
	rows := make([]ForecastRow, 0, len(catalog))
	for _, p := range catalog {
		var aQty, bQty, centralQty int
		var aUsage, bUsage float64
		for i := range stock {
			rec := &stock[i]
			if rec.ProductID != p.ProductID {
				continue
			}
			qty := rec.Quantity
			if qty < 0 {
				qty = 0
			}
			usage := rec.UsagePerShift
			if usage < 0 {
				usage = 0
			}
			switch rec.Location {
			case LocationBuildingA:
				aQty, aUsage = qty, usage
			case LocationBuildingB:
				bQty, bUsage = qty, usage
			case LocationCentral:
				centralQty = qty
			}
		}

		stockAt := aQty + bQty
		shiftUsage := aUsage + bUsage
		switch scope {
		case ScopeBuildingA:
			stockAt, shiftUsage = aQty, aUsage
		case ScopeBuildingB:
			stockAt, shiftUsage = bQty, bUsage
		}

		dailyUsage := decimal.NewFromInt(int64(stockAt)).Mul(dailyUsageFactor)
		totalNeed := dailyUsage.Mul(horizon).Round(0).IntPart()
		minStock := dailyUsage.Round(0).IntPart()

		row := ForecastRow{
			Product:         p,
			BuildingAQty:    aQty,
			BuildingBQty:    bQty,
			CentralQty:      centralQty,
			StockAtLocation: stockAt,
			ShiftUsage:      shiftUsage,
			DailyUsage:      dailyUsage,
			TotalNeed:       totalNeed,
			MinStock:        minStock,
			SupplyStatus:    SupplyOK,
		}
		if dailyUsage.IsPositive() {
			row.DaysOfSupply = decimal.NewFromInt(int64(centralQty)).DivRound(dailyUsage, 2)
		} else {
			row.Unbounded = true
		}
		if totalNeed > 0 {
			central := int64(centralQty)
			switch {
			case central == 0:
				row.SupplyStatus = SupplyEmpty
			case central <= minStock:
				row.SupplyStatus = SupplyMustOrder
			case central < totalNeed:
				row.SupplyStatus = SupplyShort
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
