package core

import "time"

// Location identifies a stock-holding point. Five locations are tracked; the
// supplier and the empty "none" location are external sinks used as transfer
// endpoints with no quantity bookkeeping.
type Location string

const (
	LocationCentral   Location = "central"
	LocationBuildingA Location = "building-A"
	LocationBuildingB Location = "building-B"
	LocationRepair    Location = "repair"
	LocationCondemned Location = "condemned"

	// External sinks.
	LocationSupplier Location = "supplier"
	LocationNone     Location = ""
)

// TrackedLocations lists every real location in display order. A registered
// product owns exactly one StockRecord per entry — never a partial set.
var TrackedLocations = []Location{
	LocationCentral,
	LocationBuildingA,
	LocationBuildingB,
	LocationRepair,
	LocationCondemned,
}

// Tracked reports whether l is a real location with quantity bookkeeping.
func (l Location) Tracked() bool {
	switch l {
	case LocationCentral, LocationBuildingA, LocationBuildingB, LocationRepair, LocationCondemned:
		return true
	}
	return false
}

// Protocol is a product's usage protocol.
type Protocol string

const (
	ProtocolReusable   Protocol = "reusable"
	ProtocolDisposable Protocol = "disposable"
)

// StockRecord is the quantity held for one product at one location, plus the
// denormalized descriptive fields shared by all records of the product.
// Invariant: Quantity >= 0 at all times.
type StockRecord struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Size          string    `json:"size"`
	Status        Protocol  `json:"status"`
	Location      Location  `json:"location"`
	Quantity      int       `json:"quantity"`
	Unit          string    `json:"unit"`
	Price         float64   `json:"price"` // stored for external consumers; never computed upon
	MinStock      int       `json:"minStock"`
	LastUpdated   time.Time `json:"lastUpdated"`
	SortOrder     int       `json:"sortOrder"`
	UsagePerShift float64   `json:"usagePerShift"`
}

// RecordKind classifies a ledger entry.
type RecordKind string

const (
	RecordIn        RecordKind = "in"
	RecordTransfer  RecordKind = "transfer"
	RecordDispose   RecordKind = "dispose"
	RecordRepairIn  RecordKind = "repair-in"
	RecordRepairOut RecordKind = "repair-out"
)

// WorkflowStatus marks the two stages of the destruction workflow.
type WorkflowStatus string

const (
	StatusPending   WorkflowStatus = "pending"
	StatusCompleted WorkflowStatus = "completed"
)

// TransactionRecord is one immutable ledger entry. Once appended it is never
// mutated or removed by this package.
type TransactionRecord struct {
	ID             string         `json:"id"`
	ProductID      string         `json:"productId"`
	ProductName    string         `json:"productName"`
	Size           string         `json:"size"`
	Kind           RecordKind     `json:"type"`
	Amount         int            `json:"amount"`
	SourceLocation Location       `json:"sourceLocation"`
	TargetLocation Location       `json:"targetLocation,omitempty"`
	Timestamp      time.Time      `json:"timestamp"`
	Note           string         `json:"note,omitempty"`
	Shift          string         `json:"shift,omitempty"`
	Status         WorkflowStatus `json:"status,omitempty"`
}

// Product is the master identity derived from a product's stock records.
type Product struct {
	ProductID     string   `json:"productId"`
	Name          string   `json:"name"`
	Size          string   `json:"size"`
	Unit          string   `json:"unit"`
	Status        Protocol `json:"status"`
	UsagePerShift float64  `json:"usagePerShift"`
}

// State is the complete mutable state of the system: the stock table and the
// transaction ledger, newest ledger entry first. Operations take a State and
// return a new one; both the input and the returned State are internally
// consistent — no transaction is ever partially applied.
//
// The JSON field names match the snapshot documents exchanged with the
// persistence and sync collaborators.
type State struct {
	Stock  []StockRecord       `json:"inventory"`
	Ledger []TransactionRecord `json:"transactions"`
}

// clone copies the stock table so the caller can mutate it without touching
// the input State. The ledger slice is shared: entries are immutable and
// appends always prepend into a fresh backing array.
func (s State) clone() State {
	stock := make([]StockRecord, len(s.Stock))
	copy(stock, s.Stock)
	return State{Stock: stock, Ledger: s.Ledger}
}

// findRecord returns the index of the (productID, loc) record, or -1.
func findRecord(stock []StockRecord, productID string, loc Location) int {
	for i := range stock {
		if stock[i].ProductID == productID && stock[i].Location == loc {
			return i
		}
	}
	return -1
}

// lookupProduct returns the first stock record for productID, which carries
// the canonical descriptive fields.
func lookupProduct(stock []StockRecord, productID string) (StockRecord, bool) {
	for i := range stock {
		if stock[i].ProductID == productID {
			return stock[i], true
		}
	}
	return StockRecord{}, false
}

// QuantityAt returns the quantity of productID held at loc, or zero when no
// record exists.
func (s State) QuantityAt(productID string, loc Location) int {
	if i := findRecord(s.Stock, productID, loc); i >= 0 {
		return s.Stock[i].Quantity
	}
	return 0
}

// TotalQuantity sums a product's quantity across all tracked locations.
func (s State) TotalQuantity(productID string) int {
	total := 0
	for i := range s.Stock {
		if s.Stock[i].ProductID == productID {
			total += s.Stock[i].Quantity
		}
	}
	return total
}
