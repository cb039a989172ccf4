package core

import "time"

// TransferKind names one movement in the fixed routing table.
type TransferKind string

const (
	ReceiveFromSupplier  TransferKind = "receive-from-supplier"
	SendToBuildingA      TransferKind = "send-to-building-A"
	SendToBuildingB      TransferKind = "send-to-building-B"
	BuildingAReturn      TransferKind = "building-A-return"
	BuildingBReturn      TransferKind = "building-B-return"
	SendToRepair         TransferKind = "send-to-repair"
	RepairComplete       TransferKind = "repair-complete"
	SubmitForDestruction TransferKind = "submit-for-destruction"
	OtherOutgoing        TransferKind = "other-outgoing"
)

// Route fixes the (source, target, record kind) triple for a transfer kind.
type Route struct {
	Source Location
	Target Location
	Kind   RecordKind
}

// routes is the closed transfer-kind table. Kinds outside it are rejected
// with UnknownTransferKindError.
var routes = map[TransferKind]Route{
	ReceiveFromSupplier:  {LocationSupplier, LocationCentral, RecordIn},
	SendToBuildingA:      {LocationCentral, LocationBuildingA, RecordTransfer},
	SendToBuildingB:      {LocationCentral, LocationBuildingB, RecordTransfer},
	BuildingAReturn:      {LocationBuildingA, LocationCentral, RecordTransfer},
	BuildingBReturn:      {LocationBuildingB, LocationCentral, RecordTransfer},
	SendToRepair:         {LocationCentral, LocationRepair, RecordRepairIn},
	RepairComplete:       {LocationRepair, LocationCentral, RecordRepairOut},
	SubmitForDestruction: {LocationCentral, LocationNone, RecordDispose},
	OtherOutgoing:        {LocationCentral, LocationNone, RecordDispose},
}

// RouteFor returns the fixed routing for kind, or false for kinds outside
// the table.
func RouteFor(kind TransferKind) (Route, bool) {
	r, ok := routes[kind]
	return r, ok
}

// TransferKinds lists every kind in the routing table, in a stable order
// suitable for menus and documentation.
func TransferKinds() []TransferKind {
	return []TransferKind{
		ReceiveFromSupplier,
		SendToBuildingA,
		SendToBuildingB,
		BuildingAReturn,
		BuildingBReturn,
		SendToRepair,
		RepairComplete,
		SubmitForDestruction,
		OtherOutgoing,
	}
}

// TransferRequest is a user-initiated stock movement.
type TransferRequest struct {
	ProductID string       `json:"productId"`
	Amount    int          `json:"amount"`
	Kind      TransferKind `json:"kind"`
	Note      string       `json:"note,omitempty"`
	Shift     string       `json:"shift,omitempty"`
}

// Engine validates and executes stock movements. The clock and ID generator
// are injected so identical inputs always produce identical states. The
// Engine holds no state of its own; callers must serialize mutations through
// a single writer.
type Engine struct {
	now   func() time.Time
	newID func() string
}

// NewEngine returns an Engine using the given clock and ID generator.
func NewEngine(now func() time.Time, newID func() string) *Engine {
	return &Engine{now: now, newID: newID}
}

// ExecuteTransfer validates req against st and applies it atomically:
// either the source decrement, the target increment and the ledger append
// all happen on the returned State, or st is returned unchanged with a
// typed error.
func (e *Engine) ExecuteTransfer(st State, req TransferRequest) (State, error) {
	r, ok := routes[req.Kind]
	if !ok {
		return st, &UnknownTransferKindError{Kind: req.Kind}
	}
	status := WorkflowStatus("")
	if req.Kind == SubmitForDestruction {
		status = StatusPending
	}
	return e.move(st, req.ProductID, r.Source, r.Target, r.Kind, req.Amount, req.Note, req.Shift, status)
}

// MarkUnfit moves amount units from source into the condemned pool, awaiting
// destruction or restoration.
func (e *Engine) MarkUnfit(st State, productID string, source Location, amount int, note, shift string) (State, error) {
	if !source.Tracked() || source == LocationCondemned {
		return st, invalidRequestf("cannot mark unfit from location %q", string(source))
	}
	return e.move(st, productID, source, LocationCondemned, RecordDispose, amount, note, shift, StatusPending)
}

// ExecuteDestruction permanently removes amount units from the condemned
// pool. The quantity leaves the system entirely; there is no target location.
func (e *Engine) ExecuteDestruction(st State, productID string, amount int, note, shift string) (State, error) {
	return e.move(st, productID, LocationCondemned, LocationNone, RecordDispose, amount, note, shift, StatusCompleted)
}

// RestoreFromCondemned returns still-serviceable units from the condemned
// pool to the central warehouse.
func (e *Engine) RestoreFromCondemned(st State, productID string, amount int, note, shift string) (State, error) {
	return e.move(st, productID, LocationCondemned, LocationCentral, RecordTransfer, amount, note, shift, "")
}

// FinishRepair returns repaired units to the central warehouse.
func (e *Engine) FinishRepair(st State, productID string, amount int, note, shift string) (State, error) {
	return e.move(st, productID, LocationRepair, LocationCentral, RecordRepairOut, amount, note, shift, "")
}

// move is the single movement primitive behind every transfer and derived
// workflow. Validation order: amount, product existence, source balance.
func (e *Engine) move(st State, productID string, source, target Location, kind RecordKind,
	amount int, note, shift string, status WorkflowStatus) (State, error) {

	if amount <= 0 {
		return st, invalidRequestf("amount must be a positive integer, got %d", amount)
	}
	master, ok := lookupProduct(st.Stock, productID)
	if !ok {
		return st, invalidRequestf("product %s is not registered", productID)
	}
	if source.Tracked() {
		available := 0
		if i := findRecord(st.Stock, productID, source); i >= 0 {
			available = st.Stock[i].Quantity
		}
		if available < amount {
			return st, &InsufficientStockError{
				ProductID: productID,
				Location:  source,
				Requested: amount,
				Available: available,
			}
		}
	}

	next := st.clone()
	now := e.now()
	if source.Tracked() {
		if i := findRecord(next.Stock, productID, source); i >= 0 {
			rec := &next.Stock[i]
			rec.Quantity -= amount
			if rec.Quantity < 0 {
				// Unreachable after the balance check above; last-resort
				// guard so the non-negativity invariant can never break.
				rec.Quantity = 0
			}
			rec.LastUpdated = now
		}
	}
	if target.Tracked() {
		if i := findRecord(next.Stock, productID, target); i >= 0 {
			rec := &next.Stock[i]
			rec.Quantity += amount
			rec.LastUpdated = now
		}
	}

	entry := TransactionRecord{
		ID:             e.newID(),
		ProductID:      productID,
		ProductName:    master.Name,
		Size:           master.Size,
		Kind:           kind,
		Amount:         amount,
		SourceLocation: source,
		TargetLocation: target,
		Timestamp:      now,
		Note:           note,
		Shift:          shift,
		Status:         status,
	}
	next.Ledger = append([]TransactionRecord{entry}, next.Ledger...)
	return next, nil
}
