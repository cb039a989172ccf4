package core_test

import (
	"errors"
	"testing"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

func TestTransfer_ReceiveFromSupplier(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral: 100,
	})

	next, err := eng.ExecuteTransfer(st, core.TransferRequest{
		ProductID: "SKU-AAA111",
		Amount:    50,
		Kind:      core.ReceiveFromSupplier,
	})
	if err != nil {
		t.Fatalf("ExecuteTransfer failed: %v", err)
	}

	if got := next.QuantityAt("SKU-AAA111", core.LocationCentral); got != 150 {
		t.Errorf("expected central=150, got %d", got)
	}
	if len(next.Ledger) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(next.Ledger))
	}
	entry := next.Ledger[0]
	if entry.Kind != core.RecordIn {
		t.Errorf("expected record kind %q, got %q", core.RecordIn, entry.Kind)
	}
	if entry.SourceLocation != core.LocationSupplier || entry.TargetLocation != core.LocationCentral {
		t.Errorf("unexpected route %q -> %q", entry.SourceLocation, entry.TargetLocation)
	}
	if entry.ProductName != "Coverall" {
		t.Errorf("expected product name snapshot, got %q", entry.ProductName)
	}
}

func TestTransfer_SendToBuildingConservesTotal(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral:   100,
		core.LocationBuildingA: 5,
	})
	before := st.TotalQuantity("SKU-AAA111")

	next, err := eng.ExecuteTransfer(st, core.TransferRequest{
		ProductID: "SKU-AAA111",
		Amount:    30,
		Kind:      core.SendToBuildingA,
	})
	if err != nil {
		t.Fatalf("ExecuteTransfer failed: %v", err)
	}

	if got := next.QuantityAt("SKU-AAA111", core.LocationCentral); got != 70 {
		t.Errorf("expected central=70, got %d", got)
	}
	if got := next.QuantityAt("SKU-AAA111", core.LocationBuildingA); got != 35 {
		t.Errorf("expected building-A=35, got %d", got)
	}
	if after := next.TotalQuantity("SKU-AAA111"); after != before {
		t.Errorf("transfer changed total quantity: %d -> %d", before, after)
	}
}

func TestTransfer_InsufficientStockLeavesStateUntouched(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral: 10,
	})

	next, err := eng.ExecuteTransfer(st, core.TransferRequest{
		ProductID: "SKU-AAA111",
		Amount:    25,
		Kind:      core.SendToBuildingB,
	})

	var insufficient *core.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Available != 10 || insufficient.Requested != 25 {
		t.Errorf("expected available=10 requested=25, got %+v", insufficient)
	}
	if got := next.QuantityAt("SKU-AAA111", core.LocationCentral); got != 10 {
		t.Errorf("rejected transfer mutated central: got %d", got)
	}
	if got := next.QuantityAt("SKU-AAA111", core.LocationBuildingB); got != 0 {
		t.Errorf("rejected transfer mutated building-B: got %d", got)
	}
	if len(next.Ledger) != 0 {
		t.Errorf("rejected transfer wrote %d ledger entries", len(next.Ledger))
	}
}

func TestTransfer_Rejections(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral: 10,
	})

	tests := []struct {
		name    string
		req     core.TransferRequest
		wantErr any
	}{
		{
			name:    "unknown kind",
			req:     core.TransferRequest{ProductID: "SKU-AAA111", Amount: 1, Kind: "teleport"},
			wantErr: new(*core.UnknownTransferKindError),
		},
		{
			name:    "zero amount",
			req:     core.TransferRequest{ProductID: "SKU-AAA111", Amount: 0, Kind: core.SendToBuildingA},
			wantErr: new(*core.InvalidRequestError),
		},
		{
			name:    "negative amount",
			req:     core.TransferRequest{ProductID: "SKU-AAA111", Amount: -5, Kind: core.SendToBuildingA},
			wantErr: new(*core.InvalidRequestError),
		},
		{
			name:    "unregistered product",
			req:     core.TransferRequest{ProductID: "SKU-NOPE", Amount: 1, Kind: core.SendToBuildingA},
			wantErr: new(*core.InvalidRequestError),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := eng.ExecuteTransfer(st, tt.req)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.As(err, tt.wantErr) {
				t.Errorf("wrong error type: %v", err)
			}
			if len(next.Ledger) != 0 {
				t.Errorf("rejected request wrote a ledger entry")
			}
		})
	}
}

func TestTransfer_RepairCycle(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral: 20,
	})

	st, err := eng.ExecuteTransfer(st, core.TransferRequest{
		ProductID: "SKU-AAA111", Amount: 8, Kind: core.SendToRepair,
	})
	if err != nil {
		t.Fatalf("SendToRepair failed: %v", err)
	}
	if got := st.QuantityAt("SKU-AAA111", core.LocationRepair); got != 8 {
		t.Fatalf("expected repair=8, got %d", got)
	}
	if st.Ledger[0].Kind != core.RecordRepairIn {
		t.Errorf("expected repair-in record, got %q", st.Ledger[0].Kind)
	}

	st, err = eng.FinishRepair(st, "SKU-AAA111", 8, "back in service", "")
	if err != nil {
		t.Fatalf("FinishRepair failed: %v", err)
	}
	if got := st.QuantityAt("SKU-AAA111", core.LocationCentral); got != 20 {
		t.Errorf("expected central back to 20, got %d", got)
	}
	if got := st.QuantityAt("SKU-AAA111", core.LocationRepair); got != 0 {
		t.Errorf("expected repair=0, got %d", got)
	}
	if st.Ledger[0].Kind != core.RecordRepairOut {
		t.Errorf("expected repair-out record, got %q", st.Ledger[0].Kind)
	}
}

func TestTransfer_DestructionWorkflow(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationBuildingA: 12,
	})

	// Stage 1: mark unfit at the building, pending destruction.
	st, err := eng.MarkUnfit(st, "SKU-AAA111", core.LocationBuildingA, 4, "torn seams", "morning")
	if err != nil {
		t.Fatalf("MarkUnfit failed: %v", err)
	}
	if got := st.QuantityAt("SKU-AAA111", core.LocationCondemned); got != 4 {
		t.Fatalf("expected condemned=4, got %d", got)
	}
	if st.Ledger[0].Status != core.StatusPending {
		t.Errorf("expected pending status, got %q", st.Ledger[0].Status)
	}

	// Stage 2: destroy part, restore the rest.
	st, err = eng.ExecuteDestruction(st, "SKU-AAA111", 3, "", "")
	if err != nil {
		t.Fatalf("ExecuteDestruction failed: %v", err)
	}
	if st.Ledger[0].Status != core.StatusCompleted {
		t.Errorf("expected completed status, got %q", st.Ledger[0].Status)
	}
	if st.Ledger[0].TargetLocation != core.LocationNone {
		t.Errorf("destruction should have no target, got %q", st.Ledger[0].TargetLocation)
	}
	if got := st.TotalQuantity("SKU-AAA111"); got != 9 {
		t.Errorf("expected total=9 after destruction, got %d", got)
	}

	st, err = eng.RestoreFromCondemned(st, "SKU-AAA111", 1, "false alarm", "")
	if err != nil {
		t.Fatalf("RestoreFromCondemned failed: %v", err)
	}
	if got := st.QuantityAt("SKU-AAA111", core.LocationCentral); got != 1 {
		t.Errorf("expected central=1 after restore, got %d", got)
	}
	if got := st.QuantityAt("SKU-AAA111", core.LocationCondemned); got != 0 {
		t.Errorf("expected condemned=0, got %d", got)
	}
}

func TestMarkUnfit_RejectsBadSources(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCondemned: 5,
	})

	for _, source := range []core.Location{core.LocationCondemned, core.LocationSupplier, "basement"} {
		if _, err := eng.MarkUnfit(st, "SKU-AAA111", source, 1, "", ""); err == nil {
			t.Errorf("MarkUnfit from %q should fail", source)
		}
	}
}

func TestTransfer_SubmitForDestructionIsPending(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral: 10,
	})

	next, err := eng.ExecuteTransfer(st, core.TransferRequest{
		ProductID: "SKU-AAA111", Amount: 2, Kind: core.SubmitForDestruction,
	})
	if err != nil {
		t.Fatalf("ExecuteTransfer failed: %v", err)
	}
	if next.Ledger[0].Status != core.StatusPending {
		t.Errorf("expected pending status, got %q", next.Ledger[0].Status)
	}
	if got := next.QuantityAt("SKU-AAA111", core.LocationCentral); got != 8 {
		t.Errorf("expected central=8, got %d", got)
	}
}

func TestTransfer_LedgerIsNewestFirst(t *testing.T) {
	eng := newTestEngine(t)
	st := seedProduct(t, core.State{}, "SKU-AAA111", "Coverall", 2, map[core.Location]int{
		core.LocationCentral: 100,
	})

	var err error
	for _, kind := range []core.TransferKind{core.SendToBuildingA, core.SendToBuildingB, core.OtherOutgoing} {
		st, err = eng.ExecuteTransfer(st, core.TransferRequest{
			ProductID: "SKU-AAA111", Amount: 1, Kind: kind,
		})
		if err != nil {
			t.Fatalf("ExecuteTransfer(%s) failed: %v", kind, err)
		}
	}

	if len(st.Ledger) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(st.Ledger))
	}
	// The last executed transfer must be first.
	if st.Ledger[0].Kind != core.RecordDispose {
		t.Errorf("expected newest entry first, got kind %q", st.Ledger[0].Kind)
	}
	if st.Ledger[2].TargetLocation != core.LocationBuildingA {
		t.Errorf("expected oldest entry last, got target %q", st.Ledger[2].TargetLocation)
	}
}

func TestRouteFor(t *testing.T) {
	for _, kind := range core.TransferKinds() {
		if _, ok := core.RouteFor(kind); !ok {
			t.Errorf("RouteFor(%s) missing", kind)
		}
	}
	if _, ok := core.RouteFor("teleport"); ok {
		t.Error("RouteFor accepted an unknown kind")
	}
}
