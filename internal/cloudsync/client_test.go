package cloudsync_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/cloudsync"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

func sampleState() core.State {
	return core.State{
		Stock: []core.StockRecord{
			{ID: "r1", ProductID: "SKU-AAA111", Name: "Coverall", Location: core.LocationCentral, Quantity: 40},
		},
		Ledger: []core.TransactionRecord{
			{ID: "t1", ProductID: "SKU-AAA111", Kind: core.RecordIn, Amount: 40, SourceLocation: core.LocationSupplier, TargetLocation: core.LocationCentral},
		},
	}
}

func TestClient_Push(t *testing.T) {
	var got struct {
		Action       string                   `json:"action"`
		Inventory    []core.StockRecord       `json:"inventory"`
		Transactions []core.TransactionRecord `json:"transactions"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected JSON content type, got %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode push body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := cloudsync.New(srv.URL)
	if err := client.Push(context.Background(), sampleState()); err != nil {
		t.Fatalf("Push failed: %v", err)
	}

	if got.Action != "sync_all" {
		t.Errorf("expected action sync_all, got %q", got.Action)
	}
	if len(got.Inventory) != 1 || got.Inventory[0].ProductID != "SKU-AAA111" {
		t.Errorf("inventory not carried: %+v", got.Inventory)
	}
	if len(got.Transactions) != 1 {
		t.Errorf("transactions not carried: %+v", got.Transactions)
	}
}

func TestClient_Pull(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "get_data" {
			t.Errorf("expected action=get_data, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(sampleState())
	}))
	defer srv.Close()

	client := cloudsync.New(srv.URL)
	st, err := client.Pull(context.Background())
	if err != nil {
		t.Fatalf("Pull failed: %v", err)
	}
	if len(st.Stock) != 1 || st.Stock[0].Quantity != 40 {
		t.Errorf("unexpected stock: %+v", st.Stock)
	}
	if len(st.Ledger) != 1 || st.Ledger[0].Kind != core.RecordIn {
		t.Errorf("unexpected ledger: %+v", st.Ledger)
	}
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := cloudsync.New(srv.URL)
	if err := client.Push(context.Background(), sampleState()); err == nil {
		t.Error("Push should fail on a 500")
	}
	if _, err := client.Pull(context.Background()); err == nil {
		t.Error("Pull should fail on a 500")
	}
}

func TestClient_Unconfigured(t *testing.T) {
	client := cloudsync.New("")
	if client.Configured() {
		t.Error("empty URL should not be configured")
	}
	if err := client.Push(context.Background(), core.State{}); err == nil {
		t.Error("Push without an endpoint should fail")
	}
	if _, err := client.Pull(context.Background()); err == nil {
		t.Error("Pull without an endpoint should fail")
	}
}
