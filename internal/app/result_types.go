package app

import "github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"

// StockResult is returned by GetStock.
type StockResult struct {
	Records []core.StockRecord
}

// CatalogResult is returned by GetCatalog.
type CatalogResult struct {
	Products []core.Product
}

// TransactionsResult is returned by GetTransactions.
type TransactionsResult struct {
	Entries []core.TransactionRecord
	Total   int // ledger size before the limit was applied
}

// TransferResult is returned by every stock movement operation.
type TransferResult struct {
	Entry core.TransactionRecord
}

// ForecastResult is returned by GetForecast.
type ForecastResult struct {
	Scope       core.ForecastScope
	HorizonDays int
	Rows        []core.ForecastRow
}

// ProductResult is returned by RegisterProduct.
type ProductResult struct {
	Product core.Product
}

// ImportResult is returned by ImportRows.
type ImportResult struct {
	Imported int
	Target   core.Location
}

// SyncResult is returned by SyncPull.
type SyncResult struct {
	StockRecords int
	LedgerSize   int
}
