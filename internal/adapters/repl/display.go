package repl

import (
	"fmt"
	"strings"

	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/ai"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/app"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
)

func printStock(result *app.StockResult, location string) {
	title := "STOCK — all locations"
	if location != "" {
		title = "STOCK — " + location
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %s\n", title)
	fmt.Println(strings.Repeat("=", 78))
	if len(result.Records) == 0 {
		fmt.Println("  No stock records.")
		fmt.Println(strings.Repeat("=", 78))
		return
	}
	fmt.Printf("  %-12s %-24s %-6s %-12s %8s %-6s\n", "SKU", "NAME", "SIZE", "LOCATION", "QTY", "UNIT")
	fmt.Println(strings.Repeat("-", 78))
	for _, rec := range result.Records {
		fmt.Printf("  %-12s %-24s %-6s %-12s %8d %-6s\n",
			rec.ProductID, rec.Name, rec.Size, rec.Location, rec.Quantity, rec.Unit)
	}
	fmt.Println(strings.Repeat("=", 78))
}

func printCatalog(result *app.CatalogResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 72))
	fmt.Printf("  PRODUCT CATALOG\n")
	fmt.Println(strings.Repeat("=", 72))
	if len(result.Products) == 0 {
		fmt.Println("  No products registered.")
		fmt.Println(strings.Repeat("=", 72))
		return
	}
	fmt.Printf("  %-12s %-26s %-6s %-6s %-10s %9s\n", "SKU", "NAME", "SIZE", "UNIT", "PROTOCOL", "USE/SHIFT")
	fmt.Println(strings.Repeat("-", 72))
	for _, p := range result.Products {
		fmt.Printf("  %-12s %-26s %-6s %-6s %-10s %9.1f\n",
			p.ProductID, p.Name, p.Size, p.Unit, p.Status, p.UsagePerShift)
	}
	fmt.Println(strings.Repeat("=", 72))
}

func printTransferKinds() {
	fmt.Println("\nTransfer kinds:")
	for _, kind := range core.TransferKinds() {
		route, _ := core.RouteFor(kind)
		target := string(route.Target)
		if target == "" {
			target = "(out of system)"
		}
		fmt.Printf("  %-24s %s -> %s\n", kind, route.Source, target)
	}
}

func printMovement(result *app.TransferResult) {
	entry := result.Entry
	target := string(entry.TargetLocation)
	if target == "" {
		target = "(out of system)"
	}
	fmt.Printf("Recorded: %d x %s (%s) %s -> %s",
		entry.Amount, entry.ProductName, entry.ProductID, entry.SourceLocation, target)
	if entry.Status != "" {
		fmt.Printf(" [%s]", entry.Status)
	}
	fmt.Println()
}

func printForecast(result *app.ForecastResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 84))
	fmt.Printf("  FORECAST — scope %s, %d days\n", result.Scope, result.HorizonDays)
	fmt.Println(strings.Repeat("=", 84))
	if len(result.Rows) == 0 {
		fmt.Println("  No products registered.")
		fmt.Println(strings.Repeat("=", 84))
		return
	}
	fmt.Printf("  %-24s %7s %9s %7s %5s %8s %-10s\n",
		"NAME", "CENTRAL", "DAILY USE", "NEED", "MIN", "DAYS", "STATUS")
	fmt.Println(strings.Repeat("-", 84))
	for _, row := range result.Rows {
		days := "inf"
		if !row.Unbounded {
			days = row.DaysOfSupply.StringFixed(2)
		}
		fmt.Printf("  %-24s %7d %9s %7d %5d %8s %-10s\n",
			row.Name, row.CentralQty, row.DailyUsage.StringFixed(1),
			row.TotalNeed, row.MinStock, days, row.SupplyStatus)
	}
	fmt.Println(strings.Repeat("=", 84))
}

func printHistory(result *app.TransactionsResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 88))
	fmt.Printf("  TRANSACTIONS — showing %d of %d, newest first\n", len(result.Entries), result.Total)
	fmt.Println(strings.Repeat("=", 88))
	if len(result.Entries) == 0 {
		fmt.Println("  Ledger is empty.")
		fmt.Println(strings.Repeat("=", 88))
		return
	}
	for _, entry := range result.Entries {
		target := string(entry.TargetLocation)
		if target == "" {
			target = "(out)"
		}
		status := ""
		if entry.Status != "" {
			status = "  [" + string(entry.Status) + "]"
		}
		fmt.Printf("  %s  %-10s %4d x %-22s %s -> %s%s\n",
			entry.Timestamp.Format("2006-01-02 15:04"), entry.Kind,
			entry.Amount, entry.ProductName, entry.SourceLocation, target, status)
	}
	fmt.Println(strings.Repeat("=", 88))
}

func printInsight(insight *ai.Insight) {
	fmt.Printf("\nSTATUS:         %s\n", strings.ToUpper(insight.Status))
	fmt.Printf("ASSESSMENT:     %s\n", insight.Message)
	fmt.Printf("RECOMMENDATION: %s\n", insight.Recommendation)
}

func printHelp() {
	fmt.Println(`
Commands:
  /stock [location]                 Show stock records, optionally one location
  /catalog                          Show the product catalog
  /kinds                            List transfer kinds and their routes
  /transfer <kind> <sku> <n> [shift]  Execute a stock movement
  /condemn <sku> <source> <n>       Mark units unfit, pending destruction
  /destroy <sku> <n>                Destroy condemned units
  /restore <sku> <n>                Return condemned units to central
  /repair-done <sku> <n>            Return repaired units to central
  /forecast [scope] [horizon]       Project need (combined|building-A|building-B,
                                    1day|1week|2weeks|3weeks|1month)
  /history [n]                      Show the latest ledger entries
  /sync push|pull                   Mirror the snapshot to/from the sheet
  /insight [horizon]                Ask the AI agent to assess the forecast
  /help                             This help
  /exit                             Quit`)
}
