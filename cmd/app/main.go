package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	replAdapter "github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/adapters/repl"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/ai"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/app"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/cloudsync"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/db"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/importer"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/store"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	snapshots := store.New(pool)
	if err := snapshots.Migrate(ctx); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}
	initial, err := snapshots.Load(ctx)
	if err != nil {
		log.Fatalf("Snapshot load failed: %v", err)
	}

	var agent *ai.Agent
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	}

	engine := core.NewEngine(time.Now, uuid.NewString)
	syncClient := cloudsync.New(os.Getenv("SHEET_SYNC_URL"))
	svc := app.NewAppService(initial, engine, snapshots, syncClient, agent, os.Getenv("ACCESS_PIN"))

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "forecast":
			scope := core.ScopeCombined
			horizon := core.HorizonOneWeek
			if len(os.Args) > 2 {
				scope = core.ForecastScope(os.Args[2])
			}
			if len(os.Args) > 3 {
				horizon = core.Horizon(os.Args[3])
			}
			result, err := svc.GetForecast(ctx, scope, horizon)
			if err != nil {
				log.Fatalf("Forecast failed: %v", err)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			enc.Encode(result)

		case "import":
			if len(os.Args) < 3 {
				log.Fatal("Usage: app import <file.xlsx> [location]")
			}
			target := core.LocationCentral
			if len(os.Args) > 3 {
				target = core.Location(os.Args[3])
			}
			f, err := os.Open(os.Args[2])
			if err != nil {
				log.Fatalf("Cannot open workbook: %v", err)
			}
			defer f.Close()
			rows, err := importer.ParseWorkbook(f)
			if err != nil {
				log.Fatalf("Cannot parse workbook: %v", err)
			}
			result, err := svc.ImportRows(ctx, rows, target)
			if err != nil {
				log.Fatalf("Import failed: %v", err)
			}
			fmt.Printf("Imported %d rows into %s.\n", result.Imported, result.Target)

		case "export":
			if len(os.Args) < 3 {
				log.Fatal("Usage: app export <file.xlsx>")
			}
			stock, err := svc.ExportStock(ctx)
			if err != nil {
				log.Fatalf("Export failed: %v", err)
			}
			f, err := os.Create(os.Args[2])
			if err != nil {
				log.Fatalf("Cannot create file: %v", err)
			}
			defer f.Close()
			if err := importer.WriteWorkbook(f, stock); err != nil {
				log.Fatalf("Cannot write workbook: %v", err)
			}
			fmt.Printf("Exported %d stock records to %s.\n", len(stock), os.Args[2])

		case "sync":
			if len(os.Args) < 3 {
				log.Fatal("Usage: app sync push|pull")
			}
			switch os.Args[2] {
			case "push":
				if err := svc.SyncPush(ctx); err != nil {
					log.Fatalf("Sync push failed: %v", err)
				}
				fmt.Println("Snapshot pushed.")
			case "pull":
				result, err := svc.SyncPull(ctx)
				if err != nil {
					log.Fatalf("Sync pull failed: %v", err)
				}
				fmt.Printf("Pulled %d stock records and %d ledger entries.\n",
					result.StockRecords, result.LedgerSize)
			default:
				log.Fatal("Usage: app sync push|pull")
			}

		default:
			log.Fatalf("Unknown command: %s", os.Args[1])
		}
		return
	}

	replAdapter.Run(ctx, svc, bufio.NewReader(os.Stdin))
}
