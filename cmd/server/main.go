package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	webAdapter "github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/adapters/web"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/ai"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/app"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/cloudsync"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/core"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/db"
	"github.com/rismawansuryadinatazz-bit/stoldryzzz/internal/store"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	snapshots := store.New(pool)
	if err := snapshots.Migrate(ctx); err != nil {
		log.Fatalf("migrations: %v", err)
	}
	initial, err := snapshots.Load(ctx)
	if err != nil {
		log.Fatalf("snapshot load: %v", err)
	}
	log.Printf("loaded %d stock records, %d ledger entries", len(initial.Stock), len(initial.Ledger))

	var agent *ai.Agent
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		agent = ai.NewAgent(apiKey)
	} else {
		log.Println("Warning: OPENAI_API_KEY is not set, /api/insight disabled")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	pin := os.Getenv("ACCESS_PIN")
	if pin == "" {
		log.Fatal("ACCESS_PIN environment variable not set")
	}

	engine := core.NewEngine(time.Now, uuid.NewString)
	syncClient := cloudsync.New(os.Getenv("SHEET_SYNC_URL"))
	svc := app.NewAppService(initial, engine, snapshots, syncClient, agent, pin)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins, jwtSecret)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
