package main

import (
	"context"
	"log"

	"github.com/kilhoshin/aissam/internal/bootstrap"
	"github.com/kilhoshin/aissam/internal/config"
	"github.com/kilhoshin/aissam/internal/server"
	"github.com/kilhoshin/aissam/internal/tracer"
	"github.com/kilhoshin/aissam/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	if err := container.AnalysisConsumer.Start(context.Background()); err != nil {
		log.Printf("Background Analysis Consumer Error: %v", err)
	}

	// 5. Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
