package main

import (
	"log"
	"net/http"

	"orgconsole/internal/config"
	"orgconsole/internal/logger"
	"orgconsole/internal/stubserver"
)

func main() {
	cfg := config.Load()

	// Initialize structured logging to file
	logger.Setup(cfg.LogFile)

	// In-memory backend with seeded demo data
	srv := stubserver.New(stubserver.Seeded())

	log.Printf("🚀 Stub org backend running at %s (login admin@acme.test / admin123)", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, srv.Handler()))
}
