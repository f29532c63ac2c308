package main

import (
	"fmt"
	"log"

	"movievault/internal/config"
	"movievault/internal/db"
	httpserver "movievault/internal/http"
	"movievault/internal/models"
	"movievault/internal/seed"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DSN)
	db.AutoMigrate(gdb,
		&models.Role{},
		&models.User{},
		&models.Movie{},
		&models.MovieAssignment{},
		&models.MovieFile{},
	)

	if err := seed.FirstSetup(gdb); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	r := httpserver.NewRouter(gdb, cfg)
	log.Printf("server listening on :%s", cfg.AppPort)
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
