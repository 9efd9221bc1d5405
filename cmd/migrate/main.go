package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"train-booking-platform/internal/config"
	"train-booking-platform/internal/database"
)

func main() {
	var (
		status = flag.Bool("status", false, "Show migration status instead of running migrations")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if *status {
		if err := db.GetMigrationStatus(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to get migration status: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := db.RunMigrations(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run migrations: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Migrations complete")
}
