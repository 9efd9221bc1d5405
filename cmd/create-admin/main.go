package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"train-booking-platform/internal/config"
	"train-booking-platform/internal/database"
	"train-booking-platform/internal/repositories"
	"train-booking-platform/internal/utils"
)

func main() {
	var (
		email     = flag.String("email", "", "Administrator email (required)")
		password  = flag.String("password", "", "Administrator password (required)")
		firstName = flag.String("first-name", "", "First name")
		lastName  = flag.String("last-name", "", "Last name")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "Usage: create-admin -email <email> -password <password> [-first-name <name>] [-last-name <name>]")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.NewConnection(database.Config{Path: cfg.Database.Path})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	hash, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	userRepo := repositories.NewUserRepository(db.DB)
	user, err := userRepo.Create(*email, *firstName, *lastName, hash, true)
	if err != nil {
		log.Fatal("Failed to create administrator:", err)
	}

	fmt.Printf("Administrator created: %s (id %d)\n", user.Email, user.ID)
}
