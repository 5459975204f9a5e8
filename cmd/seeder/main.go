package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hrsight/employees-api/internal/bootstrap"
	"github.com/hrsight/employees-api/internal/database"
	"github.com/hrsight/employees-api/internal/logger"
)

func main() {
	// Define flags
	action := flag.String("action", "seed", "Action to perform: seed, clear")
	preset := flag.String("preset", "large", "Data preset: small, medium, large, xlarge")
	employees := flag.Int("employees", 0, "Number of employees (overrides preset)")

	flag.Parse()

	ctx := context.Background()

	fmt.Println("🚀 Employee Data Seeder")
	fmt.Println(strings.Repeat("=", 50))

	// Initialize app
	fmt.Println("📡 Initializing application...")
	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		logger.ErrorLog(ctx, "Failed to initialize application: %v", err)
		log.Fatal(err)
	}

	// Get database connection
	db := app.DB
	if db == nil {
		logger.ErrorLog(ctx, "Database connection is nil")
		log.Fatal("Database connection is nil")
	}

	// Create seeder
	seeder := database.NewDataSeeder(db)

	// Execute action
	switch *action {
	case "seed":
		performSeed(ctx, seeder, preset, employees)

	case "clear":
		performClear(ctx, seeder)

	default:
		fmt.Printf("❌ Unknown action: %s\n", *action)
		flag.PrintDefaults()
	}

	fmt.Println("\n✅ Done!")
}

func performSeed(ctx context.Context, seeder *database.DataSeeder, preset *string, employees *int) {
	var numEmployees int

	// Determine configuration
	if *employees > 0 {
		// Use custom value
		numEmployees = *employees
		fmt.Printf("📊 Using custom configuration: %d employees\n", numEmployees)
	} else {
		// Use preset
		presetConfig := database.SeedPreset(*preset)
		numEmployees = database.GetPresetConfig(presetConfig)
		fmt.Printf("📊 Using preset: %s (%d employees)\n", *preset, numEmployees)
	}

	// Perform seeding
	if err := seeder.SeedData(ctx, numEmployees); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}

func performClear(ctx context.Context, seeder *database.DataSeeder) {
	fmt.Println("⚠️  This will delete all employee data!")
	fmt.Print("Continue? (yes/no): ")

	var response string
	fmt.Scanln(&response)

	if response == "yes" {
		if err := seeder.ClearData(ctx); err != nil {
			log.Fatalf("❌ Clear failed: %v", err)
		}
	} else {
		fmt.Println("Cancelled.")
	}
}
