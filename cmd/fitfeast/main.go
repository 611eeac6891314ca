package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"fitfeast/internal/app"
	"fitfeast/internal/clipper"
	"fitfeast/internal/config"
	"fitfeast/internal/database"
)

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	application := app.NewFromDB(db, clipper.NewClipper(nil))

	switch os.Args[1] {
	case "seed":
		requireArgs(3, "seed <file.yaml>")
		res, err := application.SeedCatalog(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Seeding failed: %v", err)
		}
		fmt.Printf("Seeded %d ingredients and %d recipes.\n", res.Ingredients, res.Recipes)
	case "import":
		requireArgs(3, "import <url>")
		rec, err := application.ImportRecipe(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		fmt.Printf("Imported %q (%s) with %d ingredients.\n", rec.Name, rec.ID, len(rec.Requirements))
	case "suggest":
		requireArgs(3, "suggest <owner>")
		s, err := application.Suggestions(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Suggestions failed: %v", err)
		}
		fmt.Println("Makeable:")
		for _, r := range s.Makeable {
			fmt.Printf("  - %s\n", r.Name)
		}
		fmt.Println("Near misses:")
		for _, nm := range s.NearMiss {
			fmt.Printf("  - %s (missing %d)\n", nm.Recipe.Name, len(nm.MissingIngredients))
			for _, ing := range nm.MissingIngredients {
				fmt.Printf("      * %s\n", ing.Name)
			}
		}
	case "export":
		requireArgs(4, "export <owner> <file.xlsx>")
		if err := application.ExportPantry(ctx, os.Args[2], os.Args[3]); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		fmt.Printf("Wrote %s\n", os.Args[3])
	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		affected, err := application.Metrics().Cleanup(ctx, *days)
		if err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Printf("Successfully removed %d old metric records.\n", affected)
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func requireArgs(n int, usage string) {
	if len(os.Args) < n {
		fmt.Printf("Usage: fitfeast %s\n", usage)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: fitfeast <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed <file.yaml>            Load ingredients and recipes into the catalog")
	fmt.Println("  import <url>                Import a recipe from a web page")
	fmt.Println("  suggest <owner>             Show makeable and near-miss recipes")
	fmt.Println("  export <owner> <file.xlsx>  Write the pantry report to a spreadsheet")
	fmt.Println("  metrics-cleanup [-days N]   Remove old suggestion run records")
}
