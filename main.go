package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"venuefinder-backend/config"
	"venuefinder-backend/models"
	"venuefinder-backend/routes"
	"venuefinder-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Venue{},
		&models.VenueImage{},
		&models.Amenity{},
		&models.VenueAmenity{},
		&models.SearchHistory{},
	)
}

func main() {
	if len(os.Args) > 1 {
		runCommand(os.Args[1], os.Args[2:])
		return
	}

	config.ConnectRedis()
	if config.RedisClient != nil {
		services.Sessions = services.NewRedisSessionStore(config.RedisClient)
	} else {
		services.Sessions = services.NewMemorySessionStore()
	}

	cleanup := services.NewCleanupService(config.DB)
	cleanup.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

// runCommand handles the maintenance subcommands: `seed` installs the
// category/amenity catalog, `fetch` imports venues from OpenStreetMap.
func runCommand(name string, args []string) {
	switch name {
	case "seed":
		seedService := services.SeedService{DB: config.DB}
		if err := seedService.Run(); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
	case "fetch":
		fetchFlags := flag.NewFlagSet("fetch", flag.ExitOnError)
		city := fetchFlags.String("city", "", "city to import venues for")
		category := fetchFlags.String("category", "", "category slug to import")
		limit := fetchFlags.Int("limit", 50, "max results per tag kind")
		fetchFlags.Parse(args)

		if *city == "" || *category == "" {
			log.Fatal("fetch requires --city and --category")
		}

		importService := services.NewImportService(config.DB)
		count, err := importService.FetchVenues(*city, *category, *limit)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}
		log.Printf("Saved %d %ss in %s", count, *category, *city)
	default:
		log.Fatalf("Unknown command %q (expected seed or fetch)", name)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
