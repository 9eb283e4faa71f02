package main

import (
	"flag"
	"log"
	"time"

	"veggie-dashboard/config"
	"veggie-dashboard/dashboard"
	"veggie-dashboard/fetcher"
	"veggie-dashboard/models"
	"veggie-dashboard/parser"
	"veggie-dashboard/scraper"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; environment overrides are applied by config
	godotenv.Load()

	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	svc := scraper.NewService(
		fetcher.NewCollyFetcher(),
		parser.NewParser(cfg.Source.TableSelector),
		cfg.Source.URL,
	)

	// One fetch at startup; the dashboard serves this dataset for the
	// lifetime of the process.
	log.Printf("Fetching vegetable prices from %s\n", cfg.Source.URL)
	dataset, err := svc.Scrape()
	if err != nil {
		log.Printf("Scrape failed, serving an empty dashboard: %v\n", err)
		dataset = models.Dataset{}
	}
	log.Printf("Scraped %d price records\n", len(dataset))

	srv := dashboard.NewServer(dataset, time.Now(), cfg)
	log.Printf("Dashboard listening on %s\n", cfg.Server.Addr)
	if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
		log.Fatalf("Server failed: %v\n", err)
	}
}
