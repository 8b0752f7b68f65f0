package main

import (
	"context"
	"log"
	"time"

	"codecrest-backend/internal/casestudies"
	"codecrest-backend/internal/config"
	"codecrest-backend/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(context.Background())

	if err := db.EnsureIndexes(ctx, cols); err != nil {
		log.Fatal(err)
	}

	repo := casestudies.NewRepository(cols.CaseStudies)
	service := casestudies.NewService(repo, cfg.Timezone)

	result := service.SeedLegacy(ctx, casestudies.LegacyDataset)
	for _, seedErr := range result.Errors {
		log.Printf("seed error for %q: %s", seedErr.Title, seedErr.Message)
	}
	log.Printf("seed completed: added=%d skipped=%d errors=%d", result.Added, result.Skipped, len(result.Errors))
}
