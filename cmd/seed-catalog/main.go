package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/blanklearn/marketplace-backend/internal/catalog"
	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/database"
	"github.com/blanklearn/marketplace-backend/internal/docstore"
	"github.com/blanklearn/marketplace-backend/internal/logger"
	"github.com/blanklearn/marketplace-backend/internal/repository"
	"github.com/blanklearn/marketplace-backend/internal/service"
)

func main() {
	var seedCourses, seedTeachers bool
	flag.BoolVar(&seedCourses, "courses", true, "Upsert the sample courses into PostgreSQL")
	flag.BoolVar(&seedTeachers, "teachers", true, "Publish the sample teachers to the document store")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if seedCourses {
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()

		courseRepo := repository.NewCourseRepository(pool)
		courses := catalog.SampleCourses()

		fmt.Printf("=== Seeding %d Courses ===\n", len(courses))
		for i := range courses {
			if err := courseRepo.Upsert(ctx, i, &courses[i]); err != nil {
				log.Fatal().Err(err).Str("course_id", courses[i].ID).Msg("Failed to upsert course")
			}
			fmt.Printf("  %-9s %s\n", courses[i].ID, courses[i].Title)
		}
	}

	if seedTeachers {
		store, err := docstore.Open(ctx, docstore.Config{URL: cfg.DocStoreURL}, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Document store unavailable, set DOCSTORE_URL or pass -teachers=false")
		}
		defer store.Close()

		publisher := service.NewPublishService(repository.NewTeacherRepository(store, log), log)
		teachers := catalog.SampleTeachers()

		fmt.Printf("=== Publishing %d Teachers ===\n", len(teachers))
		n, err := publisher.PublishTeachers(ctx, teachers)
		if err != nil {
			log.Fatal().Err(err).Int("written", n).Msg("Failed to publish teachers")
		}
	}

	fmt.Println("Done.")
}
