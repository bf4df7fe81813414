// Command tmdb-seeder wipes the catalogue and refills it from the TMDb
// API. It is a one-shot tool: the first failure aborts the whole run so
// a half-seeded catalogue is always noticed.
package main

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhi1440/RateMyMovieAPP/internal/domain"
	"github.com/abhi1440/RateMyMovieAPP/internal/migrations"
	"github.com/abhi1440/RateMyMovieAPP/internal/repository"
	"github.com/abhi1440/RateMyMovieAPP/internal/tmdb"
	"github.com/abhi1440/RateMyMovieAPP/pkg/config"
	"github.com/abhi1440/RateMyMovieAPP/pkg/database"
	"github.com/abhi1440/RateMyMovieAPP/pkg/logger"
)

// Top billed cast entries carried over per movie.
const castLimit = 3

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.TMDb.APIKey == "" {
		log.Fatal("TMDB_API_KEY is required")
	}

	if err := logger.Init(&logger.Config{
		Level:       "info",
		ServiceName: "tmdb-seeder",
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLog := logger.Get()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbCfg := database.DefaultPostgresConfig()
	dbCfg.Host = cfg.Database.Host
	dbCfg.Port = cfg.Database.Port
	dbCfg.User = cfg.Database.User
	dbCfg.Password = cfg.Database.Password
	dbCfg.Database = cfg.Database.DBName
	dbCfg.SSLMode = cfg.Database.SSLMode

	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()

	if err := migrations.Up(ctx, db.Pool()); err != nil {
		appLog.Fatal(fmt.Sprintf("Migrations failed: %v", err))
	}

	movieRepo := repository.NewPostgresMovieRepository(db.Pool())
	genreRepo := repository.NewPostgresGenreRepository(db.Pool())
	client := tmdb.NewClient(tmdb.Config{
		APIKey:    cfg.TMDb.APIKey,
		BaseURL:   cfg.TMDb.BaseURL,
		ImageBase: cfg.TMDb.ImageBase,
		Timeout:   cfg.TMDb.Timeout,
	})

	if err := seed(ctx, appLog, client, movieRepo, genreRepo, cfg.TMDb.MovieLimit); err != nil {
		appLog.Fatal(fmt.Sprintf("Seeding aborted: %v", err))
	}
	appLog.Info("Seeding complete")
}

func seed(
	ctx context.Context,
	appLog *logger.Logger,
	client *tmdb.Client,
	movieRepo repository.MovieRepository,
	genreRepo repository.GenreRepository,
	movieLimit int,
) error {
	// Start from a clean slate; movies first, they reference genres
	if err := movieRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("wipe movies: %w", err)
	}
	if err := genreRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("wipe genres: %w", err)
	}

	tmdbGenres, err := client.Genres(ctx)
	if err != nil {
		return fmt.Errorf("fetch genres: %w", err)
	}

	genresByTMDbID := make(map[int]*domain.Genre, len(tmdbGenres))
	for _, g := range tmdbGenres {
		genre := &domain.Genre{
			ID:        uuid.New().String(),
			TMDbID:    g.ID,
			Name:      g.Name,
			CreatedAt: time.Now(),
		}
		if err := genreRepo.Create(ctx, genre); err != nil {
			return fmt.Errorf("store genre %q: %w", g.Name, err)
		}
		genresByTMDbID[g.ID] = genre
	}
	appLog.Info(fmt.Sprintf("Seeded %d genres", len(tmdbGenres)))

	popular, err := client.Popular(ctx, 1)
	if err != nil {
		return fmt.Errorf("fetch popular movies: %w", err)
	}
	if movieLimit > 0 && len(popular) > movieLimit {
		popular = popular[:movieLimit]
	}

	for _, m := range popular {
		cast, err := client.Cast(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("fetch credits for %q: %w", m.Title, err)
		}
		names := make([]string, 0, castLimit)
		for _, member := range cast {
			if len(names) == castLimit {
				break
			}
			names = append(names, member.Name)
		}

		var genreID string
		if len(m.GenreIDs) > 0 {
			if genre, ok := genresByTMDbID[m.GenreIDs[0]]; ok {
				genreID = genre.ID
			}
		}

		now := time.Now()
		movie := &domain.Movie{
			ID:        uuid.New().String(),
			TMDbID:    m.ID,
			Name:      m.Title,
			Image:     client.ImageURL(m.PosterPath),
			Year:      releaseYear(m.ReleaseDate),
			GenreID:   genreID,
			Detail:    m.Overview,
			Cast:      names,
			Rating:    m.VoteAverage,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := movieRepo.Create(ctx, movie); err != nil {
			return fmt.Errorf("store movie %q: %w", m.Title, err)
		}
		appLog.Info("Seeded movie", zap.String("name", movie.Name), zap.Int("year", movie.Year))
	}

	return nil
}

// releaseYear extracts the year from a TMDb release date (2006-01-02)
func releaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
