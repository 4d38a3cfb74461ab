package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hireloop/radar/internal/ai/embeddings"
	"github.com/hireloop/radar/internal/ai/llm"
	"github.com/hireloop/radar/pkg/logx"
	"github.com/hireloop/radar/recruitment/candidate/candidateapi"
	"github.com/hireloop/radar/recruitment/candidate/candidateinfra"
	"github.com/hireloop/radar/recruitment/candidate/candidatesrv"
	"github.com/hireloop/radar/recruitment/search"
	"github.com/hireloop/radar/recruitment/search/searchapi"
	"github.com/hireloop/radar/recruitment/search/searchinfra"
	"github.com/hireloop/radar/recruitment/search/searchsrv"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	// Infrastructure
	DB    *sqlx.DB
	Redis *redis.Client

	// AI clients, nil when no API key is configured
	LLMClient  *llm.Client
	Embeddings *embeddings.Generator

	// Services
	CandidateService *candidatesrv.CandidateService
	SearchService    *searchsrv.SearchService

	// API Handlers
	CandidateHandlers *candidateapi.Handlers
	SearchHandlers    *searchapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer() *Container {
	c := &Container{}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPass := os.Getenv("DB_PASS")
	dbName := os.Getenv("DB_NAME")
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPass, dbName)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection. A dead Redis only costs the requirement
	// cache, so it is a warning, not a startup failure.
	redisAddr := os.Getenv("REDIS_ADDR")
	redisPass := os.Getenv("REDIS_PASS")
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. OpenAI clients. Without a key the server still runs, every AI
	// path degrades to its deterministic fallback.
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		logx.Warn("OPENAI_API_KEY is not set, running with deterministic parsing and text similarity only")
		return
	}

	c.LLMClient = llm.NewClient(apiKey, os.Getenv("OPENAI_MODEL"))
	c.Embeddings = embeddings.NewGenerator(apiKey)
}

func (c *Container) initServices() {
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	requirementCache := searchinfra.NewRedisRequirementCache(c.Redis, cacheTTLFromEnv())

	// The concrete AI clients only get wired in when they exist; a nil
	// concrete pointer must not end up inside a non-nil interface.
	var embedder candidatesrv.Embedder
	var searchEmbedder search.Embedder
	var generator search.TextGenerator
	if c.Embeddings != nil {
		embedder = c.Embeddings
		searchEmbedder = c.Embeddings
	}
	if c.LLMClient != nil {
		generator = c.LLMClient
	}

	c.CandidateService = candidatesrv.NewCandidateService(candidateRepo, embedder)
	c.SearchService = searchsrv.NewSearchService(
		c.CandidateService,
		generator,
		searchEmbedder,
		requirementCache,
		candidateRepo,
		search.DefaultTables(),
	)

	c.CandidateHandlers = candidateapi.NewHandlers(c.CandidateService)
	c.SearchHandlers = searchapi.NewHandlers(c.SearchService)
}

func cacheTTLFromEnv() time.Duration {
	raw := os.Getenv("REQUIREMENT_CACHE_TTL")
	if raw == "" {
		return searchinfra.DefaultCacheTTL
	}

	ttl, err := time.ParseDuration(raw)
	if err != nil {
		logx.Warnf("Invalid REQUIREMENT_CACHE_TTL %q, using default: %v", raw, err)
		return searchinfra.DefaultCacheTTL
	}
	return ttl
}
