package main

import (
  "fmt"
  "os"
  "time"

  "github.com/joho/godotenv"

  "github.com/Emna-borji/tourismrep/internal/clients/redis"
  "github.com/Emna-borji/tourismrep/internal/db"
  "github.com/Emna-borji/tourismrep/internal/handlers"
  "github.com/Emna-borji/tourismrep/internal/logger"
  "github.com/Emna-borji/tourismrep/internal/repos"
  "github.com/Emna-borji/tourismrep/internal/server"
  "github.com/Emna-borji/tourismrep/internal/services"
  "github.com/Emna-borji/tourismrep/internal/utils"
)

func main() {
  _ = godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Env
  log.Info("Loading environment variables from main...")
  resultTTL := utils.GetEnvAsInt("RECO_CACHE_TTL", 600, log)
  cohortTTL := utils.GetEnvAsInt("COHORT_CACHE_TTL", 3600, log)
  cohortClusters := utils.GetEnvAsInt("COHORT_CLUSTERS", 3, log)
  cohortSampleLimit := utils.GetEnvAsInt("COHORT_SAMPLE_LIMIT", 10000, log)

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Redis
  cache, err := redis.NewCache(log)
  if err != nil {
    log.Warn("Redis init failed, serving without cache", "error", err)
    cache = nil
  } else {
    defer cache.Close()
  }

  // Repos
  log.Info("Setting up Repos from main...")
  userRepo := repos.NewUserRepo(thePG, log)
  preferenceRepo := repos.NewPreferenceRepo(thePG, log)
  catalogRepo := repos.NewCatalogRepo(thePG, log)
  circuitRepo := repos.NewCircuitRepo(thePG, log)
  circuitHistoryRepo := repos.NewCircuitHistoryRepo(thePG, log)
  eventRepo := repos.NewEventRepo(thePG, log)

  // Services
  log.Info("Setting up Services from main...")
  recoCfg := services.Config{
    ResultTTL:         time.Duration(resultTTL) * time.Second,
    CohortTTL:         time.Duration(cohortTTL) * time.Second,
    CohortClusters:    cohortClusters,
    CohortSampleLimit: cohortSampleLimit,
  }
  var recoCache services.Cache
  if cache != nil {
    recoCache = cache
  }
  recommendationService := services.NewRecommendationService(
    thePG,
    log,
    recoCache,
    recoCfg,
    userRepo,
    preferenceRepo,
    catalogRepo,
    circuitRepo,
    circuitHistoryRepo,
    eventRepo,
  )

  // Handlers
  log.Info("Setting up handlers from main...")
  recommendationHandler := handlers.NewRecommendationHandler(log, recommendationService)

  // Router
  log.Info("Setting up router from main...")
  router := server.NewRouter(server.RouterConfig{
    RecommendationHandler: recommendationHandler,
  })

  port := utils.GetEnv("PORT", "8080", log)
  fmt.Printf("Server listening on :%s\n", port)
  if err := router.Run(":" + port); err != nil {
    log.Error("Server failed", "error", err)
  }
}
