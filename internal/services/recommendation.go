package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Emna-borji/tourismrep/internal/logger"
	"github.com/Emna-borji/tourismrep/internal/repos"
	"github.com/Emna-borji/tourismrep/internal/types"
)

const (
	// DefaultTopN is the per-type result cap when the caller does not ask
	// for a specific one.
	DefaultTopN = 3
	maxTopN     = 50

	recommendationKeyPrefix = "recommendations:"
	cohortModelKey          = "cohort_model"

	// searchWindow bounds how far back search events still influence
	// scoring.
	searchWindow = 30 * 24 * time.Hour
)

var ErrInvalidTopN = errors.New("top_n must be between 1 and 50")

// Cache is the small async-store surface the service needs. Get reports a
// miss with (false, nil); errors are downgraded to misses by the caller.
type Cache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Config carries the tunables of the recommendation computation.
type Config struct {
	ResultTTL         time.Duration
	CohortTTL         time.Duration
	CohortClusters    int
	CohortSampleLimit int
}

// DefaultConfig mirrors the production tuning: results live for ten
// minutes, the cohort model for an hour, three cohorts over the most
// recent ten thousand clicks.
func DefaultConfig() Config {
	return Config{
		ResultTTL:         600 * time.Second,
		CohortTTL:         3600 * time.Second,
		CohortClusters:    3,
		CohortSampleLimit: 10000,
	}
}

type RecommendationService interface {
	// Recommend returns the top-N entities per type for the user, serving
	// from cache when a fresh result exists.
	Recommend(ctx context.Context, userID uuid.UUID, topN int) (types.RecommendationSet, error)
}

type recommendationService struct {
	db       *gorm.DB
	log      *logger.Logger
	cache    Cache
	cfg      Config
	users    repos.UserRepo
	prefs    repos.PreferenceRepo
	catalog  repos.CatalogRepo
	circuits repos.CircuitRepo
	history  repos.CircuitHistoryRepo
	events   repos.EventRepo
}

func NewRecommendationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	cache Cache,
	cfg Config,
	users repos.UserRepo,
	prefs repos.PreferenceRepo,
	catalog repos.CatalogRepo,
	circuits repos.CircuitRepo,
	history repos.CircuitHistoryRepo,
	events repos.EventRepo,
) RecommendationService {
	svcLog := baseLog.With("service", "RecommendationService")
	return &recommendationService{
		db:       db,
		log:      svcLog,
		cache:    cache,
		cfg:      cfg,
		users:    users,
		prefs:    prefs,
		catalog:  catalog,
		circuits: circuits,
		history:  history,
		events:   events,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, userID uuid.UUID, topN int) (types.RecommendationSet, error) {
	if topN < 1 || topN > maxTopN {
		return nil, ErrInvalidTopN
	}

	cacheKey := recommendationKeyPrefix + userID.String()
	var cached types.RecommendationSet
	if s.cache != nil {
		hit, err := s.cache.Get(ctx, cacheKey, &cached)
		if err != nil {
			s.log.Warn("recommendation cache read failed, recomputing", "user_id", userID, "error", err)
		} else if hit {
			return cached, nil
		}
	}

	result, err := s.compute(ctx, userID, topN)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.cfg.ResultTTL); err != nil {
			s.log.Warn("recommendation cache write failed", "user_id", userID, "error", err)
		}
	}
	return result, nil
}

// compute runs the full two-pass scoring flow: circuits first, then every
// other type with the circuit-stop boost derived from the circuit ranking.
func (s *recommendationService) compute(ctx context.Context, userID uuid.UUID, topN int) (types.RecommendationSet, error) {
	sig, err := s.loadSignals(ctx, userID)
	if err != nil {
		return nil, err
	}
	cityIDs := sig.cityIDs()

	circuitPool, err := s.circuits.ByEndpoints(ctx, s.db, cityIDs)
	if err != nil {
		return nil, fmt.Errorf("load circuit candidates: %w", err)
	}
	circuitIDs := make([]uuid.UUID, 0, len(circuitPool))
	for _, c := range circuitPool {
		circuitIDs = append(circuitIDs, c.ID)
	}
	schedules, err := s.circuits.Schedules(ctx, s.db, circuitIDs)
	if err != nil {
		return nil, fmt.Errorf("load circuit schedules: %w", err)
	}
	bookedSchedules, err := s.circuits.Schedules(ctx, s.db, sig.bookings)
	if err != nil {
		return nil, fmt.Errorf("load booked circuit schedules: %w", err)
	}

	// The same bounded click sample backs both cohort training (when the
	// cached model expired) and same-cohort click counting.
	sample := s.globalClickSample(ctx)
	model := s.cohortAssignments(ctx, sample)
	cohortCounts := cohortClickCounts(sample, model, userID)

	result := make(types.RecommendationSet, len(types.AllEntityTypes))

	circuitModel := trainAffinityModel(s.log, sig, circuitPool)
	circuitRows := make([]types.RankedEntity, 0, len(circuitPool))
	for _, c := range circuitPool {
		score := s.baseScore(sig, c, schedules[c.ID], circuitModel, cohortCounts)
		circuitRows = append(circuitRows, rankedRow(c, score))
	}
	topCircuits := rankEntities(circuitRows, topN)
	result[types.EntityCircuit] = topCircuits

	topCircuitIDs := make([]uuid.UUID, 0, len(topCircuits))
	for _, row := range topCircuits {
		topCircuitIDs = append(topCircuitIDs, row.ID)
	}

	for _, typ := range types.AllEntityTypes {
		if typ == types.EntityCircuit {
			continue
		}
		pool, err := s.catalog.CandidatesByDestination(ctx, s.db, typ, cityIDs)
		if err != nil {
			return nil, fmt.Errorf("load %s candidates: %w", typ, err)
		}
		model := trainAffinityModel(s.log, sig, pool)
		rows := make([]types.RankedEntity, 0, len(pool))
		for _, c := range pool {
			score := s.baseScore(sig, c, nil, model, cohortCounts)
			score += circuitBoost(typ, c.ID, topCircuitIDs, schedules, sig.bookings, bookedSchedules)
			rows = append(rows, rankedRow(c, score))
		}
		result[typ] = rankEntities(rows, topN)
	}

	return result, nil
}

// baseScore fuses the per-candidate signals. The boost pass is applied by
// the caller because it depends on the circuit ranking.
func (s *recommendationService) baseScore(sig *userSignals, c types.Candidate, stops []types.CircuitStop, model *affinityModel, cohortCounts map[types.EntityKey]int) float64 {
	score := contentScore(sig, c, stops)
	score += behaviorScore(sig, c.Type, c.ID)
	score += reviewScore(sig, c.Type, c.ID)
	score += searchScore(sig, c)
	score += model.predict(affinityFeatures(sig, c))
	score += float64(cohortCounts[c.Key()] * cohortClickWeight)
	return score
}

// loadSignals gathers everything the scorers need. Identity, preferences
// and booking history are load-bearing and abort the request; interaction
// logs degrade to empty with a warning.
func (s *recommendationService) loadSignals(ctx context.Context, userID uuid.UUID) (*userSignals, error) {
	user, err := s.users.GetByID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("load user %s: %w", userID, err)
	}
	prefs, err := s.prefs.GetByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	sig := newUserSignals(user, prefs)

	bookings, err := s.history.GetByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("load circuit history: %w", err)
	}
	for _, booking := range bookings {
		if _, ok := sig.booked[booking.CircuitID]; ok {
			continue
		}
		sig.booked[booking.CircuitID] = struct{}{}
		sig.bookings = append(sig.bookings, booking.CircuitID)
	}

	clicks, err := s.events.ClicksByUser(ctx, s.db, userID)
	if err != nil {
		s.log.Warn("click history unavailable, scoring without it", "user_id", userID, "error", err)
	} else {
		sig.clicked = clickKeySet(clicks)
	}

	favorites, err := s.events.FavoritesByUser(ctx, s.db, userID)
	if err != nil {
		s.log.Warn("favorites unavailable, scoring without them", "user_id", userID, "error", err)
	} else {
		sig.favorited = favoriteKeySet(favorites)
	}

	ratings, err := s.events.AverageRatings(ctx, nil)
	if err != nil {
		s.log.Warn("review aggregates unavailable, using neutral defaults", "error", err)
	} else {
		sig.ratings = ratings
	}

	since := time.Now().Add(-searchWindow)
	for _, typ := range types.AllEntityTypes {
		searches, err := s.events.SearchesByUser(ctx, s.db, userID, typ, since)
		if err != nil {
			s.log.Warn("search history unavailable, scoring without it", "user_id", userID, "entity_type", typ, "error", err)
			continue
		}
		if tokens := searchTokens(searches); len(tokens) > 0 {
			sig.searchTerms[typ] = tokens
		}
	}

	return sig, nil
}

// globalClickSample fetches the bounded newest-first click sample. The
// cohort signal is optional, so failures degrade to an empty sample.
func (s *recommendationService) globalClickSample(ctx context.Context) []*types.ClickEvent {
	sample, err := s.events.RecentClicks(ctx, s.db, s.cfg.CohortSampleLimit)
	if err != nil {
		s.log.Warn("global click sample unavailable, skipping cohort signal", "error", err)
		return nil
	}
	return sample
}

// cohortAssignments serves the shared cohort model from cache, refitting
// from the click sample when it expired. Every failure path degrades to a
// nil model, which contributes zero.
func (s *recommendationService) cohortAssignments(ctx context.Context, sample []*types.ClickEvent) *cohortModel {
	if s.cache != nil {
		var cached cohortModel
		hit, err := s.cache.Get(ctx, cohortModelKey, &cached)
		if err != nil {
			s.log.Warn("cohort model cache read failed, refitting", "error", err)
		} else if hit {
			return &cached
		}
	}

	model, err := trainCohortModel(sample, s.cfg.CohortClusters)
	if err != nil {
		s.log.Warn("cohort clustering failed, skipping cohort signal", "error", err)
		return nil
	}
	if model == nil {
		return nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cohortModelKey, model, s.cfg.CohortTTL); err != nil {
			s.log.Warn("cohort model cache write failed", "error", err)
		}
	}
	return model
}
