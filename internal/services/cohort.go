package services

import (
	"sort"

	"github.com/google/uuid"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/Emna-borji/tourismrep/internal/types"
)

// cohortClickWeight is applied per click from same-cohort users on the
// exact candidate.
const cohortClickWeight = 5

// cohortModel holds the cached outcome of clustering all users by their
// click co-occurrence pattern. A nil model means no click data was
// available; it contributes 0 everywhere.
type cohortModel struct {
	Assignments map[uuid.UUID]int `json:"assignments"`
}

// clusterOf falls back to cohort 0 for users the model has never seen.
func (m *cohortModel) clusterOf(userID uuid.UUID) int {
	if m == nil {
		return 0
	}
	return m.Assignments[userID]
}

type userObservation struct {
	userID uuid.UUID
	point  clusters.Coordinates
}

func (o userObservation) Coordinates() clusters.Coordinates { return o.point }

func (o userObservation) Distance(point clusters.Coordinates) float64 {
	return o.point.Distance(point)
}

// trainCohortModel clusters users by their per-(type, id) click-count
// vectors over the bounded global sample. Returns (nil, nil) when there is
// nothing to cluster: no clicks, or fewer distinct users than clusters.
func trainCohortModel(sample []*types.ClickEvent, k int) (*cohortModel, error) {
	if len(sample) == 0 || k < 1 {
		return nil, nil
	}

	perUser := make(map[uuid.UUID]map[types.EntityKey]float64)
	axisSet := make(map[types.EntityKey]struct{})
	for _, click := range sample {
		key := types.EntityKey{Type: click.EntityType, ID: click.EntityID}
		axisSet[key] = struct{}{}
		counts, ok := perUser[click.UserID]
		if !ok {
			counts = make(map[types.EntityKey]float64)
			perUser[click.UserID] = counts
		}
		counts[key]++
	}

	if len(perUser) < k {
		return nil, nil
	}

	// Stable axis and user ordering keeps the observation layout
	// reproducible between fits of the same sample.
	axes := make([]types.EntityKey, 0, len(axisSet))
	for key := range axisSet {
		axes = append(axes, key)
	}
	sort.Slice(axes, func(i, j int) bool {
		if axes[i].Type != axes[j].Type {
			return axes[i].Type < axes[j].Type
		}
		return axes[i].ID.String() < axes[j].ID.String()
	})

	userIDs := make([]uuid.UUID, 0, len(perUser))
	for id := range perUser {
		userIDs = append(userIDs, id)
	}
	sort.Slice(userIDs, func(i, j int) bool { return userIDs[i].String() < userIDs[j].String() })

	observations := make(clusters.Observations, 0, len(userIDs))
	for _, userID := range userIDs {
		point := make(clusters.Coordinates, len(axes))
		for i, axis := range axes {
			point[i] = perUser[userID][axis]
		}
		observations = append(observations, userObservation{userID: userID, point: point})
	}

	km := kmeans.New()
	partition, err := km.Partition(observations, k)
	if err != nil {
		return nil, err
	}

	assignments := make(map[uuid.UUID]int, len(userIDs))
	for idx, cluster := range partition {
		for _, obs := range cluster.Observations {
			if uo, ok := obs.(userObservation); ok {
				assignments[uo.userID] = idx
			}
		}
	}
	return &cohortModel{Assignments: assignments}, nil
}

// cohortClickCounts counts, per candidate, the sample clicks issued by
// users sharing the requesting user's cohort.
func cohortClickCounts(sample []*types.ClickEvent, model *cohortModel, userID uuid.UUID) map[types.EntityKey]int {
	if model == nil || len(sample) == 0 {
		return nil
	}
	mine := model.clusterOf(userID)

	counts := make(map[types.EntityKey]int)
	for _, click := range sample {
		cluster, ok := model.Assignments[click.UserID]
		if !ok || cluster != mine {
			continue
		}
		counts[types.EntityKey{Type: click.EntityType, ID: click.EntityID}]++
	}
	return counts
}
