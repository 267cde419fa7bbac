package services

import (
	"sort"

	"github.com/Emna-borji/tourismrep/internal/types"
)

// rankEntities sorts by composite score descending and truncates to topN.
// Equal scores tie-break on ascending entity id so the ordering is
// deterministic rather than inherited from input order.
func rankEntities(rows []types.RankedEntity, topN int) []types.RankedEntity {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		return rows[i].ID.String() < rows[j].ID.String()
	})
	if topN >= 0 && len(rows) > topN {
		rows = rows[:topN]
	}
	return rows
}

func rankedRow(c types.Candidate, score float64) types.RankedEntity {
	return types.RankedEntity{
		ID:            c.ID,
		Name:          c.Name,
		Destination:   c.DestinationName,
		DepartureCity: c.DepartureCityName,
		ArrivalCity:   c.ArrivalCityName,
		CircuitCode:   c.CircuitCode,
		Price:         c.Price,
		Stars:         c.Stars,
		Forks:         c.Forks,
		Date:          c.Date,
		DurationDays:  c.DurationDays,
		Score:         score,
	}
}
