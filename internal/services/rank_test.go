package services

import (
	"testing"

	"github.com/google/uuid"

	"github.com/Emna-borji/tourismrep/internal/types"
)

func TestRankEntities_OrdersByScoreAndTruncates(t *testing.T) {
	rows := make([]types.RankedEntity, 0, 10)
	for i := 0; i < 10; i++ {
		rows = append(rows, types.RankedEntity{ID: uuid.New(), Score: float64(i)})
	}

	top := rankEntities(rows, 3)
	if len(top) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(top))
	}
	if top[0].Score != 9 || top[1].Score != 8 || top[2].Score != 7 {
		t.Fatalf("unexpected order: %v %v %v", top[0].Score, top[1].Score, top[2].Score)
	}
}

func TestRankEntities_TieBreaksOnID(t *testing.T) {
	a := types.RankedEntity{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Score: 5}
	b := types.RankedEntity{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Score: 5}

	top := rankEntities([]types.RankedEntity{a, b}, 2)
	if top[0].ID != b.ID {
		t.Fatalf("expected lower id first on tie, got %s", top[0].ID)
	}
}

func TestRankEntities_FewerCandidatesThanN(t *testing.T) {
	rows := []types.RankedEntity{{ID: uuid.New(), Score: 1}}
	top := rankEntities(rows, 3)
	if len(top) != 1 {
		t.Fatalf("expected 1 row, got %d", len(top))
	}
}

func TestRankedRow_CarriesCandidateFields(t *testing.T) {
	price := 120.0
	c := types.Candidate{
		Type:            types.EntityHotel,
		ID:              uuid.New(),
		Name:            "Medina Palace",
		DestinationName: "Sousse",
		Price:           &price,
		Stars:           4,
	}
	row := rankedRow(c, 21.5)
	if row.ID != c.ID || row.Name != "Medina Palace" || row.Destination != "Sousse" {
		t.Fatalf("unexpected row: %#v", row)
	}
	if row.Price == nil || *row.Price != 120 || row.Stars != 4 || row.Score != 21.5 {
		t.Fatalf("unexpected row fields: %#v", row)
	}
}
