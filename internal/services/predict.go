package services

import (
	"github.com/sajari/regression"

	"github.com/Emna-borji/tourismrep/internal/logger"
	"github.com/Emna-borji/tourismrep/internal/types"
)

const predictionScale = 10

// affinityModel is a per-request, per-entity-type linear regression over
// the current candidate pool. It is never cached or shared: each
// recommendation computation refits from scratch.
type affinityModel struct {
	reg *regression.Regression
}

// affinityFeatures is the feature vector used both for training and
// prediction: [price-or-0, behavior, review, search].
func affinityFeatures(sig *userSignals, c types.Candidate) []float64 {
	price := 0.0
	if c.Price != nil {
		price = *c.Price
	}
	return []float64{
		price,
		behaviorScore(sig, c.Type, c.ID),
		reviewScore(sig, c.Type, c.ID),
		searchScore(sig, c),
	}
}

// trainAffinityModel fits the pool with prior-click as the label. Pools of
// fewer than two candidates are skipped. A pool too small or too
// degenerate for the solver is treated as signal-unavailable and scores 0.
// Note the label is also folded into the behavior feature; kept as-is for
// parity with the original rankings.
func trainAffinityModel(log *logger.Logger, sig *userSignals, pool []types.Candidate) *affinityModel {
	if len(pool) < 2 {
		return nil
	}

	r := new(regression.Regression)
	r.SetObserved("clicked")
	r.SetVar(0, "price")
	r.SetVar(1, "behavior")
	r.SetVar(2, "review")
	r.SetVar(3, "search")

	for _, c := range pool {
		label := 0.0
		if _, ok := sig.clicked[c.Key()]; ok {
			label = 1
		}
		r.Train(regression.DataPoint(label, affinityFeatures(sig, c)))
	}

	if err := r.Run(); err != nil {
		if log != nil {
			log.Debug("affinity regression not fitted, contributing zero", "error", err)
		}
		return nil
	}
	return &affinityModel{reg: r}
}

func (m *affinityModel) predict(features []float64) float64 {
	if m == nil || m.reg == nil {
		return 0
	}
	value, err := m.reg.Predict(features)
	if err != nil {
		return 0
	}
	return value * predictionScale
}
