package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/piwi3910/mixcalc/internal/model"
)

// EstimateExt is the file extension used for saved estimates.
const EstimateExt = ".mixcalc"

// SaveEstimate writes an estimate to a JSON file.
func SaveEstimate(path string, est model.Estimate) error {
	if err := writeJSON(path, est); err != nil {
		return fmt.Errorf("failed to save estimate: %w", err)
	}
	return nil
}

// LoadEstimate reads an estimate from a JSON file. Items saved without an
// ID are given one.
func LoadEstimate(path string) (model.Estimate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Estimate{}, fmt.Errorf("failed to read estimate: %w", err)
	}
	var est model.Estimate
	if err := json.Unmarshal(data, &est); err != nil {
		return model.Estimate{}, fmt.Errorf("failed to parse estimate: %w", err)
	}
	if est.Items == nil {
		est.Items = []model.EstimateItem{}
	}
	for i := range est.Items {
		if est.Items[i].ID == "" {
			est.Items[i].ID = uuid.New().String()[:8]
		}
	}
	if est.Additives == nil {
		est.Additives = []string{}
	}
	return est, nil
}

// SaveSnapshot writes an approved price snapshot to a JSON file.
func SaveSnapshot(path string, snap model.PriceSnapshot) error {
	if err := writeJSON(path, snap); err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
