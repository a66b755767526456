// Package config loads and validates a PlanInput from a YAML file, grounded
// on the teacher's internal/config/input.go InputParser.LoadFromFile.
package config

import (
	"fmt"
	"os"

	"github.com/retireplan/engine/internal/domain"
	"github.com/retireplan/engine/internal/simulation"
	"gopkg.in/yaml.v3"
)

// LoadPlanInput reads and parses a PlanInput from a YAML file and validates
// it via simulation.ValidatePlanInput before returning.
func LoadPlanInput(path string) (*domain.PlanInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var plan domain.PlanInput
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := simulation.ValidatePlanInput(&plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

// ValidatePlanInput re-exports simulation.ValidatePlanInput so callers that
// only need validation (e.g. the CLI's `validate` subcommand) don't need to
// import internal/simulation directly.
func ValidatePlanInput(plan *domain.PlanInput) error {
	return simulation.ValidatePlanInput(plan)
}
