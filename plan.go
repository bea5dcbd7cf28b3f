package mmc

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/riabininkf/gox/container"
)

type (
	// Plan is a feasible sizing for one workload: the queue metrics at the
	// chosen server count and the estimated monthly cost.
	Plan struct {
		Result      *Result
		MonthlyCost float64
	}

	// Scenario is a named what-if workload to size and price.
	Scenario struct {
		Name               string  `json:"name"`
		ArrivalRatePerHour float64 `json:"arrival_rate_per_hour"`
		ServiceTimeMinutes float64 `json:"service_time_minutes"`
		MaxWaitMinutes     float64 `json:"max_wait_minutes"`
	}

	// RankedPlan is the outcome of sizing one scenario. Plan is nil when the
	// scenario could not be satisfied, with the reason in Err.
	RankedPlan struct {
		Scenario Scenario
		Plan     *Plan
		Err      error
	}
)

// LoadScenarios reads and parses a JSON file with what-if scenarios.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenarios file: %w", err)
	}

	var scenarios []Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("failed to parse scenarios file: %w", err)
	}

	for i, s := range scenarios {
		if s.Name == "" {
			return nil, fmt.Errorf("scenario %d: name is required", i)
		}
	}

	return scenarios, nil
}

// Rank sizes every scenario and returns the outcomes with feasible plans
// first, ordered from cheapest to most expensive. Scenarios that cannot be
// satisfied follow in input order, each carrying its error.
func (p *Planner) Rank(scenarios []Scenario) []RankedPlan {
	heap := container.NewHeap[RankedPlan](func(a, b RankedPlan) bool {
		if a.Plan.MonthlyCost != b.Plan.MonthlyCost {
			return a.Plan.MonthlyCost < b.Plan.MonthlyCost
		}

		return a.Scenario.Name < b.Scenario.Name
	})

	infeasible := make([]RankedPlan, 0)

	for _, scenario := range scenarios {
		plan, err := p.FindMinimumServers(
			scenario.ArrivalRatePerHour,
			scenario.ServiceTimeMinutes,
			scenario.MaxWaitMinutes,
		)
		if err != nil {
			infeasible = append(infeasible, RankedPlan{Scenario: scenario, Err: err})
			continue
		}

		heap.Push(RankedPlan{Scenario: scenario, Plan: plan})
	}

	ranked := make([]RankedPlan, 0, len(scenarios))
	for {
		entry, ok := heap.Pop()
		if !ok {
			break
		}

		ranked = append(ranked, entry)
	}

	return append(ranked, infeasible...)
}
