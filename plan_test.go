package mmc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mmc "github.com/lec00q/aws-expenses"
	"github.com/lec00q/aws-expenses/mocks"
)

func TestLoadScenarios(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()

		path := filepath.Join(t.TempDir(), "scenarios.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		return path
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := mmc.LoadScenarios(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := mmc.LoadScenarios(writeFile(t, "{"))
		assert.Error(t, err)
	})

	t.Run("scenario without a name", func(t *testing.T) {
		_, err := mmc.LoadScenarios(writeFile(t, `[{"arrival_rate_per_hour": 10}]`))
		assert.ErrorContains(t, err, "name is required")
	})

	t.Run("positive case", func(t *testing.T) {
		scenarios, err := mmc.LoadScenarios(writeFile(t, `[
			{"name": "today", "arrival_rate_per_hour": 10, "service_time_minutes": 7, "max_wait_minutes": 10},
			{"name": "peak", "arrival_rate_per_hour": 30, "service_time_minutes": 7, "max_wait_minutes": 8}
		]`))
		require.NoError(t, err)

		assert.Equal(t, []mmc.Scenario{
			{Name: "today", ArrivalRatePerHour: 10, ServiceTimeMinutes: 7, MaxWaitMinutes: 10},
			{Name: "peak", ArrivalRatePerHour: 30, ServiceTimeMinutes: 7, MaxWaitMinutes: 8},
		}, scenarios)
	})
}

func TestPlanner_Rank(t *testing.T) {
	costs := mmc.CostModel{FixedMonthly: 70, PerServerMonthly: 41}

	t.Run("feasible plans come first, cheapest to most expensive", func(t *testing.T) {
		log := mocks.NewLogger(t)
		log.On("Debug", mock.AnythingOfType("string"))

		planner := mmc.NewPlanner(costs, log)

		ranked := planner.Rank([]mmc.Scenario{
			{Name: "peak", ArrivalRatePerHour: 30, ServiceTimeMinutes: 7, MaxWaitMinutes: 8},
			{Name: "flood", ArrivalRatePerHour: 1000000, ServiceTimeMinutes: 7, MaxWaitMinutes: 10},
			{Name: "today", ArrivalRatePerHour: 10, ServiceTimeMinutes: 7, MaxWaitMinutes: 10},
			{Name: "strict", ArrivalRatePerHour: 10, ServiceTimeMinutes: 7, MaxWaitMinutes: 5},
		})
		require.Len(t, ranked, 4)

		assert.Equal(t, "today", ranked[0].Scenario.Name)
		assert.Equal(t, 3, ranked[0].Plan.Result.Servers())
		assert.Equal(t, 193.0, ranked[0].Plan.MonthlyCost)

		assert.Equal(t, "peak", ranked[1].Scenario.Name)
		assert.Equal(t, 6, ranked[1].Plan.Result.Servers())
		assert.Equal(t, 316.0, ranked[1].Plan.MonthlyCost)

		// Unsatisfiable scenarios follow in input order, carrying the reason.
		assert.Equal(t, "flood", ranked[2].Scenario.Name)
		assert.Nil(t, ranked[2].Plan)
		assert.ErrorIs(t, ranked[2].Err, mmc.ErrSearchExhausted)

		assert.Equal(t, "strict", ranked[3].Scenario.Name)
		assert.Nil(t, ranked[3].Plan)
		assert.ErrorIs(t, ranked[3].Err, mmc.ErrInfeasibleTarget)
	})

	t.Run("equal costs are ordered by name", func(t *testing.T) {
		planner := mmc.NewPlanner(costs, mocks.NewLogger(t))

		ranked := planner.Rank([]mmc.Scenario{
			{Name: "b", ArrivalRatePerHour: 0, ServiceTimeMinutes: 7, MaxWaitMinutes: 10},
			{Name: "a", ArrivalRatePerHour: 0, ServiceTimeMinutes: 7, MaxWaitMinutes: 10},
		})
		require.Len(t, ranked, 2)

		assert.Equal(t, "a", ranked[0].Scenario.Name)
		assert.Equal(t, "b", ranked[1].Scenario.Name)
	})
}
