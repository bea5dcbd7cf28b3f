package mmc

//go:generate mockery --name Logger --output ./mocks --outpkg mocks --filename logger.go --structname Logger

import (
	"errors"
	"fmt"
)

var (
	// ErrInfeasibleTarget is returned when the maximum wait time is below the
	// service time, which no number of servers can satisfy.
	ErrInfeasibleTarget = errors.New("maximum wait time is less than the service time")

	// ErrSearchExhausted is returned when no server count up to MaxServers
	// meets the wait-time target.
	ErrSearchExhausted = errors.New("reached max number of servers")
)

// NewPlanner creates a new instance of *Planner with all dependencies.
func NewPlanner(costs CostModel, log Logger) *Planner {
	return &Planner{
		costs: costs,
		log:   log,
	}
}

type (
	// Planner finds the minimum number of servers that keeps the expected
	// time in the system under a target, and prices the result.
	Planner struct {
		costs CostModel
		log   Logger
	}

	// CostModel is a linear monthly cost estimate: a fixed architecture cost
	// plus a variable cost per back-end server, both in dollars.
	CostModel struct {
		FixedMonthly     float64
		PerServerMonthly float64
	}

	// Logger writes debug logs for rejected candidate server counts.
	Logger interface {
		Debug(msg string)
	}
)

// Monthly returns the estimated monthly cost of running the given number of servers.
func (m CostModel) Monthly(servers int) float64 {
	return m.FixedMonthly + float64(servers)*m.PerServerMonthly
}

// FindMinimumServers returns the cheapest plan whose expected time in the
// system is strictly below maxWaitMinutes. The arrival rate is given per
// hour, the service time and the target in minutes.
//
// Adding servers never increases the time in the system, so candidates are
// tried in ascending order and the first hit is the minimum. The search
// fails with ErrInfeasibleTarget when the target is below the service time,
// and with ErrSearchExhausted when even MaxServers servers are not enough.
func (p *Planner) FindMinimumServers(arrivalRatePerHour, serviceTimeMinutes, maxWaitMinutes float64) (*Plan, error) {
	if maxWaitMinutes < serviceTimeMinutes {
		return nil, ErrInfeasibleTarget
	}

	arrivalRate := arrivalRatePerHour / 60

	for servers := 1; servers <= MaxServers; servers++ {
		res, err := Compute(arrivalRate, serviceTimeMinutes, servers)
		if err != nil {
			return nil, fmt.Errorf("failed to compute queue metrics: %w", err)
		}

		if res.TimeInSystem() < maxWaitMinutes {
			return &Plan{
				Result:      res,
				MonthlyCost: p.costs.Monthly(servers),
			}, nil
		}

		p.log.Debug(fmt.Sprintf("rejected candidate: %s", res))
	}

	return nil, ErrSearchExhausted
}
