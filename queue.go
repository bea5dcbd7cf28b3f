// Package mmc computes steady-state metrics of M/M/c queues: Poisson
// arrivals, exponentially distributed service times, c parallel servers, an
// unbounded waiting line and an unbounded population. On top of the model it
// provides a capacity planner that finds the smallest server count meeting a
// latency target and prices it with a simple monthly cost model.
//
// http://en.wikipedia.org/wiki/M/M/c_queue
package mmc

import (
	"fmt"
	"math"
)

// MaxServers is the largest supported number of parallel servers.
const MaxServers = 150

var (
	// ErrInvalidServerCount is returned when the server count is outside [1, MaxServers].
	ErrInvalidServerCount = fmt.Errorf("server count must be between 1 and %d, inclusive", MaxServers)

	// ErrInvalidRate is returned when the arrival rate or the service time is negative.
	ErrInvalidRate = fmt.Errorf("arrival rate and service time must be 0 and over")
)

// Compute returns the steady-state metrics of an M/M/c queue with the given
// arrival rate, mean service time and number of servers. Rates and times must
// share one time unit.
//
// A zero arrival rate (or a zero service time) yields an idle system: no
// waiting, time in system equal to the service time. Utilization of 1 or
// above yields the saturated result with all derived metrics +Inf, as does
// numeric overflow while evaluating the Erlang-C terms for large server
// counts.
func Compute(arrivalRate, serviceTime float64, servers int) (*Result, error) {
	if servers < 1 || servers > MaxServers {
		return nil, ErrInvalidServerCount
	}

	if arrivalRate < 0 || serviceTime < 0 {
		return nil, ErrInvalidRate
	}

	res := &Result{
		arrivalRate: arrivalRate,
		serviceRate: 1 / serviceTime, // +Inf when serviceTime == 0
		servers:     servers,
	}
	res.utilization = arrivalRate / res.serviceRate / float64(servers)

	if res.utilization == 0 {
		res.timeInSystem = serviceTime
		return res, nil
	}

	if res.utilization >= 1 {
		return saturated(res), nil
	}

	// Erlang-C probability that an arrival finds all servers busy:
	//   crc / (sum * denom + crc)
	// evaluated as crc / (sum + crc/denom) / denom to keep the intermediate
	// terms small.
	offered := float64(servers) * res.utilization

	crc := math.Pow(offered, float64(servers))
	if math.IsInf(crc, 1) {
		// The offered load is too large to represent; the queue is
		// indistinguishable from a saturated one.
		return saturated(res), nil
	}

	sum, term := 1.0, 1.0
	for i := 1; i < servers; i++ {
		term *= offered / float64(i)
		sum += term
	}

	denom := factorial(servers) * (1 - res.utilization)
	erlangC := crc / (sum + crc/denom) / denom

	res.numWaiting = erlangC * res.utilization / (1 - res.utilization)
	res.waitTime = res.numWaiting / arrivalRate
	res.timeInSystem = res.waitTime + serviceTime
	res.numInSystem = arrivalRate * res.timeInSystem

	return res, nil
}

func saturated(res *Result) *Result {
	res.waitTime = math.Inf(1)
	res.timeInSystem = math.Inf(1)
	res.numWaiting = math.Inf(1)
	res.numInSystem = math.Inf(1)

	return res
}

// factorial stays finite for n <= MaxServers (150! ~ 5.7e262).
func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}

	return result
}
