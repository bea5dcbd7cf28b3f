package mmc

import "fmt"

// Result holds the steady-state metrics of an M/M/c queue. A Result is
// computed once by Compute and never mutated afterwards.
type Result struct {
	arrivalRate float64
	serviceRate float64
	servers     int

	utilization  float64
	waitTime     float64
	timeInSystem float64
	numWaiting   float64
	numInSystem  float64
}

// ArrivalRate returns the arrival rate the result was computed for,
// in customers per unit time.
func (r *Result) ArrivalRate() float64 {
	return r.arrivalRate
}

// ServiceRate returns the service rate of a single server, i.e. the inverse
// of the mean service time. It is +Inf when the service time is zero.
func (r *Result) ServiceRate() float64 {
	return r.serviceRate
}

// Servers returns the number of parallel servers.
func (r *Result) Servers() int {
	return r.servers
}

// Utilization returns the fraction of server capacity in use.
// A value of 1 or above means the system is saturated.
func (r *Result) Utilization() float64 {
	return r.utilization
}

// WaitTime returns the mean time a customer spends waiting before service
// begins. It is +Inf when the system is saturated.
func (r *Result) WaitTime() float64 {
	return r.waitTime
}

// TimeInSystem returns the mean time a customer spends in the system,
// waiting plus being served. It is +Inf when the system is saturated.
func (r *Result) TimeInSystem() float64 {
	return r.timeInSystem
}

// NumWaiting returns the mean number of customers waiting in the queue,
// not counting those in service. It is +Inf when the system is saturated.
func (r *Result) NumWaiting() float64 {
	return r.numWaiting
}

// NumInSystem returns the mean number of customers in the system, waiting
// or in service. It is +Inf when the system is saturated.
func (r *Result) NumInSystem() float64 {
	return r.numInSystem
}

// Saturated reports whether the queue grows without bound, i.e. the
// utilization is 1 or above.
func (r *Result) Saturated() bool {
	return r.utilization >= 1
}

// String returns a single-line debug representation of the result.
func (r *Result) String() string {
	return fmt.Sprintf(
		"arr=%.3f, dep=%.3f, c=%d, util=%.3f, TmQue=%.3f, TmSys=%.3f, NmQue=%.3f, NmSys=%.3f",
		r.arrivalRate, r.serviceRate, r.servers, r.utilization,
		r.waitTime, r.timeInSystem, r.numWaiting, r.numInSystem,
	)
}
