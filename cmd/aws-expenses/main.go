package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	mmc "github.com/lec00q/aws-expenses"
)

func main() {
	var (
		arrivalRate = flag.Float64("arrival-rate", 10.0, "Average number of jobs per hour")
		serviceTime = flag.Float64("service-time", 7.0, "Number of minutes for serving a single job")
		maxWaitTime = flag.Float64("max-wait-time", 10.0, "Maximum expected time in the system in minutes")
		fixedCost   = flag.Float64("fixed-cost", 70, "Approximate monthly fixed cost for the architecture in dollars")
		serverCost  = flag.Float64("var-cost", 41, "Variable monthly cost for each back-end server in dollars")
		scenarios   = flag.String("scenarios", "", "Path to a JSON file with what-if scenarios to rank by cost")
		table       = flag.Bool("table", false, "Print per-server-count metrics up to the chosen count")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
			os.Exit(1)
		}
	}

	planner := mmc.NewPlanner(
		mmc.CostModel{FixedMonthly: *fixedCost, PerServerMonthly: *serverCost},
		zapLogger{log},
	)

	var code int
	if *scenarios != "" {
		code = rankScenarios(planner, *scenarios)
	} else {
		code = findServers(planner, *arrivalRate, *serviceTime, *maxWaitTime, *table)
	}

	_ = log.Sync()
	os.Exit(code)
}

// zapLogger adapts *zap.Logger to the planner's Logger interface.
type zapLogger struct {
	log *zap.Logger
}

func (l zapLogger) Debug(msg string) {
	l.log.Debug(msg)
}

func findServers(planner *mmc.Planner, arrivalRate, serviceTime, maxWaitTime float64, table bool) int {
	plan, err := planner.FindMinimumServers(arrivalRate, serviceTime, maxWaitTime)
	switch {
	case errors.Is(err, mmc.ErrInfeasibleTarget):
		fmt.Fprintln(os.Stderr, "The expected waiting time cannot be less than the service time!")
		return 1
	case errors.Is(err, mmc.ErrSearchExhausted):
		fmt.Fprintf(os.Stderr, "Reached max number of servers (%d).\n", mmc.MaxServers)
		fmt.Fprintln(os.Stderr, "Please reduce the arrival rate or the service time.")
		return 1
	case err != nil:
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	if table {
		if err := printTable(arrivalRate/60, serviceTime, plan.Result.Servers()); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
	}

	fmt.Printf("Number of servers: %d\n", plan.Result.Servers())
	fmt.Printf("Average serving time: %.3f minutes\n", plan.Result.TimeInSystem())
	fmt.Printf("Total cost: %d$ per month\n", int(plan.MonthlyCost))

	return 0
}

func printTable(arrivalRate, serviceTime float64, maxServers int) error {
	results, err := mmc.Sweep(context.Background(), arrivalRate, serviceTime, maxServers)
	if err != nil {
		return err
	}

	fmt.Printf("%-8s %-8s %-12s %-12s\n", "servers", "util", "wait (min)", "system (min)")
	for _, res := range results {
		fmt.Printf("%-8d %-8.3f %-12.3f %-12.3f\n",
			res.Servers(), res.Utilization(), res.WaitTime(), res.TimeInSystem())
	}
	fmt.Println()

	return nil
}

func rankScenarios(planner *mmc.Planner, path string) int {
	scenarios, err := mmc.LoadScenarios(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	fmt.Printf("%-20s %-8s %-14s %s\n", "scenario", "servers", "system (min)", "cost ($/month)")
	for _, entry := range planner.Rank(scenarios) {
		if entry.Err != nil {
			fmt.Printf("%-20s %s\n", entry.Scenario.Name, entry.Err)
			continue
		}

		fmt.Printf("%-20s %-8d %-14.3f %d\n",
			entry.Scenario.Name,
			entry.Plan.Result.Servers(),
			entry.Plan.Result.TimeInSystem(),
			int(entry.Plan.MonthlyCost),
		)
	}

	return 0
}
