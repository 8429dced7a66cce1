// Command solver reads a MILP instance and prints its optimal solution.
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/gomilp/milpsolve"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: solver [path]")
		return 2
	}

	in := os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "solver: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	start := time.Now()

	p, err := milp.FromStream(in)
	if err != nil {
		return reportErr(err)
	}

	milp.FormatProblem(os.Stdout, p)

	sol, err := p.Solve()
	if err != nil {
		return reportErr(err)
	}

	milp.FormatSolution(os.Stdout, sol)
	printPerformance(start)
	return 0
}

func reportErr(err error) int {
	if errors.Is(err, milp.ErrInfeasible) || errors.Is(err, milp.ErrNoIntegerSolution) {
		fmt.Fprintln(os.Stdout, "\n================== Solution ==================")
		fmt.Fprintln(os.Stdout, "infeasible")
		return 0
	}
	fmt.Fprintf(os.Stderr, "solver: %v\n", err)
	return 1
}

// printPerformance reports elapsed wall time and the cumulative bytes
// allocated on the Go heap (runtime.MemStats.TotalAlloc), outside the core's
// contract. It does not measure peak RSS or peak heap size.
func printPerformance(start time.Time) {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	fmt.Fprintf(os.Stdout, "\n%.3fs elapsed, %d KB allocated\n",
		time.Since(start).Seconds(), ms.TotalAlloc/1024)
}
