// Command flife estimates fatigue life from spectral statistics of a
// Gaussian stress response.
//
// Usage:
//
//	flife [flags]
//
// The statistics and materials come either from flags or from a YAML case
// file given with -case. Every method is evaluated for every material and
// printed as one table row. A row that cannot be evaluated shows the reason
// instead of a life.
//
// Examples:
//
//	flife -m0 4 -m075 1.8 -m150 1 -nu 10 -C 2e11 -k 3
//	flife -m0 4 -m075 1.8 -m150 1 -nu 10 -C 2e11 -k 3,4,5 -method alpha075,narrowband
//	flife -case bracket.yaml
//	flife -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fatigue/fatigue"
	"github.com/cwbudde/algo-fatigue/internal/casefile"
	"github.com/cwbudde/algo-fatigue/stats/spectral"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("flife", flag.ContinueOnError)
	fs.SetOutput(stderr)

	casePath := fs.String("case", "", "YAML case file; replaces the statistics, material and method flags")
	m0 := fs.Float64("m0", 0, "zeroth spectral moment (variance) [MPa^2]")
	m075 := fs.Float64("m075", 0, "0.75-order spectral moment")
	m150 := fs.Float64("m150", 0, "1.5-order spectral moment")
	nu := fs.Float64("nu", 0, "expected zero-up-crossing rate [1/s]")
	alpha2 := fs.Float64("alpha2", 0, "irregularity factor (zhao-baker only)")
	peakRate := fs.Float64("peak-rate", 0, "expected peak rate [1/s] (zhao-baker only)")
	cList := fs.String("C", "", "comma-separated fatigue strength coefficients [MPa^k]")
	kList := fs.String("k", "", "comma-separated fatigue strength exponents")
	methodList := fs.String("method", fatigue.MethodAlpha075.String(), "comma-separated estimation methods")
	list := fs.Bool("list", false, "list available methods")
	fs.Usage = func() {
		_, _ = fmt.Fprintf(stderr, "Usage: flife [flags]\n\n")
		_, _ = fmt.Fprintf(stderr, "Estimates fatigue life from spectral moments and S-N parameters.\n\n")
		_, _ = fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(stderr, "\nExamples:\n")
		_, _ = fmt.Fprintf(stderr, "  flife -m0 4 -m075 1.8 -m150 1 -nu 10 -C 2e11 -k 3\n")
		_, _ = fmt.Fprintf(stderr, "  flife -case bracket.yaml\n")
		_, _ = fmt.Fprintf(stderr, "  flife -list\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *list {
		for _, m := range fatigue.Methods() {
			_, _ = fmt.Fprintln(stdout, m)
		}
		return 0
	}

	var c casefile.Case
	if *casePath != "" {
		loaded, err := casefile.Load(*casePath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		c = loaded
	} else {
		built, err := caseFromFlags(
			spectral.Stats{M0: *m0, M075: *m075, M150: *m150, Nu: *nu, Alpha2: *alpha2, PeakRate: *peakRate},
			*cList, *kList, *methodList,
		)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		c = built
	}

	failed, err := printLives(stdout, c)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	if failed == len(c.Methods)*len(c.Materials) {
		return 1
	}
	return 0
}

func caseFromFlags(s spectral.Stats, cList, kList, methodList string) (casefile.Case, error) {
	cs, err := parseFloats("C", cList)
	if err != nil {
		return casefile.Case{}, err
	}
	ks, err := parseFloats("k", kList)
	if err != nil {
		return casefile.Case{}, err
	}

	c := casefile.Case{Stats: s}
	for _, cv := range cs {
		for _, kv := range ks {
			c.Materials = append(c.Materials, fatigue.Material{Name: "-", C: cv, K: kv})
		}
	}
	for _, name := range strings.Split(methodList, ",") {
		m, err := fatigue.ParseMethod(name)
		if err != nil {
			return casefile.Case{}, fmt.Errorf("%w (use -list to see available)", err)
		}
		c.Methods = append(c.Methods, m)
	}
	return c, nil
}

func parseFloats(flagName, list string) ([]float64, error) {
	if strings.TrimSpace(list) == "" {
		return nil, fmt.Errorf("-%s is required", flagName)
	}
	var out []float64
	for _, field := range strings.Split(list, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("-%s: %w", flagName, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// printLives writes one row per (method, material) pair and returns the
// number of rows that produced no life value.
func printLives(w io.Writer, c casefile.Case) (int, error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Method\tMaterial\tC\tk\tLife [s]\tLife [h]\tNote\n"); err != nil {
		return 0, fmt.Errorf("write output header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "------\t--------\t-\t-\t--------\t--------\t----\n"); err != nil {
		return 0, fmt.Errorf("write output header: %w", err)
	}

	failed := 0
	for _, m := range c.Methods {
		for _, mat := range c.Materials {
			life, err := fatigue.Estimate(m, c.Stats, mat)
			seconds, hours, note := "-", "-", ""
			switch {
			case errors.Is(err, fatigue.ErrInfiniteLife):
				seconds, hours, note = "inf", "inf", "no damage"
			case err != nil:
				note = err.Error()
				failed++
			default:
				seconds = strconv.FormatFloat(life, 'e', 4, 64)
				hours = strconv.FormatFloat(life/3600, 'e', 4, 64)
			}
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%.4g\t%g\t%s\t%s\t%s\n",
				m, mat.Name, mat.C, mat.K, seconds, hours, note); err != nil {
				return failed, fmt.Errorf("write output row: %w", err)
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return failed, fmt.Errorf("flush output: %w", err)
	}
	return failed, nil
}
