// Command filtinfo prints the behavior of streaming filters on a synthetic
// spike-contaminated signal, plus the DC gain of their impulse response.
//
// Usage:
//
//	filtinfo [flags] [filter-name ...]
//
// Without arguments it prints info for all known filter types.
//
// Examples:
//
//	filtinfo median
//	filtinfo -window 16 median middle
//	filtinfo -spike 1000 -interval 8 frequent
//	filtinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filter/filter"
	"github.com/cwbudde/algo-filter/filter/average"
	"github.com/cwbudde/algo-filter/filter/frequent"
	"github.com/cwbudde/algo-filter/filter/median"
	"github.com/cwbudde/algo-filter/filter/middle"
	"github.com/cwbudde/algo-filter/filter/onepole"
	"github.com/cwbudde/algo-filter/measure/response"
)

type filterEntry struct {
	name  string
	build func(window int, alpha float64) (filter.Filter, error)
}

var registry = []filterEntry{
	{"median", func(w int, _ float64) (filter.Filter, error) {
		return median.NewMoving(make([]float64, w))
	}},
	{"middle", func(w int, _ float64) (filter.Filter, error) {
		return middle.New(make([]float64, w))
	}},
	{"frequent", func(w int, _ float64) (filter.Filter, error) {
		return frequent.New(make([]float64, w), make([]frequent.Occurrence, w))
	}},
	{"average", func(w int, _ float64) (filter.Filter, error) {
		return average.NewMoving(make([]float64, w))
	}},
	{"weighted", func(w int, _ float64) (filter.Filter, error) {
		return average.NewWeighted(make([]float64, w))
	}},
	{"exp", func(w int, _ float64) (filter.Filter, error) {
		return average.NewExp(w, 0)
	}},
	{"kama", func(w int, _ float64) (filter.Filter, error) {
		return average.NewKaufman(make([]float64, w), 2, 30, 2)
	}},
	{"lowpass", func(_ int, alpha float64) (filter.Filter, error) {
		return onepole.NewLowPass(alpha, 0)
	}},
	{"highpass", func(_ int, alpha float64) (filter.Filter, error) {
		return onepole.NewHighPass(alpha, 0)
	}},
}

func main() {
	window := flag.Int("window", 8, "window storage length in samples (power of two)")
	alpha := flag.Float64("alpha", 0.5, "smoothing factor for the one-pole filters")
	baseline := flag.Float64("baseline", 1, "baseline level of the test signal")
	spike := flag.Float64("spike", 100, "outlier magnitude injected into the test signal")
	interval := flag.Int("interval", 10, "samples between injected outliers")
	length := flag.Int("n", 256, "test signal length in samples")
	fftSize := flag.Int("fft", 64, "FFT size for the impulse-response DC gain (power of two)")
	list := flag.Bool("list", false, "list available filter names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filtinfo [flags] [filter-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints filter behavior on a spike-contaminated test signal.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all filters.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filtinfo median middle\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -window 16 -spike 1000 frequent\n")
		fmt.Fprintf(os.Stderr, "  filtinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filter types\n")
		os.Exit(1)
	}

	printAnalysis(entries, *window, *alpha, *baseline, *spike, *interval, *length, *fftSize)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []filterEntry {
	byName := make(map[string]filterEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []filterEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown filter %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// spikeTrain is a constant baseline with an outlier every interval samples.
func spikeTrain(baseline, spike float64, interval, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = baseline
		if interval > 0 && (i+1)%interval == 0 {
			out[i] = spike
		}
	}
	return out
}

func printAnalysis(entries []filterEntry, window int, alpha, baseline, spike float64, interval, length, fftSize int) {
	signal := spikeTrain(baseline, spike, interval, length)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Filter\tWindow\tMax Out\tSpike Leakage\tRMS Dev\tDC Gain\n")
	fmt.Fprintf(tw, "------\t------\t-------\t-------------\t-------\t-------\n")

	for _, e := range entries {
		f, err := e.build(window, alpha)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %s: %v\n", e.name, err)
			continue
		}

		out := make([]float64, len(signal))
		filter.Apply(f, out, signal)

		// Skip the first window of samples so warmup does not dominate.
		steady := out
		if len(out) > window {
			steady = out[window:]
		}
		maxOut := 0.0
		sumSq := 0.0
		n := 0
		for _, y := range steady {
			if math.Abs(y) > maxOut {
				maxOut = math.Abs(y)
			}
			d := y - baseline
			sumSq += d * d
			n++
		}
		rms := math.Sqrt(sumSq / float64(n))
		leakage := (maxOut - baseline) / (spike - baseline)

		dc := math.NaN()
		if mag, err := response.Magnitude(f, fftSize); err == nil {
			dc = mag[0]
		}

		fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			e.name, window, maxOut, leakage, rms, dc)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
