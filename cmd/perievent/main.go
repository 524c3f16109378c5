// Command perievent extracts perievent windows from a fiber photometry
// recording and prints baseline-relative summary statistics per event.
//
// Usage:
//
//	perievent -fiber recording.csv -events events.csv [flags]
//
// The recording CSV needs time, signal, and control columns; the events
// CSV holds label,timestamp rows (and optional label,start,end interval
// rows).
//
// Examples:
//
//	perievent -fiber rec.csv -events ev.csv
//	perievent -fiber rec.csv -events ev.csv -pre 5 -post 5 -norm Z
//	perievent -fiber rec.csv -events ev.csv -label lever_press -spectrum
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/cwbudde/algo-photometry/behavior"
	"github.com/cwbudde/algo-photometry/fiber"
	"github.com/cwbudde/algo-photometry/perievent"
	"github.com/cwbudde/algo-photometry/spectrum"
	"github.com/cwbudde/algo-photometry/window"
)

func main() {
	fiberPath := flag.String("fiber", "", "recording CSV (time,signal,control)")
	eventsPath := flag.String("events", "", "behavioral events CSV (label,timestamp)")
	pre := flag.Float64("pre", 10, "pre-event window in seconds")
	post := flag.Float64("post", 10, "post-event window in seconds")
	norm := flag.String("norm", "F", "display normalization: raw, F (delta F/F), or Z (z-score)")
	label := flag.String("label", "", "restrict to one event label")
	gap := flag.Float64("gap", 0, "split the recording on time gaps longer than this (seconds)")
	withSpectrum := flag.Bool("spectrum", false, "print the peak frequency of each window's delta F/F")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: perievent -fiber recording.csv -events events.csv [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Extracts perievent windows and prints per-event summary statistics.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *fiberPath == "" || *eventsPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	method, err := fiber.ParseMethod(*norm)
	if err != nil {
		fatal(err)
	}

	opts := fiber.DefaultCSVOptions()
	opts.GapThreshold = *gap

	data, err := fiber.LoadCSV(*fiberPath, opts)
	if err != nil {
		fatal(err)
	}

	events, err := behavior.LoadCSV(*eventsPath)
	if err != nil {
		fatal(err)
	}

	session := perievent.NewSession(data, events,
		perievent.WithDefaultWindow(perievent.Window{Pre: *pre, Post: *post}),
		perievent.WithDefaultNorm(method),
	)

	analyzable := session.AnalyzableEvents()
	if len(analyzable) == 0 {
		fatal(fmt.Errorf("no events with a full %s window inside a recording", session.DefaultWindow()))
	}

	labels := make([]string, 0, len(analyzable))
	for l := range analyzable {
		if *label == "" || l == *label {
			labels = append(labels, l)
		}
	}
	sort.Strings(labels)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "label\tevent\trate(Hz)\tpreZ\tpostZ\tpreZ AUC\tpostZ AUC\tpost dFF AUC")

	for _, l := range labels {
		for _, t := range analyzable[l] {
			res, err := session.Analyze(t)
			if err != nil {
				fmt.Fprintf(os.Stderr, "perievent: %s t=%g: %v\n", l, t, err)
				continue
			}

			fmt.Fprintf(tw, "%s\t%.3f\t%.1f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\n",
				l, t, res.SamplingRate,
				res.Stats.ZScore.Pre.Mean, res.Stats.ZScore.Post.Mean,
				res.Stats.ZScore.Pre.AUC, res.Stats.ZScore.Post.AUC,
				res.Stats.DFF.Post.AUC)

			if *withSpectrum {
				spec, err := spectrum.Analyze(res.DFF, spectrum.Config{
					SampleRate: res.SamplingRate,
					WindowType: window.TypeHann,
					Detrend:    true,
				})
				if err != nil {
					fmt.Fprintf(os.Stderr, "perievent: spectrum %s t=%g: %v\n", l, t, err)
					continue
				}

				fmt.Fprintf(tw, "\tpeak %.2f Hz\t\t\t\t\t\t\n", spec.PeakFrequency())
			}
		}
	}

	tw.Flush()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "perievent: %v\n", err)
	os.Exit(1)
}
