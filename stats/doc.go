// Package stats aggregates what the srs Scheduler deliberately does not
// track: deck and session statistics, due-load forecasts, and workload
// simulation.
//
// It provides four capabilities:
//
//   - [Summarize] counts a card pool by status and reports lifetime
//     accuracy, leeches and mean ease.
//
//   - [Session] aggregates review logs into totals, rating counts,
//     accuracy and true retention.
//
//   - [Forecast] counts how many cards fall due on each upcoming day.
//
//   - [Simulate] plays a deck forward day by day through
//     [srs.Scheduler.BuildQueue] and [srs.Scheduler.Rate] with a seeded
//     recall model, to estimate daily workload for a configuration.
//
// # Usage
//
//	sum := stats.Summarize(cards, now)
//	load := stats.Forecast(cards, now, 30)
//	res, err := stats.Simulate(ctx, scheduler, cards, stats.SimConfig{Days: 60, Seed: 1})
package stats
