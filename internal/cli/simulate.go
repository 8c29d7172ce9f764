package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/paber33/srs"
	"github.com/paber33/srs/stats"
	"github.com/spf13/cobra"
)

var (
	simConfigPath  string
	simCards       int
	simDays        int
	simSeed        int64
	simRecall      float64
	simLearnRecall float64
	simForecast    int
	simJSON        bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a workload simulation",
	Long:  "Generate a deck of new cards and study it for --days days with a seeded answer model. Prints the per-day load, the final deck summary and the upcoming due forecast.",
	Args:  cobra.NoArgs,
	RunE:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&simConfigPath, "config", "c", "", "Deck config YAML (defaults when empty)")
	simulateCmd.Flags().IntVarP(&simCards, "cards", "n", 500, "Number of new cards in the deck")
	simulateCmd.Flags().IntVarP(&simDays, "days", "d", 60, "Number of days to simulate")
	simulateCmd.Flags().Int64Var(&simSeed, "seed", 1, "Seed for answers and due-date jitter")
	simulateCmd.Flags().Float64Var(&simRecall, "recall", 0.85, "Probability a Review card is remembered")
	simulateCmd.Flags().Float64Var(&simLearnRecall, "learn-recall", 0, "Probability of a correct answer while learning (0 = --recall)")
	simulateCmd.Flags().IntVar(&simForecast, "forecast", 14, "Days of due forecast to print after the run")
	simulateCmd.Flags().BoolVar(&simJSON, "json", false, "Print the per-day loads as JSON")
}

func loadDeckConfig(path string) (srs.Config, error) {
	if path == "" {
		return srs.DefaultConfig(), nil
	}
	cfg, err := srs.LoadConfigFile(path)
	if err != nil {
		return srs.Config{}, err
	}
	log.Printf("loaded deck config from %s", path)
	return cfg, nil
}

func syntheticDeck(n int) []srs.Card {
	cards := make([]srs.Card, n)
	for i := range cards {
		cards[i] = srs.NewCard(fmt.Sprintf("term-%04d", i+1), fmt.Sprintf("translation-%04d", i+1), "synthetic")
	}
	return cards
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if simCards < 1 {
		return fmt.Errorf("--cards must be at least 1, got %d", simCards)
	}

	cfg, err := loadDeckConfig(simConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	sched, err := srs.NewScheduler(cfg, srs.WithRandSource(rand.New(rand.NewSource(simSeed))))
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simCfg := stats.SimConfig{
		Days:        simDays,
		Recall:      simRecall,
		LearnRecall: simLearnRecall,
		Seed:        simSeed,
	}
	log.Printf("simulating %d cards over %d days (seed %d)", simCards, simDays, simSeed)
	res, err := stats.Simulate(ctx, sched, syntheticDeck(simCards), simCfg)
	if err != nil {
		if ctx.Err() != nil {
			log.Printf("simulation interrupted")
		}
		return fmt.Errorf("simulate: %w", err)
	}

	out := cmd.OutOrStdout()
	if simJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Days)
	}

	end := res.Days[len(res.Days)-1].Date.AddDate(0, 0, 1)
	if err := printLoads(out, res); err != nil {
		return err
	}
	if err := printSummary(out, stats.Summarize(res.Cards, end)); err != nil {
		return err
	}
	return printForecast(out, stats.Forecast(res.Cards, end, simForecast))
}

func printLoads(w io.Writer, res stats.SimResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "day\tdate\tnew\tlearning\treviews\tlapses\ttotal\t")
	for _, d := range res.Days {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t\n",
			d.Day, d.Date.Format("2006-01-02"), d.New, d.Learning, d.Reviews, d.Lapses, d.Total())
	}
	t := res.Totals()
	fmt.Fprintf(tw, "all\t\t%d\t%d\t%d\t%d\t%d\t\n", t.New, t.Learning, t.Reviews, t.Lapses, t.Total())
	peak, at := stats.Peak(res.ReviewLoads())
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\npeak reviews: %d on day %d\n", peak, at)
	return err
}

func printSummary(w io.Writer, sum stats.DeckSummary) error {
	fmt.Fprintf(w, "\ndeck: %d cards\n", sum.Total)
	for _, st := range []srs.Status{srs.New, srs.Learning, srs.Review, srs.Relearning} {
		fmt.Fprintf(w, "  %-10s %d\n", st, sum.ByStatus[st])
	}
	fmt.Fprintf(w, "  leeches    %d\n", sum.Leeches)
	fmt.Fprintf(w, "  accuracy   %.1f%%\n", sum.Accuracy*100)
	_, err := fmt.Fprintf(w, "  mean ease  %.2f (interval %.1fd)\n", sum.MeanEase, sum.MeanInterval)
	return err
}

func printForecast(w io.Writer, loads []int) error {
	if len(loads) == 0 {
		return nil
	}
	fmt.Fprintf(w, "\ndue in the next %d days:\n", len(loads))
	for i, n := range loads {
		if _, err := fmt.Fprintf(w, "  +%-3d %d\n", i, n); err != nil {
			return err
		}
	}
	return nil
}
