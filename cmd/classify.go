package cmd

import (
	"fmt"
	"strconv"
	"strings"

	cobra "github.com/spf13/cobra"

	domain "github.com/inference-gateway/touchbridge/internal/domain"
	gesture "github.com/inference-gateway/touchbridge/internal/gesture"
)

var classifyCmd = &cobra.Command{
	Use:   "classify X,Y@MS X,Y@MS",
	Short: "Classify a pointer-down/pointer-up pair",
	Long: `Classify a pointer-down sample and a pointer-up sample into a tap,
touch-and-hold or swipe using the configured gesture thresholds.`,
	Example: `  touchbridge classify 100,100@0 100,100@120
  touchbridge classify 100,100@0 300,100@200`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromViper()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		start, err := parseSample(args[0])
		if err != nil {
			return err
		}
		end, err := parseSample(args[1])
		if err != nil {
			return err
		}

		classifier := gesture.NewClassifier(cfg.Gesture.HoldThresholdMs, cfg.Gesture.MovementTolerance)
		intent := classifier.Classify(start, end)

		if intent.Kind == domain.GestureSwipe {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n", intent.Kind, intent.From, intent.To)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s at %s\n", intent.Kind, intent.From)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

// parseSample parses X,Y@TIMESTAMP_MS
func parseSample(s string) (domain.PointerSample, error) {
	pos, ts, ok := strings.Cut(s, "@")
	if !ok {
		return domain.PointerSample{}, fmt.Errorf("expected X,Y@MS, got %q", s)
	}

	p, err := parsePoint(pos)
	if err != nil {
		return domain.PointerSample{}, err
	}

	ms, err := strconv.ParseInt(strings.TrimSpace(ts), 10, 64)
	if err != nil {
		return domain.PointerSample{}, fmt.Errorf("invalid timestamp %q", ts)
	}

	return domain.PointerSample{Position: p, TimestampMs: ms}, nil
}
