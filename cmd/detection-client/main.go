// main package for the detection-client CLI
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ai-media-detector/detection-service/internal/core"
	"github.com/ai-media-detector/detection-service/internal/detect"
)

// Flag names.
const (
	flagText      = "text"
	flagFile      = "file"
	flagMinLength = "min-length"
	flagJSON      = "json"
)

// Flag descriptions.
const (
	flagTextDesc      = "Text to analyze"
	flagFileDesc      = "File containing text to analyze (- for stdin)"
	flagMinLengthDesc = "Minimum text length in characters (0 uses the default)"
	flagJSONDesc      = "Print the raw JSON result"
)

// Error messages.
const (
	errEitherTextOrFile  = "either --text or --file must be provided"
	errCannotSpecifyBoth = "cannot specify both --text and --file"
)

// Report section headers.
const (
	reportHeaderAnalysis   = "=== AI Text Origin Analysis ==="
	reportHeaderMetrics    = "=== Metric Breakdown ==="
	reportHeaderIndicators = "=== Indicators ==="
	reportHeaderStatistics = "=== Statistics ==="
)

// Report line formats.
const (
	reportProbabilityFormat = "AI probability: %.2f%%\n"
	reportLikelihoodFormat  = "Likelihood:     %s\n"
	reportMetricFormat      = "  %-12s %6.2f%%\n"
	reportListItemFormat    = "  - %s\n"
	reportStatIntFormat     = "  %-21s %d\n"
	reportStatFloatFormat   = "  %-21s %.2f\n"
)

// appFlags holds the parsed command-line flag values.
type appFlags struct {
	text      string
	file      string
	minLength int
	rawJSON   bool
}

func parseFlags() *appFlags {
	flags := &appFlags{
		text:      "",
		file:      "",
		minLength: 0,
		rawJSON:   false,
	}

	flag.StringVar(&flags.text, flagText, "", flagTextDesc)
	flag.StringVar(&flags.file, flagFile, "", flagFileDesc)
	flag.IntVar(&flags.minLength, flagMinLength, 0, flagMinLengthDesc)
	flag.BoolVar(&flags.rawJSON, flagJSON, false, flagJSONDesc)
	flag.Parse()

	return flags
}

// loadText resolves the input text from the flags.
func loadText(flags *appFlags) (string, error) {
	switch {
	case flags.text != "" && flags.file != "":
		return "", errors.New(errCannotSpecifyBoth)
	case flags.text != "":
		return flags.text, nil
	case flags.file == "":
		return "", errors.New(errEitherTextOrFile)
	case flags.file == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}

		return string(data), nil
	default:
		data, err := os.ReadFile(flags.file)
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", flags.file, err)
		}

		return string(data), nil
	}
}

func printReport(result *core.Result) {
	fmt.Println(reportHeaderAnalysis)
	fmt.Printf(reportProbabilityFormat, result.AIProbability)
	fmt.Printf(reportLikelihoodFormat, result.Likelihood)
	fmt.Println(result.Message)

	fmt.Println()
	fmt.Println(reportHeaderMetrics)
	fmt.Printf(reportMetricFormat, "Patterns", result.Metrics.PatternScore)
	fmt.Printf(reportMetricFormat, "Vocabulary", result.Metrics.VocabularyScore)
	fmt.Printf(reportMetricFormat, "Structure", result.Metrics.StructureScore)
	fmt.Printf(reportMetricFormat, "Consistency", result.Metrics.ConsistencyScore)
	fmt.Printf(reportMetricFormat, "Repetition", result.Metrics.RepetitionScore)

	fmt.Println()
	fmt.Println(reportHeaderIndicators)

	for _, indicator := range result.Indicators {
		fmt.Printf(reportListItemFormat, indicator)
	}

	fmt.Println()
	fmt.Println(reportHeaderStatistics)
	fmt.Printf(reportStatIntFormat, "Words:", result.Statistics.WordCount)
	fmt.Printf(reportStatIntFormat, "Sentences:", result.Statistics.SentenceCount)
	fmt.Printf(reportStatFloatFormat, "Avg sentence length:", result.Statistics.AvgSentenceLength)
	fmt.Printf(reportStatFloatFormat, "Unique word ratio:", result.Statistics.UniqueWordRatio)
}

func run() error {
	flags := parseFlags()

	text, err := loadText(flags)
	if err != nil {
		return err
	}

	result, err := detect.New().Analyze(text, flags.minLength)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if flags.rawJSON {
		data, marshalErr := json.MarshalIndent(result, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal result: %w", marshalErr)
		}

		fmt.Println(string(data))

		return nil
	}

	printReport(result)

	return nil
}

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
