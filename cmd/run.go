package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/skillradar/skillradar/internal/corpus"
	"github.com/skillradar/skillradar/internal/engine"
	"github.com/skillradar/skillradar/internal/filtering"
	"github.com/skillradar/skillradar/internal/logger"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptRecommendations = "Show recommendations"
	PromptMarketGap       = "Skills gap against the whole market"
	PromptPostingGap      = "Skills gap against one posting"
	PromptInsights        = "Market insights"
	PromptByCompany       = "Report by companies"
	PromptResultsToFile   = "Dump results to file"
	PromptPostingsToFile  = "Dump postings to file"
	PromptExit            = "Exit"
	PromptBack            = "back"

	defaultTopN           = 10
	descriptionPreviewLen = 120
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "What next?",
	Items: []string{
		PromptRecommendations,
		PromptMarketGap,
		PromptPostingGap,
		PromptInsights,
		PromptByCompany,
		PromptResultsToFile,
		PromptPostingsToFile,
		PromptExit,
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the skillradar matching command",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringSliceP("skills", "s", nil, "candidate skill keywords. Overrides match.skills from the config.")
	runCmd.Flags().IntP("top-n", "n", 0, "number of recommendations to return")
	runCmd.Flags().StringP("location", "l", "", "keep only postings matching this location")
	runCmd.Flags().BoolP("auto", "y", false, "print recommendations and exit without the interactive prompt")
	runCmd.Flags().Bool("include-closed", false, "do not drop postings whose closing date has passed")

	viper.BindPFlag("match.location", runCmd.Flags().Lookup("location"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the skillradar", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	skills := resolveSkills(cmd, config)
	if len(skills) == 0 {
		logger.Fatal("at least one skill is required",
			zap.String("hint", "pass --skills or set match.skills in the configuration file"),
		)
	}

	topN := resolveTopN(cmd, config)

	store := loadStore(config, logger)
	snapshot := store.Snapshot()

	if snapshot.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "corpus is empty"))
		return
	}

	filtered, err := prepareFilters(cmd, logger).RunFilters(ctx, snapshot)
	if err != nil {
		logger.Fatal("filtering failed", zap.Error(err))
	}

	if filtered.Len() == 0 {
		logger.Info("exiting", zap.String("reason", "no postings left after filters"))
		return
	}

	eng := engine.New(filtered, engineConfig(config), logger)
	query := engine.NewSkillQuery(skills)

	logger.Info("starting the matching run",
		zap.Strings("skills", query.Tokens()),
		zap.Int("top_n", topN),
		zap.Int("postings", filtered.Len()),
	)

	results, err := eng.Recommend(query, topN)
	if err != nil {
		logger.Fatal("recommending postings", zap.Error(err))
	}

	logger.Info("matching run finished", zap.Int("results", len(results)))

	action := PromptRecommendations
	for {
		var err error
		if cmd.Flag("auto").Value.String() == "false" {
			_, action, err = prompt.Run()
			if err != nil {
				logger.Fatal("exiting", zap.Error(err))
			}
		}

		if err := handleAction(action, eng, query, results, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}

		if cmd.Flag("auto").Value.String() == "true" {
			return
		}
	}
}

func handleAction(action string, eng *engine.Engine, query engine.SkillQuery, results []engine.MatchResult, logger *zap.Logger) error {
	switch action {
	case PromptRecommendations:
		pretty, _ := json.MarshalIndent(summarizeResults(results), "", "  ")
		logger.Info(string(pretty), zap.Int("results", len(results)))
		return nil
	case PromptMarketGap:
		report := eng.AnalyzeGap(query, engine.CorpusReference(eng.Corpus()))
		pretty, _ := json.MarshalIndent(report, "", "  ")
		logger.Info(string(pretty), zap.Float64("coverage", report.Coverage))
		return nil
	case PromptPostingGap:
		return postingGap(eng, query, results, logger)
	case PromptInsights:
		insights := eng.MarketInsights(results)
		pretty, _ := json.MarshalIndent(insights, "", "  ")
		logger.Info(string(pretty), zap.Float64("average_score", insights.AverageScore))
		return nil
	case PromptByCompany:
		pretty, _ := json.MarshalIndent(eng.Corpus().ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("postings", eng.Corpus().Len()))
		return nil
	case PromptResultsToFile:
		filename, err := dumpResults(results)
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping results to file", zap.String("filename", filename))
		return nil
	case PromptPostingsToFile:
		filename, err := eng.Corpus().DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump postings to file: %w", err)
		}
		logger.Info("dumping postings to file", zap.String("filename", filename))
		return nil
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func postingGap(eng *engine.Engine, query engine.SkillQuery, results []engine.MatchResult, logger *zap.Logger) error {
	for {
		items := make([]string, 0, len(results)+1)
		for _, result := range results {
			label := fmt.Sprintf("%s %s / %s / %.1f%%",
				result.Posting.ID, result.Posting.Title, result.Posting.Company, result.Score,
			)
			items = append(items, label)
		}

		postingPrompt := promptui.Select{
			Label: "Choose a posting and press ENTER",
			Items: append(items, PromptBack),
		}

		idx, selected, err := postingPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		posting := results[idx].Posting
		report := eng.AnalyzeGap(query, engine.PostingReference(posting))

		pretty, _ := json.MarshalIndent(report, "", "  ")
		logger.Info(string(pretty),
			zap.String("posting_id", posting.ID),
			zap.String("posting_title", posting.Title),
			zap.Float64("coverage", report.Coverage),
		)
	}
}

// loadStore loads the configured jobs file, falling back to the built-in
// sample corpus when no file is configured or loading fails. The fallback is
// a degraded mode, not a fatal error.
func loadStore(config *Config, logger *zap.Logger) *corpus.Store {
	path := config.JobsFile
	if path == "" {
		path = viper.GetString("jobs-file")
	}

	if path == "" {
		logger.Info("no jobs file configured, using the built-in sample corpus")
		return corpus.NewStore(corpus.Sample())
	}

	loaded, rowErrors, err := corpus.LoadFile(path, logger)
	if err != nil {
		logger.Warn("falling back to the built-in sample corpus",
			zap.String("jobs_file", path),
			zap.Error(err),
		)
		return corpus.NewStore(corpus.Sample())
	}

	logger.Info("loaded the jobs file",
		zap.String("jobs_file", path),
		zap.Int("postings", loaded.Len()),
		zap.Int("rejected_rows", len(rowErrors)),
	)

	return corpus.NewStore(loaded)
}

func prepareFilters(cmd *cobra.Command, logger *zap.Logger) *filtering.Filtering {
	steps := []filtering.Filter{
		filtering.NewLocation(viper.GetString("match.location")),
	}

	if cmd.Flag("include-closed").Value.String() == "false" {
		steps = append(steps, filtering.NewClosingDate(time.Now()))
	}

	return filtering.New(steps, logger)
}

func resolveSkills(cmd *cobra.Command, config *Config) []string {
	skills, _ := cmd.Flags().GetStringSlice("skills")
	if len(skills) > 0 {
		return skills
	}
	if config.Match != nil {
		return config.Match.Skills
	}
	return nil
}

func resolveTopN(cmd *cobra.Command, config *Config) int {
	topN, _ := cmd.Flags().GetInt("top-n")
	if topN > 0 {
		return topN
	}
	if config.Match != nil && config.Match.TopN > 0 {
		return config.Match.TopN
	}
	return defaultTopN
}

func engineConfig(config *Config) engine.Config {
	cfg := engine.Config{}
	if config.Vectorizer != nil {
		cfg.MaxFeatures = config.Vectorizer.MaxFeatures
		cfg.NGramMax = config.Vectorizer.NGramMax
	}
	return cfg
}

// summarizeResults flattens results for display, trimming long descriptions.
func summarizeResults(results []engine.MatchResult) []map[string]string {
	summary := make([]map[string]string, 0, len(results))
	for _, result := range results {
		summary = append(summary, map[string]string{
			"rank":        fmt.Sprintf("%d", result.Rank),
			"score":       fmt.Sprintf("%.1f%%", result.Score),
			"tier":        string(result.Tier),
			"title":       result.Posting.Title,
			"company":     result.Posting.Company,
			"location":    result.Posting.Location,
			"salary":      result.Posting.SalaryRange,
			"closes":      result.Posting.ClosingDate,
			"url":         result.Posting.URL,
			"description": logger.TruncateForLog(result.Posting.Description, descriptionPreviewLen),
		})
	}
	return summary
}

func dumpResults(results []engine.MatchResult) (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return "", err
	}
	return file.Name(), nil
}
