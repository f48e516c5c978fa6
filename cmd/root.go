package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "skillradar"
)

type Config struct {
	JobsFile   string            `mapstructure:"jobs-file"`
	Match      *MatchConfig      `mapstructure:"match"`
	Vectorizer *VectorizerConfig `mapstructure:"vectorizer"`
}

type MatchConfig struct {
	Skills   []string `mapstructure:"skills"`
	TopN     int      `mapstructure:"top-n"`
	Location string   `mapstructure:"location"`
}

type VectorizerConfig struct {
	MaxFeatures int `mapstructure:"max-features"`
	NGramMax    int `mapstructure:"ngram-max"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "skillradar is a simple cli for matching candidate skills against job postings",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("jobs-file", "SKILLRADAR_JOBS_FILE"); err != nil {
		log.Fatalf("binding SKILLRADAR_JOBS_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is skillradar.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	// Config needed only for run command now. If there is no config, we can skip initialization
	if runCmd.CalledAs() == "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The cli works without a config file: skills can come from flags and
	// the corpus from the built-in sample. A config file parsed with error
	// is still fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	err := viper.Unmarshal(config)
	if err != nil {
		return config, err
	}

	return config, nil
}
