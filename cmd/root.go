/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/logging"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/store"
)

var cfgFile string
var databasePath string
var lyricsDir string
var parsingsDir string
var logLevel string
var workers int
var phonemizerURL string
var sentimentURL string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lyrics-analysis",
	Short: "Analyses song lyrics by decade",
	Long: `Downloads synced lyrics for a catalog of songs, parses them into stanzas,
rhymes, word counts and sentiment, and reports how those change by decade.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.lyrics-analysis.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&databasePath, "database", "d", "./lyrics.db", "Path to the SQLite database")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))

	rootCmd.PersistentFlags().StringVar(
		&lyricsDir, "lyrics_dir", "./lyrics", "Directory holding downloaded lyric files")
	viper.BindPFlag("lyrics_dir", rootCmd.PersistentFlags().Lookup("lyrics_dir"))

	rootCmd.PersistentFlags().StringVar(
		&parsingsDir, "parsings_dir", "./parsings", "Directory holding parsed song artifacts")
	viper.BindPFlag("parsings_dir", rootCmd.PersistentFlags().Lookup("parsings_dir"))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log_level", "info", "Log level (debug, info, warn, error)")
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))

	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "Number of songs processed at once (default is one per CPU)")
	viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))

	rootCmd.PersistentFlags().StringVar(&phonemizerURL, "phonemizer_url", "http://localhost:9090/", "URL of the phonemizer service")
	viper.BindPFlag("phonemizer_url", rootCmd.PersistentFlags().Lookup("phonemizer_url"))

	rootCmd.PersistentFlags().StringVar(&sentimentURL, "sentiment_url", "http://localhost:8080/", "URL of the sentiment service")
	viper.BindPFlag("sentiment_url", rootCmd.PersistentFlags().Lookup("sentiment_url"))
}

// initConfig reads in .env, the config file and ENV variables if set.
func initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Error loading .env:", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lyrics-analysis" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lyrics-analysis")
	}

	viper.SetEnvPrefix("lyrics")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

func newLogger() (*zap.SugaredLogger, error) {
	return logging.New(viper.GetString("log_level"))
}

// loadCohorts groups the catalog into decades, minus the excluded ones.
func loadCohorts(dbPath string, exclude []string) ([]cohort.Cohort, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("Database doesn't exist - run import first.")
	}

	db, err := store.New(dbPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	songs, err := db.Songs()
	if err != nil {
		return nil, err
	}
	return cohort.Without(cohort.Group(songs), exclude...), nil
}
