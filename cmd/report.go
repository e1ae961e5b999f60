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
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/analysis"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generates the full decade report",
	Long:  `Runs every analysis over the parsed songs and writes one YAML document, ready for plotting.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer logger.Sync()

		cohorts, agg, err := analysisInput(cmd, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
		if err := runReport(context.Background(), os.Stdout, cohorts, agg); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addExcludeFlag(reportCmd, defaultExclude)
	reportCmd.Flags().Int("top_words", 25, "Words listed per decade")
	reportCmd.Flags().Int("top_rhymes", 50, "Rhyme pairs listed")
	viper.BindPFlag("report.top_words", reportCmd.Flags().Lookup("top_words"))
	viper.BindPFlag("report.top_rhymes", reportCmd.Flags().Lookup("top_rhymes"))
}

func runReport(ctx context.Context, w io.Writer, cohorts []cohort.Cohort, agg *analysis.Aggregator) error {
	categories, err := loadCategories(viper.GetString("words_dir"))
	if err != nil {
		return err
	}
	emotions, err := loadEmotions(viper.GetString("emotions"))
	if err != nil {
		return err
	}
	cfg := analysis.ReportConfig{
		Categories: categories,
		Emotions:   emotions,
		TopWords:   viper.GetInt("report.top_words"),
		TopRhymes:  viper.GetInt("report.top_rhymes"),
	}

	report, err := agg.GenerateReport(ctx, cohorts, cfg)
	if err != nil {
		return fmt.Errorf("analyzing data: %w", err)
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return encoder.Close()
}
