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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/analysis"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/words"
)

var wordsDir string

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Shows the share of words in each word category by decade",
	Long: `Categories are read from words_dir, one file per category named <category>.txt
with one word per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		runAnalysis(cmd, func(cohorts []cohort.Cohort, agg *analysis.Aggregator) (Analysis, error) {
			categories, err := loadCategories(viper.GetString("words_dir"))
			if err != nil {
				return Analysis{}, err
			}
			series, err := agg.WordCategories(context.Background(), cohorts, categories)
			if err != nil {
				return Analysis{}, err
			}
			return seriesAnalysis(series, "Words"), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	addExcludeFlag(categoriesCmd, defaultExclude)

	rootCmd.PersistentFlags().StringVar(&wordsDir, "words_dir", "./words", "Directory of word category lists")
	viper.BindPFlag("words_dir", rootCmd.PersistentFlags().Lookup("words_dir"))
}

func loadCategories(dir string) (words.Categories, error) {
	lemmatizer, err := words.NewLemmatizer()
	if err != nil {
		return nil, err
	}
	categories, err := words.LoadCategories(dir, lemmatizer)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no word lists in %s", dir)
	}
	return categories, nil
}
