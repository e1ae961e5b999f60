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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/analysis"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
)

var emotionsFile string

var sentimentCmd = &cobra.Command{
	Use:   "sentiment",
	Short: "Shows the mean score of each emotion category by decade",
	Run: func(cmd *cobra.Command, args []string) {
		runAnalysis(cmd, func(cohorts []cohort.Cohort, agg *analysis.Aggregator) (Analysis, error) {
			emotions, err := loadEmotions(viper.GetString("emotions"))
			if err != nil {
				return Analysis{}, err
			}
			series, err := agg.Sentiment(context.Background(), cohorts, emotions)
			if err != nil {
				return Analysis{}, err
			}
			return seriesAnalysis(series, "Lines"), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(sentimentCmd)
	addExcludeFlag(sentimentCmd, defaultExclude)

	rootCmd.PersistentFlags().StringVar(&emotionsFile, "emotions", "", "YAML file mapping emotion categories to emoji (default is built in)")
	viper.BindPFlag("emotions", rootCmd.PersistentFlags().Lookup("emotions"))
}
