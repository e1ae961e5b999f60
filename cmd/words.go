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
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/analysis"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Lists the most frequent words of each decade",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		runAnalysis(cmd, func(cohorts []cohort.Cohort, agg *analysis.Aggregator) (Analysis, error) {
			top, err := agg.TopWords(context.Background(), cohorts, limit)
			if err != nil {
				return Analysis{}, err
			}
			return topWordsAnalysis(top), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	addExcludeFlag(wordsCmd, nil)
	wordsCmd.Flags().IntP("limit", "n", 100, "Words listed per decade")
}

func topWordsAnalysis(top []analysis.CohortWords) Analysis {
	a := Analysis{results: [][]string{{"Decade", "Rank", "Word", "Count"}}}
	words := 0
	for _, c := range top {
		for i, w := range c.Words {
			a.results = append(a.results, []string{c.Cohort, strconv.Itoa(i + 1), w.Word, strconv.Itoa(w.Count)})
		}
		words += len(c.Words)
	}
	a.summary = fmt.Sprintf("%d words across %d decades", words, len(top))
	return a
}
