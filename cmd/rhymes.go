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

var rhymesCmd = &cobra.Command{
	Use:   "rhymes",
	Short: "Lists the most common rhyme pairs",
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		byDecade, _ := cmd.Flags().GetBool("by-decade")
		runAnalysis(cmd, func(cohorts []cohort.Cohort, agg *analysis.Aggregator) (Analysis, error) {
			if byDecade {
				rhymes, err := agg.CohortRhymes(context.Background(), cohorts, limit)
				if err != nil {
					return Analysis{}, err
				}
				return cohortRhymesAnalysis(rhymes), nil
			}
			var ids []string
			for _, c := range cohorts {
				ids = append(ids, c.IDs...)
			}
			top, err := agg.TopRhymes(context.Background(), ids, limit)
			if err != nil {
				return Analysis{}, err
			}
			return topRhymesAnalysis(top, len(ids)), nil
		})
	},
}

func init() {
	rootCmd.AddCommand(rhymesCmd)
	addExcludeFlag(rhymesCmd, nil)
	rhymesCmd.Flags().IntP("limit", "n", 100, "Rhyme pairs listed")
	rhymesCmd.Flags().Bool("by-decade", false, "List the top rhymes of each decade separately")
}

func topRhymesAnalysis(top []analysis.RhymeStat, songs int) Analysis {
	a := Analysis{results: [][]string{{"Rank", "Rhyme", "Count"}}}
	for i, r := range top {
		a.results = append(a.results, []string{
			strconv.Itoa(i + 1), r.Pair[0] + " / " + r.Pair[1], strconv.Itoa(r.Count),
		})
	}
	a.summary = fmt.Sprintf("Top %d rhymes in %d songs", len(top), songs)
	return a
}

func cohortRhymesAnalysis(rhymes []analysis.CohortRhymes) Analysis {
	a := Analysis{results: [][]string{{"Decade", "Rank", "Rhyme", "Count"}}}
	songs := 0
	for _, c := range rhymes {
		for i, r := range c.Rhymes {
			a.results = append(a.results, []string{
				c.Cohort, strconv.Itoa(i + 1), r.Pair[0] + " / " + r.Pair[1], strconv.Itoa(r.Count),
			})
		}
		songs += c.Songs
	}
	a.summary = fmt.Sprintf("%d decades, %d songs with parsed lyrics", len(rhymes), songs)
	return a
}
