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
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/analysis"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/artifact"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
)

var defaultExclude = []string{"1940s", "1950s"}

type Analysis struct {
	results [][]string
	summary string
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(a.results[0])
	for _, row := range a.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	fmt.Fprintf(out, "%s\n", a.summary)
	return out.String()
}

// seriesAnalysis lays out a time series with one row per cohort and one
// column per key.
func seriesAnalysis(series []analysis.CohortSeries, unit string) Analysis {
	keySet := make(map[string]bool)
	for _, s := range series {
		for k := range s.Percentages {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	header := append([]string{"Decade", "Songs", unit}, keys...)
	a := Analysis{results: [][]string{header}}
	songs := 0
	for _, s := range series {
		row := []string{s.Cohort, strconv.Itoa(s.Songs), strconv.Itoa(s.Total)}
		for _, k := range keys {
			p, ok := s.Percentages[k]
			if !ok {
				row = append(row, "-")
				continue
			}
			row = append(row, fmt.Sprintf("%.2f%%", p))
		}
		a.results = append(a.results, row)
		songs += s.Songs
	}
	a.summary = fmt.Sprintf("%d decades, %d songs with parsed lyrics", len(series), songs)
	return a
}

// addExcludeFlag gives an analysis command its --exclude flag. The value is
// read back with cmd.Flags() since several commands share the name.
func addExcludeFlag(cmd *cobra.Command, defaults []string) {
	cmd.Flags().StringSlice("exclude", defaults, "Decades to leave out, e.g. 1940s")
}

// analysisInput loads the cohorts for an analysis command and an aggregator
// over the artifact cache.
func analysisInput(cmd *cobra.Command, logger *zap.SugaredLogger) ([]cohort.Cohort, *analysis.Aggregator, error) {
	exclude, err := cmd.Flags().GetStringSlice("exclude")
	if err != nil {
		return nil, nil, err
	}
	cohorts, err := loadCohorts(viper.GetString("database"), exclude)
	if err != nil {
		return nil, nil, err
	}

	cache, err := artifact.NewCache(viper.GetString("parsings_dir"))
	if err != nil {
		return nil, nil, err
	}
	return cohorts, &analysis.Aggregator{
		Artifacts: cache,
		Workers:   viper.GetInt("workers"),
		Logger:    logger,
	}, nil
}

// loadEmotions reads emotion categories from a YAML file mapping each
// category to its emoji. An empty path gives the defaults.
func loadEmotions(path string) (analysis.Emotions, error) {
	if path == "" {
		return analysis.DefaultEmotions, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading emotions: %w", err)
	}
	var emotions analysis.Emotions
	if err := yaml.Unmarshal(data, &emotions); err != nil {
		return nil, fmt.Errorf("parsing emotions %s: %w", path, err)
	}
	if len(emotions) == 0 {
		return nil, fmt.Errorf("no emotion categories in %s", path)
	}
	return emotions, nil
}

// runAnalysis is the shared Run of the analysis commands.
func runAnalysis(cmd *cobra.Command, fn func([]cohort.Cohort, *analysis.Aggregator) (Analysis, error)) {
	logger, err := newLogger()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer logger.Sync()

	cohorts, agg, err := analysisInput(cmd, logger)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	if len(cohorts) == 0 {
		fmt.Println("No songs in the catalog - run import first.")
		os.Exit(1)
	}

	out, err := fn(cohorts, agg)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Print(out)
}
