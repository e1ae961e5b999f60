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
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/artifact"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/parser"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/phonemizer"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/rhyme"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/sentiment"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/store"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/words"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/workpool"
)

type ParseConfig struct {
	DbPath        string
	LyricsDir     string
	ParsingsDir   string
	PhonemizerURL string
	SentimentURL  string
	Workers       int
}

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parses every downloaded lyrics file into a song artifact",
	Long: `Songs that already have an artifact are skipped. A failing song doesn't stop
the others; the command exits non-zero afterwards, listing the failed songs.`,
	Run: func(cmd *cobra.Command, args []string) {
		logger, err := newLogger()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer logger.Sync()

		config := ParseConfig{
			DbPath:        viper.GetString("database"),
			LyricsDir:     viper.GetString("lyrics_dir"),
			ParsingsDir:   viper.GetString("parsings_dir"),
			PhonemizerURL: viper.GetString("phonemizer_url"),
			SentimentURL:  viper.GetString("sentiment_url"),
			Workers:       viper.GetInt("workers"),
		}

		counter, err := words.NewCounter()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if err := parseAll(context.Background(), config, counter, logger); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func newParser(config ParseConfig, counter parser.FrequencyCounter, logger *zap.SugaredLogger) (*parser.Parser, error) {
	cache, err := artifact.NewCache(config.ParsingsDir)
	if err != nil {
		return nil, err
	}
	phones, err := phonemizer.New(config.PhonemizerURL)
	if err != nil {
		return nil, err
	}

	return &parser.Parser{
		Detector:  rhyme.NewDetector(phones),
		Sentiment: sentiment.New(config.SentimentURL),
		Words:     counter,
		Cache:     cache,
		Logger:    logger,
	}, nil
}

type parseOutcome struct {
	id     string
	result parser.Result
	err    error
}

func parseAll(ctx context.Context, config ParseConfig, counter parser.FrequencyCounter, logger *zap.SugaredLogger) error {
	db, err := store.New(config.DbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	p, err := newParser(config, counter, logger)
	if err != nil {
		return err
	}

	paths, err := filepath.Glob(filepath.Join(config.LyricsDir, "*.json"))
	if err != nil {
		return fmt.Errorf("listing lyrics: %w", err)
	}
	sort.Strings(paths)

	run, err := db.StartRun("parse")
	if err != nil {
		return err
	}
	logger.Infow("Parsing lyrics", "run", run, "songs", len(paths), "workers", config.Workers)

	// Failures are kept on the outcome so the run log gets every song.
	outcomes, _ := workpool.Map(ctx, config.Workers, paths, func(ctx context.Context, path string) (parseOutcome, error) {
		id, result, err := p.ParseFile(ctx, path)
		if err != nil {
			logger.Errorw("Failed to parse song", "id", id, "error", err)
		} else {
			logger.Debugw("Song done", "id", id, "result", result)
		}
		return parseOutcome{id: id, result: result, err: err}, nil
	})

	for i, o := range outcomes {
		if o.id == "" {
			// Never started, the context was cancelled first.
			o = parseOutcome{id: parser.SongID(paths[i]), result: parser.ResultFailed, err: ctx.Err()}
		}
		if err := db.RecordParse(run, o.id, string(o.result), o.err); err != nil {
			return err
		}
	}
	if err := db.FinishRun(run); err != nil {
		return err
	}

	summary, err := db.RunSummary(run)
	if err != nil {
		return err
	}
	logger.Infow("Done parsing", "run", run,
		"parsed", summary[string(parser.ResultParsed)],
		"cached", summary[string(parser.ResultCached)],
		"failed", summary[string(parser.ResultFailed)])

	failures, err := db.Failures(run)
	if err != nil {
		return err
	}
	if len(failures) == 0 {
		return nil
	}
	ids := make([]string, len(failures))
	for i, f := range failures {
		ids[i] = f.Song
	}
	return fmt.Errorf("%d songs failed to parse: %s", len(failures), strings.Join(ids, ", "))
}
