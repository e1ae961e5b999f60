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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyricsapi"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/store"
)

type FetchConfig struct {
	DbPath     string
	LyricsDir  string
	APIURL     string
	Interval   time.Duration
	RetryAfter time.Duration
}

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Downloads lyrics for every song in the catalog",
	Long:  `Songs whose lyrics file already exists are skipped. Songs without lyrics are retried after --retry-missing.`,
	Run: func(cmd *cobra.Command, args []string) {
		retryAfter, err := time.ParseDuration(viper.GetString("retry-missing"))
		if err != nil {
			fmt.Printf("Invalid retry-missing: %v. Using default 30 days.\n", err)
			retryAfter = 30 * 24 * time.Hour
		}

		logger, err := newLogger()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		defer logger.Sync()

		config := FetchConfig{
			DbPath:     viper.GetString("database"),
			LyricsDir:  viper.GetString("lyrics_dir"),
			APIURL:     viper.GetString("lyrics_api_url"),
			Interval:   500 * time.Millisecond,
			RetryAfter: retryAfter,
		}

		err = fetchLyrics(context.Background(), config, logger)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	var apiURL string
	fetchCmd.Flags().StringVar(&apiURL, "lyrics_api_url", lyricsapi.DefaultURL, "Base URL of the lyric API")
	viper.BindPFlag("lyrics_api_url", fetchCmd.Flags().Lookup("lyrics_api_url"))

	var retryMissing string
	fetchCmd.Flags().StringVar(&retryMissing, "retry-missing", "720h", "Time after which songs without lyrics are tried again (e.g., 24h)")
	viper.BindPFlag("retry-missing", fetchCmd.Flags().Lookup("retry-missing"))
}

func fetchLyrics(ctx context.Context, config FetchConfig, logger *zap.SugaredLogger) error {
	db, err := store.New(config.DbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := os.MkdirAll(config.LyricsDir, 0755); err != nil {
		return fmt.Errorf("creating lyrics directory: %w", err)
	}

	ids, err := db.SongsNeedingLyrics(config.RetryAfter)
	if err != nil {
		return err
	}
	logger.Infow("Fetching lyrics", "songs", len(ids))

	client := lyricsapi.New(config.APIURL)
	limiter := rate.NewLimiter(rate.Every(config.Interval), 1)
	fetched, missing := 0, 0
	for index, id := range ids {
		path := filepath.Join(config.LyricsDir, id+".json")
		if _, err := os.Stat(path); err == nil {
			logger.Debugw("Already downloaded, skipping", "id", id)
			if err := db.SetLyricsStatus(id, store.LyricsFetched); err != nil {
				return err
			}
			continue
		}

		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		var body []byte
		err := retry.Do(
			func() error {
				var err error
				body, err = client.Fetch(ctx, id)
				return err
			},
			retry.Attempts(5),
			retry.Delay(time.Second),
			retry.LastErrorOnly(true),
			retry.RetryIf(func(err error) bool {
				if lyricsapi.Retryable(err) {
					logger.Warnw("Lyric API errored, retrying", "id", id, "error", err)
					return true
				}
				return false
			}),
		)
		if errors.Is(err, lyricsapi.ErrNotFound) {
			logger.Infow("No lyrics on Spotify, skipping", "id", id)
			missing++
			if err := db.SetLyricsStatus(id, store.LyricsMissing); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("fetching lyrics for %s: %w", id, err)
		}

		if err := os.WriteFile(path, body, 0644); err != nil {
			return fmt.Errorf("writing lyrics for %s: %w", id, err)
		}
		if err := db.SetLyricsStatus(id, store.LyricsFetched); err != nil {
			return err
		}
		fetched++
		logger.Infow("Downloaded lyrics", "progress", fmt.Sprintf("%d/%d", index+1, len(ids)), "id", id)
	}

	logger.Infow("Done fetching", "fetched", fetched, "missing", missing)
	return nil
}
