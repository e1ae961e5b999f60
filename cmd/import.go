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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/store"
)

var importCmd = &cobra.Command{
	Use:   "import <csv files...>",
	Short: "Adds songs from source CSV files to the catalog",
	Long: `Each file needs a header row with at least release_year and spotify columns.
The song id is the last path segment of the spotify URL.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := importSources(viper.GetString("database"), args, viper.GetInt("limit"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	var limit int
	importCmd.Flags().IntVar(&limit, "limit", 5000, "Maximum rows read from each file (0 for all)")
	viper.BindPFlag("limit", importCmd.Flags().Lookup("limit"))
}

func importSources(dbPath string, paths []string, limit int) error {
	db, err := store.New(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, path := range paths {
		rows, err := readSource(path, limit)
		if err != nil {
			return err
		}

		source := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		added, err := db.AddSongs(source, rows)
		if err != nil {
			return fmt.Errorf("importing %s: %w", path, err)
		}
		fmt.Printf("%s: read %d rows, added %d new songs\n", path, len(rows), added)
	}
	return nil
}

func readSource(path string, limit int) ([]cohort.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := cohort.ReadCSV(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
