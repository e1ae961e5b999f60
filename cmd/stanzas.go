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
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/lyrics"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/parser"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/phonemizer"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/rhyme"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/words"
)

var stanzasCmd = &cobra.Command{
	Use:   "stanzas <lyrics file>",
	Short: "Prints the stanzas of one song with their rhymes and word counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stanzas, err := lyrics.LoadSpotify(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		phones, err := phonemizer.New(viper.GetString("phonemizer_url"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		counter, err := words.NewCounter()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		err = printStanzas(context.Background(), os.Stdout, stanzas, rhyme.NewDetector(phones), counter)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(stanzasCmd)
}

func printStanzas(ctx context.Context, w io.Writer, stanzas []lyrics.Stanza, d *rhyme.Detector, counter parser.FrequencyCounter) error {
	for i, stanza := range stanzas {
		rhymes, err := rhyme.StanzaRhymes(ctx, d, stanza)
		if err != nil {
			return fmt.Errorf("stanza %d: %w", i, err)
		}
		structure, err := rhyme.Structure(rhymes, len(stanza))
		if err != nil {
			return fmt.Errorf("stanza %d: %w", i, err)
		}
		freqs, err := counter.Frequencies(stanza)
		if err != nil {
			return fmt.Errorf("stanza %d: %w", i, err)
		}

		fmt.Fprintf(w, "Stanza %d: %s (%s)\n", i+1, structure, rhyme.Classify(structure))
		for j, line := range stanza {
			fmt.Fprintf(w, "  %c  %s\n", structure[j], line.Text)
		}
		for _, r := range rhymes {
			fmt.Fprintf(w, "  rhyme: %s / %s (%s)\n", r.WordA, r.WordB, r.Suffix)
		}
		for _, line := range stanza {
			if line.HasAdlib() {
				fmt.Fprintf(w, "  ad-lib: %s\n", line.Adlib)
			}
		}
		fmt.Fprintf(w, "  words: %s\n\n", formatFrequencies(freqs))
	}
	return nil
}

// formatFrequencies lists word counts, most frequent first.
func formatFrequencies(freqs map[string]int) string {
	ws := make([]string, 0, len(freqs))
	for w := range freqs {
		ws = append(ws, w)
	}
	sort.Slice(ws, func(i, j int) bool {
		if freqs[ws[i]] != freqs[ws[j]] {
			return freqs[ws[i]] > freqs[ws[j]]
		}
		return ws[i] < ws[j]
	})
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = fmt.Sprintf("%s=%d", w, freqs[w])
	}
	return strings.Join(parts, " ")
}
