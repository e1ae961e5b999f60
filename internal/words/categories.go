package words

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Categories maps a category name to its set of lemmatized words.
type Categories map[string]map[string]bool

// LoadCategories reads every dir/*.txt file as one category named after the
// file, one word per line.
func LoadCategories(dir string, l Lemmatizer) (Categories, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("listing word lists: %w", err)
	}

	categories := make(Categories, len(paths))
	for _, path := range paths {
		name := strings.TrimSuffix(filepath.Base(path), ".txt")
		set, err := loadWordList(path, l)
		if err != nil {
			return nil, err
		}
		categories[name] = set
	}
	return categories, nil
}

func loadWordList(path string, l Lemmatizer) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	set := make(map[string]bool)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		set[l.Lemma(word)] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return set, nil
}

// Names returns the category names in alphabetical order.
func (c Categories) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count sums the counts in freqs of the words belonging to each category.
func (c Categories) Count(freqs map[string]int) map[string]int {
	counts := make(map[string]int, len(c))
	for name, set := range c {
		counts[name] = 0
		for word, n := range freqs {
			if set[word] {
				counts[name] += n
			}
		}
	}
	return counts
}
