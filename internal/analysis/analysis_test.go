package analysis

import (
	"context"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/SuperSonicHub1/lyrics-analysis/internal/artifact"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/cohort"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/logging"
	"github.com/SuperSonicHub1/lyrics-analysis/internal/words"
)

func setupTestCache(t *testing.T) *artifact.Cache {
	t.Helper()
	cache, err := artifact.NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	artifacts := []*artifact.Artifact{
		{
			ID:             "a",
			Freqs:          []map[string]int{{"love": 2, "car": 1}, {"go": 1}},
			Rhymes:         [][][2]string{{{"cat", "hat"}}, {{"hat", "cat"}}},
			RhymeStructure: []string{"ABAB", "****"},
			Sentiment: [][]map[string]float64{
				{{"😂": 0.5, "😭": 0.1}},
				{{"😂": 0.1, "🎶": 0.9}},
			},
		},
		{
			ID:             "b",
			Freqs:          []map[string]int{{"love": 1, "money": 3}},
			Rhymes:         [][][2]string{{{"cat", "hat"}}},
			RhymeStructure: []string{"AABB"},
			Sentiment:      [][]map[string]float64{{{"😭": 0.6}}},
		},
		{
			ID:             "c",
			Freqs:          []map[string]int{{"money": 2}},
			Rhymes:         [][][2]string{{{"go", "show"}}, nil},
			RhymeStructure: []string{"ABBA", "ABCD"},
			Sentiment:      [][]map[string]float64{},
		},
	}
	for _, a := range artifacts {
		if err := cache.Save(a); err != nil {
			t.Fatalf("Save(%q) error: %v", a.ID, err)
		}
	}
	return cache
}

func testCohorts() []cohort.Cohort {
	return []cohort.Cohort{
		{Key: "1980s", IDs: []string{"a", "b", "missing"}},
		{Key: "1990s", IDs: []string{"c"}},
		{Key: "2000s", IDs: []string{"gone"}},
	}
}

func testCategories() words.Categories {
	return words.Categories{
		"love":  {"love": true},
		"money": {"money": true, "cash": true},
	}
}

func newTestAggregator(t *testing.T) *Aggregator {
	logger, _ := logging.NewTestLogger()
	return &Aggregator{Artifacts: setupTestCache(t), Workers: 2, Logger: logger}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWordCategories(t *testing.T) {
	agg := newTestAggregator(t)

	series, err := agg.WordCategories(context.Background(), testCohorts(), testCategories())
	if err != nil {
		t.Fatalf("WordCategories() error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected 3 cohorts, got %d", len(series))
	}

	eighties := series[0]
	if eighties.Cohort != "1980s" || eighties.Songs != 2 || eighties.Total != 8 {
		t.Errorf("unexpected 1980s series: %+v", eighties)
	}
	if !approx(eighties.Percentages["love"], 37.5) || !approx(eighties.Percentages["money"], 37.5) {
		t.Errorf("unexpected 1980s percentages: %v", eighties.Percentages)
	}

	nineties := series[1]
	if !approx(nineties.Percentages["love"], 0) || !approx(nineties.Percentages["money"], 100) {
		t.Errorf("unexpected 1990s percentages: %v", nineties.Percentages)
	}

	// No artifacts at all: zero total, empty breakdown.
	empty := series[2]
	if empty.Songs != 0 || empty.Total != 0 || len(empty.Percentages) != 0 {
		t.Errorf("expected empty 2000s series, got %+v", empty)
	}
}

func TestRhymeSchemes(t *testing.T) {
	agg := newTestAggregator(t)

	series, err := agg.RhymeSchemes(context.Background(), testCohorts())
	if err != nil {
		t.Fatalf("RhymeSchemes() error: %v", err)
	}

	eighties := series[0]
	if eighties.Total != 3 {
		t.Errorf("expected 3 stanzas in 1980s, got %d", eighties.Total)
	}
	want := map[string]float64{"alternating": 100.0 / 3, "clumped": 100.0 / 3, "enclosed": 0, "monorhyme": 0}
	for scheme, p := range want {
		if !approx(eighties.Percentages[scheme], p) {
			t.Errorf("1980s %s: expected %v, got %v", scheme, p, eighties.Percentages[scheme])
		}
	}
	if _, ok := eighties.Percentages[""]; ok {
		t.Errorf("unclassified stanzas should not be reported as a scheme")
	}

	if !approx(series[1].Percentages["enclosed"], 50) {
		t.Errorf("expected 50%% enclosed in 1990s, got %v", series[1].Percentages)
	}
	if len(series[2].Percentages) != 0 {
		t.Errorf("expected empty 2000s breakdown, got %v", series[2].Percentages)
	}
}

func TestSentiment(t *testing.T) {
	agg := newTestAggregator(t)
	emotions := Emotions{"humor": {"😂"}, "negative": {"😭"}}

	series, err := agg.Sentiment(context.Background(), testCohorts(), emotions)
	if err != nil {
		t.Fatalf("Sentiment() error: %v", err)
	}

	eighties := series[0]
	if eighties.Total != 3 {
		t.Errorf("expected 3 lines in 1980s, got %d", eighties.Total)
	}
	if !approx(eighties.Percentages["humor"], 20) {
		t.Errorf("expected humor 20%%, got %v", eighties.Percentages["humor"])
	}
	if !approx(eighties.Percentages["negative"], 70.0/3) {
		t.Errorf("expected negative %v%%, got %v", 70.0/3, eighties.Percentages["negative"])
	}
	if len(eighties.Percentages) != 2 {
		t.Errorf("emoji outside the emotion map should be ignored: %v", eighties.Percentages)
	}

	if series[1].Total != 0 || len(series[1].Percentages) != 0 {
		t.Errorf("expected empty 1990s sentiment, got %+v", series[1])
	}
}

func TestTopWords(t *testing.T) {
	agg := newTestAggregator(t)

	top, err := agg.TopWords(context.Background(), testCohorts()[:1], 2)
	if err != nil {
		t.Fatalf("TopWords() error: %v", err)
	}

	want := []WordStat{{"love", 3}, {"money", 3}}
	if len(top) != 1 || len(top[0].Words) != 2 {
		t.Fatalf("unexpected top words: %+v", top)
	}
	for i, w := range want {
		if top[0].Words[i] != w {
			t.Errorf("word %d: expected %+v, got %+v", i, w, top[0].Words[i])
		}
	}
}

func TestTopRhymes(t *testing.T) {
	agg := newTestAggregator(t)

	top, err := agg.TopRhymes(context.Background(), []string{"a", "b", "c", "missing"}, 100)
	if err != nil {
		t.Fatalf("TopRhymes() error: %v", err)
	}

	want := []RhymeStat{
		{Pair: [2]string{"cat", "hat"}, Count: 3},
		{Pair: [2]string{"go", "show"}, Count: 1},
	}
	if len(top) != len(want) {
		t.Fatalf("expected %d rhymes, got %+v", len(want), top)
	}
	for i := range want {
		if top[i] != want[i] {
			t.Errorf("rhyme %d: expected %+v, got %+v", i, want[i], top[i])
		}
	}
}

func TestCohortRhymes(t *testing.T) {
	agg := newTestAggregator(t)

	rhymes, err := agg.CohortRhymes(context.Background(), testCohorts(), 10)
	if err != nil {
		t.Fatalf("CohortRhymes() error: %v", err)
	}
	if len(rhymes) != 3 {
		t.Fatalf("expected 3 cohorts, got %d", len(rhymes))
	}

	eighties := rhymes[0]
	if eighties.Cohort != "1980s" || eighties.Songs != 2 {
		t.Errorf("unexpected 1980s rhymes: %+v", eighties)
	}
	want := RhymeStat{Pair: [2]string{"cat", "hat"}, Count: 3}
	if len(eighties.Rhymes) != 1 || eighties.Rhymes[0] != want {
		t.Errorf("1980s: expected [%+v], got %+v", want, eighties.Rhymes)
	}

	want = RhymeStat{Pair: [2]string{"go", "show"}, Count: 1}
	if len(rhymes[1].Rhymes) != 1 || rhymes[1].Rhymes[0] != want {
		t.Errorf("1990s: expected [%+v], got %+v", want, rhymes[1].Rhymes)
	}
	if rhymes[2].Songs != 0 || len(rhymes[2].Rhymes) != 0 {
		t.Errorf("expected empty 2000s rhymes, got %+v", rhymes[2])
	}
}

func TestCorruptArtifact(t *testing.T) {
	agg := newTestAggregator(t)
	cache := agg.Artifacts.(*artifact.Cache)
	if err := os.WriteFile(cache.Path("broken"), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := agg.RhymeSchemes(context.Background(), []cohort.Cohort{{Key: "1980s", IDs: []string{"a", "broken"}}})
	if err == nil {
		t.Fatal("expected an error for a corrupt artifact")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error should name the song: %v", err)
	}
}

func TestCalculateDrift(t *testing.T) {
	series := []CohortSeries{
		{Cohort: "1970s"},
		{Cohort: "1980s", Total: 10, Percentages: map[string]float64{"love": 40, "money": 10, "cars": 5}},
		{Cohort: "1990s", Total: 10, Percentages: map[string]float64{"love": 20, "money": 30, "cars": 5}},
		{Cohort: "2000s"},
	}

	drift := calculateDrift(series)
	if drift.From != "1980s" || drift.To != "1990s" {
		t.Errorf("expected drift from 1980s to 1990s, got %s to %s", drift.From, drift.To)
	}
	if len(drift.Declined) != 1 || drift.Declined[0].Category != "love" {
		t.Errorf("expected 'love' to decline, got %+v", drift.Declined)
	}
	if len(drift.Emerged) != 1 || drift.Emerged[0].Category != "money" {
		t.Errorf("expected 'money' to emerge, got %+v", drift.Emerged)
	}

	if d := calculateDrift(series[:2]); d.From != "" || d.Declined != nil {
		t.Errorf("expected no drift with one cohort of data, got %+v", d)
	}
}

func TestGenerateReport(t *testing.T) {
	agg := newTestAggregator(t)

	report, err := agg.GenerateReport(context.Background(), testCohorts(), ReportConfig{
		Categories: testCategories(),
		TopWords:   10,
		TopRhymes:  10,
	})
	if err != nil {
		t.Fatalf("GenerateReport() error: %v", err)
	}

	if report.Metadata.TotalSongs != 5 {
		t.Errorf("expected 5 songs, got %d", report.Metadata.TotalSongs)
	}
	if report.Metadata.ParsedSongs != 3 {
		t.Errorf("expected 3 parsed songs, got %d", report.Metadata.ParsedSongs)
	}
	if len(report.Metadata.Cohorts) != 3 || report.Metadata.Cohorts[0] != "1980s" {
		t.Errorf("unexpected cohorts: %v", report.Metadata.Cohorts)
	}
	if len(report.Sentiment) != 3 {
		t.Errorf("expected sentiment for 3 cohorts, got %d", len(report.Sentiment))
	}
	if _, ok := report.Sentiment[0].Percentages["humor"]; !ok {
		t.Errorf("expected default emotions to be used, got %v", report.Sentiment[0].Percentages)
	}
	if len(report.TopRhymes) != 2 {
		t.Errorf("expected 2 top rhymes, got %d", len(report.TopRhymes))
	}
	if len(report.CohortRhymes) != 3 || report.CohortRhymes[1].Cohort != "1990s" {
		t.Errorf("expected rhymes for 3 cohorts, got %+v", report.CohortRhymes)
	}
	if report.CategoryDrift.From != "1980s" {
		t.Errorf("expected category drift from 1980s, got %q", report.CategoryDrift.From)
	}
}
