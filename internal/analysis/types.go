package analysis

// Report is the top-level structure for the decade report.
type Report struct {
	Metadata       ReportMetadata `yaml:"report_metadata"`
	WordCategories []CohortSeries `yaml:"word_categories"`
	CategoryDrift  CategoryDrift  `yaml:"category_drift"`
	RhymeSchemes   []CohortSeries `yaml:"rhyme_schemes"`
	Sentiment      []CohortSeries `yaml:"sentiment"`
	TopWords       []CohortWords  `yaml:"top_words"`
	TopRhymes      []RhymeStat    `yaml:"top_rhymes"`
	CohortRhymes   []CohortRhymes `yaml:"cohort_rhymes"`
}

type ReportMetadata struct {
	GeneratedDate string   `yaml:"generated_date"`
	Cohorts       []string `yaml:"cohorts"`
	TotalSongs    int      `yaml:"total_songs"`
	ParsedSongs   int      `yaml:"parsed_songs"`
}

// CohortSeries is one point of a time series: a decade's percentage
// breakdown. Percentages is empty when Total is 0.
type CohortSeries struct {
	Cohort      string             `yaml:"cohort"`
	Songs       int                `yaml:"songs"`
	Total       int                `yaml:"total"`
	Percentages map[string]float64 `yaml:"percentages"`
}

type CohortWords struct {
	Cohort string     `yaml:"cohort"`
	Songs  int        `yaml:"songs"`
	Words  []WordStat `yaml:"words"`
}

type WordStat struct {
	Word  string `yaml:"word"`
	Count int    `yaml:"count"`
}

type CohortRhymes struct {
	Cohort string      `yaml:"cohort"`
	Songs  int         `yaml:"songs"`
	Rhymes []RhymeStat `yaml:"rhymes"`
}

type RhymeStat struct {
	Pair  [2]string `yaml:"pair,flow"`
	Count int       `yaml:"count"`
}

type CategoryDrift struct {
	From     string     `yaml:"from"`
	To       string     `yaml:"to"`
	Declined []DriftTag `yaml:"declined"`
	Emerged  []DriftTag `yaml:"emerged"`
}

type DriftTag struct {
	Category    string  `yaml:"category"`
	FromPercent float64 `yaml:"from_percent"`
	ToPercent   float64 `yaml:"to_percent"`
}
