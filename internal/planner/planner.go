package planner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MaxQueries caps how many planned queries are issued downstream. The cap
// bounds external call volume per match request, trading recall for
// predictable cost and latency.
const MaxQueries = 2

// Planner plans catalog search queries from an emotion label and a
// sentiment category.
type Planner struct {
	tables Tables
	limit  int
}

// New creates a Planner over the given tables.
func New(tables Tables) *Planner {
	return &Planner{tables: tables, limit: MaxQueries}
}

// NewDefault creates a Planner over the built-in tables.
func NewDefault() *Planner {
	return New(DefaultTables())
}

// Load reads query tables from a YAML file. Missing sections fall back to
// the built-in tables so a partial override file stays valid.
func Load(path string) (Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("reading query tables: %w", err)
	}

	tables := DefaultTables()
	if err := yaml.Unmarshal(data, &tables); err != nil {
		return Tables{}, fmt.Errorf("parsing query tables: %w", err)
	}
	if len(tables.Default) == 0 {
		tables.Default = DefaultTables().Default
	}
	return tables, nil
}

// Plan returns the catalog queries for the given emotion and sentiment:
// the emotion table's queries first, then the sentiment table's, truncated
// to MaxQueries. When neither key matches, the fixed default pair is used.
func (p *Planner) Plan(emotion, sentiment string) []string {
	queries := p.expand(emotion, sentiment)
	if len(queries) > p.limit {
		queries = queries[:p.limit]
	}
	return queries
}

// expand builds the full concatenated query list before the cap.
func (p *Planner) expand(emotion, sentiment string) []string {
	var queries []string
	queries = append(queries, p.tables.Emotion[emotion]...)
	queries = append(queries, p.tables.Sentiment[sentiment]...)
	if len(queries) == 0 {
		queries = append(queries, p.tables.Default...)
	}
	return queries
}
