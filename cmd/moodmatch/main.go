// Command moodmatch runs the mood-to-music matching service. By default it
// serves the HTTP API; with -text it performs a single match and prints
// the result.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/echojournal/moodmatch/internal/genius"
	"github.com/echojournal/moodmatch/internal/mood"
	"github.com/echojournal/moodmatch/internal/planner"
	"github.com/echojournal/moodmatch/internal/recommend"
	"github.com/echojournal/moodmatch/internal/spotify"
	"github.com/echojournal/moodmatch/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	addr := flag.String("addr", web.DefaultAddr, "listen address for the HTTP API")
	text := flag.String("text", "", "run a single match for this text and exit")
	flag.Parse()

	// A .env file is optional; real deployments set the environment.
	_ = godotenv.Load()

	spotifyCfg, err := spotify.LoadConfig()
	if err != nil {
		return err
	}
	geniusCfg, err := genius.LoadConfig()
	if err != nil {
		return err
	}

	tables := planner.DefaultTables()
	if path := os.Getenv("MOODMATCH_QUERIES"); path != "" {
		tables, err = planner.Load(path)
		if err != nil {
			return fmt.Errorf("loading query tables: %w", err)
		}
	}

	analyzer, err := mood.NewAnalyzer(mood.NewVaderScorer(), mood.NewLexiconClassifier())
	if err != nil {
		return fmt.Errorf("creating analyzer: %w", err)
	}

	engine := recommend.NewEngine(
		analyzer,
		spotify.NewConnector(spotifyCfg),
		genius.NewClient(geniusCfg),
		planner.New(tables),
	)

	if *text != "" {
		return matchOnce(engine, *text)
	}

	server, err := web.NewServer(web.ServerConfig{
		Addr:    *addr,
		Matcher: engine,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.Run()
}

// matchOnce runs a single match and prints the outcome to stdout.
func matchOnce(engine *recommend.Engine, text string) error {
	outcome, err := engine.Match(context.Background(), text)
	if err != nil {
		return err
	}

	switch outcome.Kind {
	case recommend.OutcomeServiceUnavailable:
		fmt.Println("Spotify unavailable")
	case recommend.OutcomeNoResults:
		fmt.Println("No popular songs found for your mood.")
	default:
		for i, tr := range outcome.Tracks {
			fmt.Printf("%2d. %s — %s (score %d)\n    %s\n", i+1, tr.Title, tr.Artist, tr.Score, tr.Link)
		}
	}
	return nil
}
