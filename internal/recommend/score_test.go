package recommend

import (
	"testing"

	"github.com/echojournal/moodmatch/internal/mood"
)

func TestScoreTrack(t *testing.T) {
	analysis := mood.Analysis{
		Tokens:    []string{"happy", "sunshine", "walk", "morning"},
		Keywords:  []string{"sunshine", "morning", "walk", "ignored-fourth"},
		Sentiment: mood.SentimentPositive,
		Emotion:   "joy",
	}

	tests := []struct {
		name   string
		track  Track
		lyrics string
		want   int
	}{
		{
			name:  "popularity only",
			track: Track{Title: "Untitled", Artist: "Somebody", Popularity: 60},
			want:  60,
		},
		{
			name:  "keyword in title",
			track: Track{Title: "Walking on Sunshine", Artist: "Katrina", Popularity: 70},
			// "sunshine" and "walk" (substring of "walking") hit the title.
			want: 70 + 50 + 50,
		},
		{
			name:  "keyword in artist",
			track: Track{Title: "Untitled", Artist: "Morning Club", Popularity: 50},
			want:  50 + 30,
		},
		{
			name:  "only top three keywords count",
			track: Track{Title: "ignored-fourth anthem", Artist: "Somebody", Popularity: 40},
			want:  40,
		},
		{
			name:   "emotion and sentiment in lyrics",
			track:  Track{Title: "Untitled", Artist: "Somebody", Popularity: 55},
			lyrics: "so much joy in this positive life",
			want:   55 + 25 + 15,
		},
		{
			name:   "token overlap counts distinct words",
			track:  Track{Title: "Untitled", Artist: "Somebody", Popularity: 45},
			lyrics: "sunshine sunshine happy happy walk no",
			// "walk" is 4 letters; "no" too short; distinct overlap = 3.
			want: 45 + 3*lyricsOverlapPerWord,
		},
		{
			name:   "empty lyrics skip lyric signals entirely",
			track:  Track{Title: "Untitled", Artist: "Somebody", Popularity: 80},
			lyrics: "",
			want:   80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreTrack(tt.track, analysis, tt.lyrics)
			if got != tt.want {
				t.Errorf("scoreTrack = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScoreMonotonicInPopularity(t *testing.T) {
	analysis := mood.Analysis{
		Tokens:    []string{"quiet", "evening"},
		Keywords:  []string{"quiet"},
		Sentiment: mood.SentimentNeutral,
		Emotion:   "sadness",
	}
	lyrics := "a quiet evening full of sadness"

	prev := -1
	for pop := 40; pop <= 100; pop += 10 {
		track := Track{Title: "Quiet Nights", Artist: "Somebody", Popularity: pop}
		got := scoreTrack(track, analysis, lyrics)
		if got < prev {
			t.Fatalf("score decreased when popularity rose to %d: %d < %d", pop, got, prev)
		}
		prev = got
	}
}

func TestRankStableOnTies(t *testing.T) {
	scored := []ScoredTrack{
		{Track: Track{Title: "first", Popularity: 50}, Score: 80},
		{Track: Track{Title: "second", Popularity: 50}, Score: 80},
		{Track: Track{Title: "third", Popularity: 50}, Score: 95},
		{Track: Track{Title: "fourth", Popularity: 50}, Score: 80},
	}

	got := rank(scored)

	wantOrder := []string{"third", "first", "second", "fourth"}
	for i, title := range wantOrder {
		if got[i].Title != title {
			t.Fatalf("rank order[%d] = %q, want %q (full: %v)", i, got[i].Title, title, got)
		}
	}
}

func TestRankCaps(t *testing.T) {
	var scored []ScoredTrack
	for i := 0; i < 20; i++ {
		scored = append(scored, ScoredTrack{Score: i})
	}
	if got := rank(scored); len(got) != maxCandidates {
		t.Errorf("rank returned %d tracks, want %d", len(got), maxCandidates)
	}
}
