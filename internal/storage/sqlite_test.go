package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHighScoreMissingIsZero(t *testing.T) {
	store := openTestStore(t)

	score, err := store.HighScore("dodge", "default")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if score != 0 {
		t.Errorf("missing key should read as 0, got %d", score)
	}
}

func TestRecordScoreOnlyGrows(t *testing.T) {
	store := openTestStore(t)

	grew, err := store.RecordScore("dodge", "default", 10)
	if err != nil {
		t.Fatalf("RecordScore: %v", err)
	}
	if !grew {
		t.Error("first score should grow from 0")
	}

	// A lower score must not shrink the stored value
	grew, err = store.RecordScore("dodge", "default", 7)
	if err != nil {
		t.Fatalf("RecordScore: %v", err)
	}
	if grew {
		t.Error("lower score must not be recorded as growth")
	}
	if got, _ := store.HighScore("dodge", "default"); got != 10 {
		t.Errorf("high score shrank to %d", got)
	}

	// An equal score is not an improvement
	if grew, _ = store.RecordScore("dodge", "default", 10); grew {
		t.Error("equal score must not count as growth")
	}

	// A higher score grows
	if grew, _ = store.RecordScore("dodge", "default", 11); !grew {
		t.Error("higher score should grow")
	}
	if got, _ := store.HighScore("dodge", "default"); got != 11 {
		t.Errorf("high score = %d, expected 11", got)
	}
}

func TestRecordScoreMonotonicSequence(t *testing.T) {
	store := openTestStore(t)

	prev := 0
	for _, final := range []int{3, 1, 8, 8, 2, 15, 0} {
		if _, err := store.RecordScore("collector", "space", final); err != nil {
			t.Fatalf("RecordScore(%d): %v", final, err)
		}
		got, err := store.HighScore("collector", "space")
		if err != nil {
			t.Fatalf("HighScore: %v", err)
		}
		want := prev
		if final > want {
			want = final
		}
		if got != want {
			t.Fatalf("after run %d: high score = %d, expected max(%d, %d)", final, got, prev, final)
		}
		prev = want
	}
}

func TestScoresAreNamespacedByGameAndTopic(t *testing.T) {
	store := openTestStore(t)

	mustRecord := func(game, topic string, score int) {
		t.Helper()
		if _, err := store.RecordScore(game, topic, score); err != nil {
			t.Fatalf("RecordScore(%s, %s, %d): %v", game, topic, score, err)
		}
	}

	mustRecord("dodge", "default", 5)
	mustRecord("dodge", "space", 9)
	mustRecord("collector", "default", 3)

	cases := []struct {
		game, topic string
		want        int
	}{
		{"dodge", "default", 5},
		{"dodge", "space", 9},
		{"collector", "default", 3},
		{"collector", "space", 0},
	}
	for _, tc := range cases {
		if got, _ := store.HighScore(tc.game, tc.topic); got != tc.want {
			t.Errorf("HighScore(%s, %s) = %d, expected %d", tc.game, tc.topic, got, tc.want)
		}
	}
}

func TestRecordScoreRejectsNegative(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecordScore("dodge", "default", -1); err == nil {
		t.Error("negative score must be rejected")
	}
}

func TestHighScoresForGame(t *testing.T) {
	store := openTestStore(t)

	store.RecordScore("dodge", "default", 5)
	store.RecordScore("dodge", "space", 9)
	store.RecordScore("collector", "default", 99)

	entries, err := store.HighScoresForGame("dodge")
	if err != nil {
		t.Fatalf("HighScoresForGame: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected 2", len(entries))
	}
	if entries[0].Topic != "space" || entries[0].Score != 9 {
		t.Errorf("best entry = %+v, expected space/9 first", entries[0])
	}
	if entries[1].Topic != "default" || entries[1].Score != 5 {
		t.Errorf("second entry = %+v", entries[1])
	}
}

func TestAllHighScores(t *testing.T) {
	store := openTestStore(t)

	store.RecordScore("dodge", "default", 5)
	store.RecordScore("collector", "default", 7)

	entries, err := store.AllHighScores()
	if err != nil {
		t.Fatalf("AllHighScores: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected 2", len(entries))
	}
	// Grouped by game ID ascending
	if entries[0].GameID != "collector" || entries[1].GameID != "dodge" {
		t.Errorf("unexpected order: %+v", entries)
	}
}
