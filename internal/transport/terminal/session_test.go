package terminal

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/iamasit07/4-in-a-row/terminal/internal/config"
	"github.com/iamasit07/4-in-a-row/terminal/internal/repository/kv"
	"github.com/iamasit07/4-in-a-row/terminal/internal/service/bot"
	"github.com/rs/zerolog"
)

func runSession(t *testing.T, input string, prefs kv.PreferenceRepository, level int) string {
	t.Helper()
	engine := bot.NewEngine(bot.WithWorkers(2), bot.WithLogger(zerolog.Nop()))
	var out bytes.Buffer

	s := NewSession(strings.NewReader(input), &out, engine, prefs, level)
	if err := s.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return out.String()
}

func TestSessionPlaysBotReply(t *testing.T) {
	out := runSession(t, "1\n4\n", kv.NewMemoryStore(), config.AskLevel)

	for _, want := range []string{
		"Choose the level of the bot (0-10)",
		"Bot level 1 (easy)",
		"Bot drops slot number : 1",
		"Board Score = 0",
		"Actual Board Score = 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
}

func TestSessionRepromptsOnBadInput(t *testing.T) {
	out := runSession(t, "eleven\n12\n2\nabc\n0\n9\n", kv.NewMemoryStore(), config.AskLevel)

	if got := strings.Count(out, "This is not a number"); got != 2 {
		t.Errorf("'This is not a number' printed %d times, want 2", got)
	}
	if !strings.Contains(out, "There are only 0-10 levels") {
		t.Error("level out of range was not reported")
	}
	if got := strings.Count(out, "Number out of range"); got != 2 {
		t.Errorf("'Number out of range' printed %d times, want 2", got)
	}
	if strings.Contains(out, "Bot drops slot number") {
		t.Error("the bot moved although the human never did")
	}
}

func TestSessionUsesStoredLevel(t *testing.T) {
	prefs := kv.NewMemoryStore()
	if err := prefs.Save(&kv.Preferences{Level: 7}); err != nil {
		t.Fatal(err)
	}

	out := runSession(t, "\n", prefs, config.AskLevel)
	if !strings.Contains(out, "[7]") || !strings.Contains(out, "Bot level 7 (hard)") {
		t.Errorf("stored level not offered or used:\n%s", out)
	}
}

func TestSessionIgnoresInvalidStoredLevel(t *testing.T) {
	prefs := kv.NewMemoryStore()
	if err := prefs.Save(&kv.Preferences{Level: 15}); err != nil {
		t.Fatal(err)
	}

	out := runSession(t, "\n", prefs, config.AskLevel)
	want := kv.DefaultPreferences().Level
	if !strings.Contains(out, fmt.Sprintf("[%d]", want)) || !strings.Contains(out, fmt.Sprintf("Bot level %d", want)) {
		t.Errorf("default level not used in place of the stored one:\n%s", out)
	}

	got, err := prefs.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Level != want {
		t.Errorf("saved level = %d, want %d", got.Level, want)
	}
}

func TestSessionSavesChosenLevel(t *testing.T) {
	prefs := kv.NewMemoryStore()
	runSession(t, "3\n", prefs, config.AskLevel)

	got, err := prefs.Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.Level != 3 {
		t.Errorf("saved level = %d, want 3", got.Level)
	}
}

func TestSessionFullGame(t *testing.T) {
	// level 0 never searches, so the bot stacks column 1 and X wins on the
	// bottom row before the bot can complete its column
	input := strings.Join([]string{"4", "5", "6", "7", "n"}, "\n") + "\n"
	out := runSession(t, input, kv.NewMemoryStore(), 0)

	if strings.Contains(out, "Choose the level") {
		t.Error("a fixed level should not be prompted for")
	}
	if got := strings.Count(out, "Bot drops slot number : 1"); got != 3 {
		t.Errorf("bot played slot 1 %d times, want 3", got)
	}
	if !strings.Contains(out, "X wins! You beat the bot.") {
		t.Errorf("win not announced:\n%s", out)
	}
	if !strings.Contains(out, "Continue playing? (y/n):") || !strings.HasSuffix(out, "Exiting program ...\n") {
		t.Errorf("play again prompt missing or session did not exit:\n%s", out)
	}
}

func TestSessionRejectsFullColumn(t *testing.T) {
	// X and O alternate in column 1 at level 0 until it is full
	input := strings.Join([]string{"1", "1", "1", "1"}, "\n") + "\n"
	out := runSession(t, input, kv.NewMemoryStore(), 0)

	if !strings.Contains(out, "Column 1 is full") {
		t.Errorf("full column not reported:\n%s", out)
	}
}

func TestSessionPlayAgain(t *testing.T) {
	input := strings.Join([]string{"4", "5", "6", "7", "y", "4"}, "\n") + "\n"
	out := runSession(t, input, kv.NewMemoryStore(), 0)

	if got := strings.Count(out, "Bot level 0 (easy)"); got != 2 {
		t.Errorf("started %d games, want 2", got)
	}
}
