package simulate

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fusion/pkg/schema"
)

func pinned(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func noSleep(time.Duration) {}

func newTest(seed uint64) *Simulator {
	return New(DefaultTable(), pinned(seed), noSleep)
}

func TestChatNeverEmpty(t *testing.T) {
	s := newTest(1)
	names := []string{"Sherlock Holmes", "sherlock", "Sherlok", "Totally Unknown", "", "iron man", "Tony Stark"}
	moods := []string{"", "funny", "serious", "sad", "angry", "romantic", "nonexistent"}

	for _, name := range names {
		for _, mood := range moods {
			reply := s.Chat(schema.ChatRequest{CharacterName: name, Mood: mood, UserMessage: "hi"})
			assert.NotEmpty(t, strings.TrimSpace(reply.Message), "name=%q mood=%q", name, mood)
			assert.Equal(t, name, reply.CharacterName)
			assert.False(t, reply.Timestamp.IsZero())
		}
	}
}

func TestChatLookupOrder(t *testing.T) {
	table := Table{
		Characters: map[string]Pool{"sherlock": {"character line"}},
		Moods:      map[string]Pool{"funny": {"mood line"}},
		Generic:    Pool{"generic line"},
	}

	tests := []struct {
		name string
		req  schema.ChatRequest
		want string
	}{
		{"exact character", schema.ChatRequest{CharacterName: "sherlock"}, "character line"},
		{"substring character", schema.ChatRequest{CharacterName: "Sherlock Holmes"}, "character line"},
		{"fuzzy character", schema.ChatRequest{CharacterName: "sherlok"}, "character line"},
		{"mood bucket", schema.ChatRequest{CharacterName: "nobody", Mood: "funny"}, "mood line"},
		{"generic fallback", schema.ChatRequest{CharacterName: "nobody", Mood: "bored"}, "generic line"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(table, pinned(1), noSleep)
			assert.Equal(t, tt.want, s.Chat(tt.req).Message)
		})
	}
}

func TestRolePlayInterpolation(t *testing.T) {
	table := Table{
		RolePlayChars: map[string]Pool{"goku": {"*{name} grins at {user}*"}},
	}
	s := New(table, pinned(1), noSleep)

	reply := s.RolePlay(schema.RolePlayRequest{
		AICharacterName:   "Goku",
		UserCharacterName: "Alice",
		UserMessage:       "hello",
	})
	assert.Equal(t, "*Goku grins at Alice*", reply.Message)
	assert.NotContains(t, reply.Message, "{")
}

func TestRolePlayNeverEmpty(t *testing.T) {
	s := newTest(2)
	for _, name := range []string{"Marinette", "goku", "Stranger", ""} {
		reply := s.RolePlay(schema.RolePlayRequest{
			AICharacterName:   name,
			UserCharacterName: "Alice",
			UserMessage:       "hi",
		})
		assert.NotEmpty(t, strings.TrimSpace(reply.Message))
	}
}

func TestStory(t *testing.T) {
	cast := []schema.Character{
		{Name: "Elsa", Source: "Frozen"},
		{Name: "Goku", Source: "Dragon Ball"},
		{Name: "Sherlock", Source: "Sherlock Holmes"},
	}

	s := newTest(3)
	reply := s.Story(schema.StoryRequest{
		UserCharacterName: "Sam",
		AICharacters:      cast,
		UserMessage:       "hello everyone",
	})

	require.Len(t, reply.Responses, 2)
	assert.NotEqual(t, reply.Responses[0].CharacterName, reply.Responses[1].CharacterName)
	for _, r := range reply.Responses {
		assert.NotEmpty(t, strings.TrimSpace(r.Message))
		assert.NotContains(t, r.Message, "{name}")
		assert.NotContains(t, r.Message, "{source}")
		assert.NotContains(t, r.Message, "{user}")
	}
}

func TestStoryNarratorRate(t *testing.T) {
	s := newTest(4)
	cast := []schema.Character{{Name: "Elsa"}}

	var narrated int
	const runs = 500
	for i := 0; i < runs; i++ {
		reply := s.Story(schema.StoryRequest{UserCharacterName: "Sam", AICharacters: cast, UserMessage: "hi"})
		if reply.NarratorUpdate != "" {
			narrated++
		}
	}
	rate := float64(narrated) / runs
	assert.Greater(t, rate, 0.2)
	assert.Less(t, rate, 0.4)
}

func TestSeededDeterminism(t *testing.T) {
	req := schema.ChatRequest{CharacterName: "Hermione", Mood: "funny", UserMessage: "hi"}
	a := newTest(9).Chat(req)
	b := newTest(9).Chat(req)
	assert.Equal(t, a.Message, b.Message)
}

func TestDelayBounds(t *testing.T) {
	var slept []time.Duration
	s := New(DefaultTable(), pinned(5), func(d time.Duration) { slept = append(slept, d) })

	for i := 0; i < 100; i++ {
		s.Chat(schema.ChatRequest{CharacterName: "x", UserMessage: "hi"})
	}
	require.Len(t, slept, 100)
	for _, d := range slept {
		assert.GreaterOrEqual(t, d, 1000*time.Millisecond)
		assert.Less(t, d, 3000*time.Millisecond)
	}
}

func TestTableFileRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, SaveTable(path, DefaultTable()))

	loaded, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTable(), loaded)

	s := New(loaded, pinned(7), noSleep)
	reply := s.Chat(schema.ChatRequest{CharacterName: "elsa", UserMessage: "hi"})
	assert.NotEmpty(t, reply.Message)
}

func TestHostileTableFallsBackToFixedLine(t *testing.T) {
	s := New(Table{}, pinned(6), noSleep)
	reply := s.Chat(schema.ChatRequest{CharacterName: "anyone", UserMessage: "hi"})
	assert.Equal(t, lastResort, reply.Message)
}
