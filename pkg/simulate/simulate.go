// Package simulate is the last line of defense before the user sees a hard
// error: a local substitute for the completion provider, used only after a
// dispatch failure. It always produces a non-empty reply and never fails.
package simulate

import (
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"fusion/pkg/engine"
	"fusion/pkg/schema"
	"fusion/pkg/utils"
)

// fuzzyThreshold matches near-miss character names ("Sherlok") against table
// keys after exact and substring lookup both miss.
const fuzzyThreshold = 0.8

// lastResort covers a hostile or empty table; a reply must never be empty.
const lastResort = "That's really interesting! Tell me more about that."

// Simulator synthesizes in-character replies from a response table. The
// random source and sleep function are injectable so tests can pin outcomes
// and skip the artificial delay.
type Simulator struct {
	table Table
	rng   *rand.Rand
	sleep func(time.Duration)
}

// New builds a simulator. A nil rng gets a fresh source; a nil sleep uses
// time.Sleep.
func New(table Table, rng *rand.Rand, sleep func(time.Duration)) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Simulator{table: table, rng: rng, sleep: sleep}
}

// Default returns a simulator over the built-in table.
func Default() *Simulator {
	return New(DefaultTable(), nil, nil)
}

// LoadTable reads a replacement response table from a JSON file.
func LoadTable(path string) (Table, error) {
	return utils.Load[Table](path)
}

// SaveTable writes a response table as indented JSON, the starting point for
// customizing the fallback content.
func SaveTable(path string, table Table) error {
	return utils.Save(path, table)
}

// Chat synthesizes a direct-chat reply: character pool first, then mood
// bucket, then the generic pool.
func (s *Simulator) Chat(req schema.ChatRequest) schema.Reply {
	s.delay()

	pool := s.lookup(s.table.Characters, req.CharacterName)
	if pool == nil {
		pool = s.table.Moods[normalize(req.Mood)]
	}
	if pool == nil {
		pool = s.table.Generic
	}

	return schema.Reply{
		Message:       s.pick(pool, req.CharacterName, "", "User"),
		CharacterName: req.CharacterName,
		Timestamp:     time.Now().UTC(),
	}
}

// RolePlay synthesizes a role-play reply with the user's character name
// interpolated into the templates.
func (s *Simulator) RolePlay(req schema.RolePlayRequest) schema.Reply {
	s.delay()

	pool := s.lookup(s.table.RolePlayChars, req.AICharacterName)
	if pool == nil {
		pool = s.table.RolePlayMoods[normalize(req.Mood)]
	}
	if pool == nil {
		pool = s.table.RolePlayOther
	}

	return schema.Reply{
		Message:       s.pick(pool, req.AICharacterName, req.AICharacterSource, req.UserCharacterName),
		CharacterName: req.AICharacterName,
		Timestamp:     time.Now().UTC(),
	}
}

// Story synthesizes a story turn: the same responder selection as the real
// engine, one templated reply per selected character, and an occasional
// narrator line.
func (s *Simulator) Story(req schema.StoryRequest) schema.StoryReply {
	s.delay()

	responders := engine.PickResponders(s.rng, req.AICharacters)
	responses := make([]schema.Reply, 0, len(responders))
	for _, char := range responders {
		responses = append(responses, schema.Reply{
			Message:       s.pick(s.table.StoryResponses, char.Name, char.Source, req.UserCharacterName),
			CharacterName: char.Name,
			Timestamp:     time.Now().UTC(),
		})
	}

	reply := schema.StoryReply{Responses: responses}
	if s.rng.Float64() < 0.3 {
		reply.NarratorUpdate = s.pick(s.table.NarratorLines, "", "", req.UserCharacterName)
	}
	return reply
}

// lookup resolves a character name against a pool map: exact key, then
// substring, then fuzzy match. Keys are walked in sorted order so a seeded
// simulator is fully deterministic.
func (s *Simulator) lookup(pools map[string]Pool, name string) Pool {
	if len(pools) == 0 {
		return nil
	}
	n := normalize(name)
	if pool, ok := pools[n]; ok && len(pool) > 0 {
		return pool
	}

	keys := make([]string, 0, len(pools))
	for k := range pools {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if strings.Contains(n, k) && len(pools[k]) > 0 {
			return pools[k]
		}
	}
	for _, k := range keys {
		if utils.Similarity(n, k) >= fuzzyThreshold && len(pools[k]) > 0 {
			return pools[k]
		}
	}
	return nil
}

// pick chooses one variant and interpolates placeholders. Empty pools fall
// back to the generic pool and, past that, to a fixed line.
func (s *Simulator) pick(pool Pool, name, source, user string) string {
	if len(pool) == 0 {
		pool = s.table.Generic
	}
	if len(pool) == 0 {
		return lastResort
	}

	out := pool[s.rng.IntN(len(pool))]
	out = strings.ReplaceAll(out, "{name}", name)
	out = strings.ReplaceAll(out, "{source}", source)
	out = strings.ReplaceAll(out, "{user}", user)
	if strings.TrimSpace(out) == "" {
		return lastResort
	}
	return out
}

// delay preserves perceived latency parity with a real dispatch: 1-3 seconds.
func (s *Simulator) delay() {
	s.sleep(time.Duration(1000+s.rng.IntN(2000)) * time.Millisecond)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
