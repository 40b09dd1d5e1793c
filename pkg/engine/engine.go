// Package engine runs one conversation turn end to end: prompt assembly,
// a single dispatch to the completion provider, the optional side-channel
// narrative call, and multi-character responder selection for story mode.
// All calls within a turn are sequential; there is no retry anywhere.
package engine

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"fusion/pkg/inference"
	"fusion/pkg/mode"
	"fusion/pkg/prompt"
	"fusion/pkg/schema"
	"fusion/pkg/utils"
)

// ErrNoResponses is the story-mode exhaustion case: every selected character's
// dispatch failed, so the turn produced nothing the user can see.
var ErrNoResponses = errors.New("no character responses generated")

// Engine dispatches turns through a single Inferencer. The random source
// drives responder selection and side-channel gating; tests pin it.
type Engine struct {
	inf inference.Inferencer
	rng *rand.Rand
}

func New(inf inference.Inferencer, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{inf: inf, rng: rng}
}

// Chat runs one direct-chat turn.
func (e *Engine) Chat(ctx context.Context, req schema.ChatRequest) (*schema.Reply, error) {
	m := mode.Chat
	char := schema.Character{Name: req.CharacterName, Source: req.CharacterSource}

	persona := prompt.ChatPersona(char, req.Mood, req.AdditionalInfo)
	history := prompt.RenderHistory(prompt.Window(req.ConversationHistory, m.Window), m.HistoryHeader, "User", char.Name)
	full := prompt.Assemble(persona, history, "User", req.UserMessage, char.Name)
	e.logPrompt(m.Name, char.Name, full)

	text, err := e.inf.Complete(ctx, m.Sampling, full)
	if err != nil {
		return nil, err
	}

	return &schema.Reply{
		Message:       text,
		CharacterName: char.Name,
		Timestamp:     time.Now().UTC(),
	}, nil
}

// RolePlay runs one two-party role-play turn. The scene update is attempted
// only after the main dispatch succeeds, and its failure is never surfaced.
func (e *Engine) RolePlay(ctx context.Context, req schema.RolePlayRequest) (*schema.Reply, error) {
	m := mode.RolePlay
	ai := schema.Character{Name: req.AICharacterName, Source: req.AICharacterSource}
	user := schema.Character{Name: req.UserCharacterName, Source: req.UserCharacterSource}

	persona := prompt.RolePlayPersona(ai, user, req.SceneDescription, req.Mood)
	history := prompt.RenderHistory(prompt.Window(req.ConversationHistory, m.Window), m.HistoryHeader, user.Name, ai.Name)
	full := prompt.Assemble(persona, history, user.Name, req.UserMessage, ai.Name)
	e.logPrompt(m.Name, ai.Name, full)

	text, err := e.inf.Complete(ctx, m.Sampling, full)
	if err != nil {
		return nil, err
	}

	reply := &schema.Reply{
		Message:       text,
		CharacterName: ai.Name,
		Timestamp:     time.Now().UTC(),
	}

	if e.rng.Float64() < m.SideChance {
		update, err := e.inf.Complete(ctx, m.SideSampling, prompt.ScenePrompt(req.SceneDescription, req.Mood, req.UserMessage))
		if err != nil {
			log.Debug("scene update skipped", "error", err)
		} else {
			reply.SceneUpdate = update
		}
	}

	return reply, nil
}

// Story runs one multi-character story turn. Each selected character is
// dispatched in sequence with its failure captured, not thrown, so one
// character cannot abort the rest of the turn.
func (e *Engine) Story(ctx context.Context, req schema.StoryRequest) (*schema.StoryReply, error) {
	m := mode.Story
	user := schema.Character{Name: req.UserCharacterName, Source: req.UserCharacterSource}

	responses := make([]schema.Reply, 0, 2)
	for _, char := range PickResponders(e.rng, req.AICharacters) {
		persona := prompt.StoryPersona(char, user, req.AICharacters, req.StoryScript, req.Mood)
		history := prompt.RenderHistory(prompt.Window(req.ConversationHistory, m.Window), m.HistoryHeader, user.Name, char.Name)
		full := prompt.Assemble(persona, history, user.Name, req.UserMessage, char.Name)
		e.logPrompt(m.Name, char.Name, full)

		text, err := e.inf.Complete(ctx, m.Sampling, full)
		if err != nil {
			log.Warn("character response failed", "character", char.Name, "error", err)
			continue
		}
		responses = append(responses, schema.Reply{
			Message:       text,
			CharacterName: char.Name,
			Timestamp:     time.Now().UTC(),
		})
	}

	reply := &schema.StoryReply{Responses: responses}

	if e.rng.Float64() < m.SideChance {
		update, err := e.inf.Complete(ctx, m.SideSampling, prompt.NarratorPrompt(req.StoryScript, req.Mood, req.UserMessage, req.AICharacters))
		if err != nil {
			log.Debug("narrator update skipped", "error", err)
		} else {
			reply.NarratorUpdate = update
		}
	}

	if len(responses) == 0 {
		return nil, ErrNoResponses
	}
	return reply, nil
}

// PickResponders shuffles the cast and selects at most two distinct
// characters to speak this turn. Selection is re-randomized every turn with
// no rotation guarantee; a name never appears twice in one turn's set.
func PickResponders(rng *rand.Rand, cast []schema.Character) []schema.Character {
	if len(cast) == 0 {
		return nil
	}

	shuffled := make([]schema.Character, len(cast))
	copy(shuffled, cast)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	seen := make(map[string]struct{}, 2)
	picked := make([]schema.Character, 0, 2)
	for _, c := range shuffled {
		key := strings.ToLower(strings.TrimSpace(c.Name))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		picked = append(picked, c)
		if len(picked) == 2 {
			break
		}
	}
	return picked
}

// logPrompt records prompt size at debug level. Message content itself is
// never logged.
func (e *Engine) logPrompt(mode, character, p string) {
	if tokens, err := utils.EstimateTokens(p); err == nil {
		log.Debug("assembled prompt", "mode", mode, "character", character, "chars", len(p), "tokens", tokens)
	} else {
		log.Debug("assembled prompt", "mode", mode, "character", character, "chars", len(p))
	}
}
