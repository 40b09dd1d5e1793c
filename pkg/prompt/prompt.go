// Package prompt builds completion prompts: a persona block, a bounded window
// of conversation history, and a trailing speaker cue. Everything here is pure
// and deterministic; identical inputs always produce byte-identical output.
package prompt

import (
	"fmt"
	"strings"

	"fusion/pkg/schema"
)

// Placeholders substituted when optional persona fields are empty. An empty
// slot would leave a malformed instruction block, so these are never "".
const (
	defaultBackground = "Use your knowledge of this character to respond authentically."
	defaultSource     = "their original story"
)

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Mood normalizes an advisory mood tag. Unknown moods pass through; only the
// empty string is replaced, so the tone slot in the persona block never
// renders blank.
func Mood(mood string) string {
	return orDefault(mood, schema.MoodNeutral)
}

// ChatPersona renders the persona block for direct chat.
func ChatPersona(char schema.Character, mood, notes string) string {
	source := orDefault(char.Source, defaultSource)
	mood = Mood(mood)
	notes = orDefault(notes, defaultBackground)

	return fmt.Sprintf(`You are %[1]s from %[2]s. %[3]s

CRITICAL INSTRUCTIONS:
- You must ONLY respond as %[1]s would respond
- Stay completely in character at all times
- Use %[1]s's personality, speech patterns, vocabulary, and mannerisms
- Reference events, relationships, and knowledge from %[2]s
- Respond in a %[4]s tone while maintaining character authenticity
- Keep responses conversational and engaging (2-4 sentences)
- Include character actions in *asterisks* when appropriate
- Never break character or mention that you are an AI
- Show emotional depth appropriate to %[1]s

Character Background: %[1]s is from %[2]s. %[3]s

Current conversation mood: %[4]s`, char.Name, source, notes, mood)
}

// RolePlayPersona renders the persona block for a two-party role-play scene.
func RolePlayPersona(ai schema.Character, user schema.Character, scene, mood string) string {
	source := orDefault(ai.Source, defaultSource)
	mood = Mood(mood)

	other := user.Name
	if user.Source != "" {
		other += " from " + user.Source
	}

	return fmt.Sprintf(`ROLE-PLAY SCENARIO:

You are %[1]s from %[2]s in an interactive role-playing scenario.

SCENE SETTING: %[3]s

CHARACTERS IN SCENE:
- %[1]s from %[2]s (YOU - respond as this character)
- %[4]s (Other player)

CRITICAL INSTRUCTIONS:
- You must ONLY respond as %[1]s would respond
- Stay completely in character throughout the role-play
- React to the scene and %[5]s's actions authentically
- Include character actions in *asterisks* and dialogue normally
- Respond in a %[6]s tone while maintaining character authenticity
- Consider cross-dimensional/time-travel elements if applicable
- Advance the story naturally while staying true to your character
- Keep responses engaging and interactive (2-4 sentences)
- Never break character or mention that you are an AI

Current mood: %[6]s`, ai.Name, source, scene, other, user.Name, mood)
}

// StoryPersona renders the persona block for one responding character in a
// multi-character story. The cast list names every character present so the
// model can have them interact.
func StoryPersona(speaker schema.Character, user schema.Character, cast []schema.Character, script, mood string) string {
	source := orDefault(speaker.Source, defaultSource)
	mood = Mood(mood)

	userLine := user.Name
	if user.Source != "" {
		userLine += " from " + user.Source
	}

	var castLines strings.Builder
	for _, c := range cast {
		fmt.Fprintf(&castLines, "\n- %s from %s (AI-controlled)", c.Name, orDefault(c.Source, defaultSource))
	}

	return fmt.Sprintf(`MULTI-CHARACTER STORY CREATION:

STORY SETTING: %[1]s

You are %[2]s from %[3]s in this crossover story scenario.

ALL CHARACTERS IN STORY:
- %[4]s (User-controlled)%[5]s

CRITICAL INSTRUCTIONS:
- You must ONLY respond as %[2]s would respond
- Stay completely in character throughout the story
- React to %[6]s's actions and other characters authentically
- Include character actions in *asterisks* and dialogue normally
- Respond in a %[7]s tone while maintaining character authenticity
- Consider crossover story elements and dimensional interactions
- Keep responses engaging and advance the story naturally (2-4 sentences)
- Interact with other characters when appropriate
- Never break character or mention that you are an AI

Current mood: %[7]s`, script, speaker.Name, source, userLine, castLines.String(), user.Name, mood)
}

// Window returns the most recent w turns of the log in original order. The
// source log is never mutated; output size is O(w) regardless of log length.
func Window(log []schema.Turn, w int) []schema.Turn {
	if w <= 0 || len(log) == 0 {
		return nil
	}
	if len(log) > w {
		log = log[len(log)-w:]
	}
	out := make([]schema.Turn, len(log))
	copy(out, log)
	return out
}

// RenderHistory formats windowed turns as a history block, one
// "{speaker}: {content}" line each. User turns speak as userName; other turns
// speak as their attributed character, falling back to fallbackName when the
// turn carries no attribution. Empty input renders nothing, so an empty log
// leaves no dangling separator in the assembled prompt.
func RenderHistory(turns []schema.Turn, header, userName, fallbackName string) string {
	if len(turns) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(header)
	b.WriteString("\n")
	for _, t := range turns {
		speaker := fallbackName
		if t.Role == schema.RoleUser {
			speaker = userName
		} else if t.CharacterName != "" {
			speaker = t.CharacterName
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, t.Content)
	}
	return b.String()
}

// Assemble joins the persona block, the rendered history block (possibly
// empty), and the trailing cue. The bare "{next}:" cue is what steers the
// completion engine to continue as that character.
func Assemble(persona, history, userName, message, next string) string {
	return fmt.Sprintf("%s%s\n\n%s: %s\n%s:", persona, history, userName, message, next)
}

// ScenePrompt is the short side-channel template for a role-play scene update.
func ScenePrompt(scene, mood, action string) string {
	return fmt.Sprintf(`Based on this role-play scenario: %s

Current mood: %s
Recent action: %s

Generate a brief scene update (1 sentence) that describes how the environment or situation changes in response to the characters' actions. Start with an asterisk and describe the scene change in a narrative style.

Example: "*The magical energy in the room shifts as the characters' bond grows stronger*"

Scene update:`, scene, Mood(mood), action)
}

// NarratorPrompt is the short side-channel template for a story narrator update.
func NarratorPrompt(script, mood, action string, cast []schema.Character) string {
	names := make([]string, 0, len(cast))
	for _, c := range cast {
		names = append(names, c.Name)
	}

	return fmt.Sprintf(`Based on this crossover story scenario: %s
Current mood: %s
Recent user action: %s
Characters involved: %s

Generate a brief narrator update (1 sentence) that describes how the story environment or situation evolves in response to the characters' interactions. Start with an asterisk and write in a narrative style that advances the crossover story.

Example: "*The dimensional barriers begin to shimmer as the characters' combined energies create new possibilities*"

Narrator update:`, script, Mood(mood), action, strings.Join(names, ", "))
}
