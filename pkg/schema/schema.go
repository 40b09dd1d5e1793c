package schema

import "time"

// Turn roles. Anything that is not the user is rendered under the speaking
// character's name.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Known moods. The mood is advisory only: it changes tone instructions and
// sampling, never validity. Unknown values pass through untouched.
const (
	MoodFunny    = "funny"
	MoodSerious  = "serious"
	MoodSad      = "sad"
	MoodAngry    = "angry"
	MoodRomantic = "romantic"
	MoodNeutral  = "neutral"
)

// Character identifies one persona: a name and the work it comes from.
type Character struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Turn is one message in a conversation. Turns are appended, never mutated;
// insertion order is the only ordering guarantee.
type Turn struct {
	Role          string `json:"role"`
	Content       string `json:"content"`
	CharacterName string `json:"characterName,omitempty"`
}

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	CharacterName       string `json:"characterName"`
	CharacterSource     string `json:"characterSource"`
	UserMessage         string `json:"userMessage"`
	Mood                string `json:"mood,omitempty"`
	AdditionalInfo      string `json:"additionalInfo,omitempty"`
	ConversationHistory []Turn `json:"conversationHistory,omitempty"`
}

// RolePlayRequest is the body of POST /api/roleplay.
type RolePlayRequest struct {
	AICharacterName     string `json:"aiCharacterName"`
	AICharacterSource   string `json:"aiCharacterSource"`
	UserCharacterName   string `json:"userCharacterName"`
	UserCharacterSource string `json:"userCharacterSource,omitempty"`
	SceneDescription    string `json:"sceneDescription"`
	UserMessage         string `json:"userMessage"`
	Mood                string `json:"mood,omitempty"`
	ConversationHistory []Turn `json:"conversationHistory,omitempty"`
}

// StoryRequest is the body of POST /api/story.
type StoryRequest struct {
	UserCharacterName   string      `json:"userCharacterName"`
	UserCharacterSource string      `json:"userCharacterSource,omitempty"`
	AICharacters        []Character `json:"aiCharacters"`
	StoryScript         string      `json:"storyScript"`
	UserMessage         string      `json:"userMessage"`
	Mood                string      `json:"mood,omitempty"`
	ConversationHistory []Turn      `json:"conversationHistory,omitempty"`
}

// Reply is a single character's generated message. Chat and role-play return
// one; story mode returns a list of them.
type Reply struct {
	Message       string    `json:"message"`
	CharacterName string    `json:"characterName"`
	Timestamp     time.Time `json:"timestamp"`
	// SceneUpdate is only ever set on role-play replies, and only when the
	// side-channel scene call fired and succeeded.
	SceneUpdate string `json:"sceneUpdate,omitempty"`
}

// StoryReply is the body of a successful story turn: one reply per responding
// character, plus an occasional narrator line.
type StoryReply struct {
	Responses      []Reply `json:"responses"`
	NarratorUpdate string  `json:"narratorUpdate,omitempty"`
}
