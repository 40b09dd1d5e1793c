// Package mode holds the single authoritative constant table for the three
// interaction modes. Server handlers and the local simulator both read from
// here, so the window sizes and sampling parameters cannot drift apart.
package mode

import "fusion/pkg/inference"

// Spec is the full constant set for one interaction mode.
type Spec struct {
	Name string

	// Window is how many trailing turns of the conversation log are rendered
	// into the prompt. Older turns are kept for display but never sent.
	Window int

	Sampling inference.Params

	// SideChance is the probability per turn that the side-channel narrative
	// call fires. Zero disables the side channel entirely.
	SideChance   float64
	SideSampling inference.Params

	HistoryHeader string
}

var (
	Chat = Spec{
		Name:   "chat",
		Window: 6,
		Sampling: inference.Params{
			Temperature:     0.8,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 200,
			Safety:          true,
		},
		HistoryHeader: "Recent conversation:",
	}

	RolePlay = Spec{
		Name:   "roleplay",
		Window: 8,
		Sampling: inference.Params{
			Temperature:     0.9,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 250,
			Safety:          true,
		},
		SideChance: 0.3,
		SideSampling: inference.Params{
			Temperature:     0.7,
			TopK:            20,
			TopP:            0.8,
			MaxOutputTokens: 50,
		},
		HistoryHeader: "Role-play conversation so far:",
	}

	Story = Spec{
		Name:   "story",
		Window: 10,
		Sampling: inference.Params{
			Temperature:     0.9,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 200,
			Safety:          true,
		},
		SideChance: 0.4,
		SideSampling: inference.Params{
			Temperature:     0.8,
			TopK:            30,
			TopP:            0.9,
			MaxOutputTokens: 60,
		},
		HistoryHeader: "Story conversation so far:",
	}
)
