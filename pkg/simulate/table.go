package simulate

// Table is the simulator's response content, kept apart from the lookup logic
// so deployments can swap it wholesale (see LoadTable). Pool templates may
// contain {user}, {name}, and {source} placeholders.
type Table struct {
	Characters     map[string]Pool `json:"characters"`
	Moods          map[string]Pool `json:"moods"`
	Generic        Pool            `json:"generic"`
	RolePlayChars  map[string]Pool `json:"rolePlayCharacters"`
	RolePlayMoods  map[string]Pool `json:"rolePlayMoods"`
	RolePlayOther  Pool            `json:"rolePlayGeneric"`
	StoryResponses Pool            `json:"storyResponses"`
	NarratorLines  Pool            `json:"narratorLines"`
}

// Pool is a set of response variants; one is chosen at random.
type Pool []string

// DefaultTable is the built-in response content.
func DefaultTable() Table {
	return Table{
		Characters: map[string]Pool{
			"sherlock": {
				"*adjusts pipe thoughtfully* Fascinating observation. From my deduction, I can see that you're quite perceptive about this matter.",
				"Elementary! Your question reveals a keen mind at work. Let me share what I've observed...",
				"*steeples fingers* The evidence suggests that your inquiry is most intriguing. In my experience...",
				"Watson would find this conversation most illuminating. As for myself, I deduce that...",
			},
			"hermione": {
				"*flips through a book excitedly* Oh, that's a wonderful question! I've read about this extensively...",
				"According to \"Hogwarts: A History\" and several other sources, I can tell you that...",
				"*raises hand eagerly* I know this one! The answer is quite fascinating actually...",
				"That reminds me of something I learned in the library. Did you know that...",
			},
			"tony": {
				"*taps arc reactor* Well, that's an interesting perspective. FRIDAY, what do you think? Just kidding, let me tell you...",
				"You know, back when I was building the Mark 42, I had a similar thought. Here's the thing...",
				"*adjusts sunglasses* That's either genius or completely insane. I like it. Let me explain why...",
				"Pepper would probably disagree, but I think you're onto something here...",
			},
			"iron man": {
				"*taps arc reactor* Well, that's an interesting perspective. FRIDAY, what do you think? Just kidding, let me tell you...",
				"You know, back when I was building the Mark 42, I had a similar thought. Here's the thing...",
				"*adjusts sunglasses* That's either genius or completely insane. I like it. Let me explain why...",
				"Pepper would probably disagree, but I think you're onto something here...",
			},
			"elsa": {
				"*ice crystals dance around fingers* That's a beautiful thought. In Arendelle, we believe that...",
				"*smiles warmly* Anna would love to hear about this. As for me, I think...",
				"The cold never bothered me, but your words warm my heart. Let me share...",
				"*creates a small ice sculpture* Sometimes the most beautiful things come from understanding...",
			},
			"naruto": {
				"Dattebayo! That's so cool! You know, when I was training to become Hokage...",
				"*grins widely* That reminds me of something Iruka-sensei taught me! Believe it!",
				"Wow, that's amazing! Sasuke would probably say something cool about this, but I think...",
				"*rubs back of head* Heh, that's pretty deep! Back in the Hidden Leaf Village...",
			},
		},
		Moods: map[string]Pool{
			"funny": {
				"*chuckles* That's hilarious! You know what's even funnier? Let me tell you about the time...",
				"Haha! That reminds me of something absolutely ridiculous that happened...",
				"*bursts out laughing* Oh my goodness, that's so funny! Speaking of which...",
				"You've got quite the sense of humor! That's almost as funny as when...",
			},
			"serious": {
				"That's a profound observation. I've given this considerable thought, and I believe...",
				"*nods thoughtfully* This is indeed a serious matter that deserves careful consideration...",
				"You raise an important point. In my experience, such matters require...",
				"*speaks with gravity* This touches on something fundamental that I've long contemplated...",
			},
			"romantic": {
				"*gazes into the distance* That's beautifully said. It reminds me of the way love can...",
				"*speaks softly* There's something magical about what you've shared. It makes me think of...",
				"Your words touch my heart. In matters of love and connection, I've found that...",
				"*smiles tenderly* That's so romantic. It brings to mind the way two hearts can...",
			},
			"sad": {
				"*sighs deeply* That's quite melancholy. I understand that feeling because...",
				"*looks down with a heavy heart* Sometimes life brings such sorrow. I remember when...",
				"That touches on something painful, doesn't it? I've experienced similar sadness when...",
				"*speaks quietly* There's a deep sadness in what you've said. It reminds me of...",
			},
			"angry": {
				"*clenches fists* That's infuriating! I can't stand it when...",
				"*voice rises with passion* You're absolutely right to be upset about this! It makes me angry too because...",
				"*pounds table* This is exactly the kind of thing that drives me crazy! Let me tell you why...",
				"*eyes flash with anger* That's completely unacceptable! I've dealt with similar frustrations when...",
			},
		},
		Generic: Pool{
			"That's really interesting! Tell me more about that.",
			"I see what you mean. From my perspective...",
			"That reminds me of something from my world...",
			"How fascinating! I never thought about it that way.",
			"That's quite different from what I'm used to!",
			"*reacts with curiosity* Could you explain that further?",
			"In my experience, things work a bit differently...",
			"That sounds like quite an adventure! What happened next?",
		},
		RolePlayChars: map[string]Pool{
			"marinette": {
				"*Marinette looks up from her sketchbook, surprised* Oh! {user}! I wasn't expecting to see you here. *glances around nervously* This place is so strange... it's like we're in a completely different timeline.",
				"*fidgets with her earrings* {user}, this is so weird! I feel like I'm meeting you for the first time, but also like I've known you forever.",
				"*eyes widen in recognition* You're {user}! But you seem... different somehow. More experienced?",
			},
			"goku": {
				"*powers down from training stance* Whoa! {user}! You're really strong! I can sense your power level from here! *grins excitedly* Hey, wanna spar?",
				"*scratches head* This is so cool! I've never seen anything like this before! *looks at {user}* You seem really powerful!",
				"*stomach rumbles loudly* Man, all this interdimensional travel makes me hungry! *looks at {user}* Hey, do you know if there's any food around here?",
			},
		},
		RolePlayMoods: map[string]Pool{
			"funny": {
				"*{name} bursts out laughing* {user}! This is absolutely ridiculous! *gestures wildly at the surroundings* What are the odds?",
				"*grins widely* Well, this is unexpected! {user}, you've got to admit this whole situation is pretty hilarious.",
				"*tries to keep a straight face but fails* {user}, I'm trying to be serious about this whole interdimensional thing, but honestly? This is the weirdest day ever!",
			},
			"serious": {
				"*{name} approaches cautiously* {user}, we need to be careful here. This place... there's something powerful about it.",
				"*speaks with gravity* {user}, I'm glad you're here, but we need to understand what brought us to this place.",
				"*nods solemnly* This situation is more complex than I initially thought, {user}. We need to approach this methodically.",
			},
			"romantic": {
				"*{name} looks at {user} with soft eyes* Even in this strange place, seeing you makes everything feel... right somehow.",
				"*speaks tenderly* {user}, this magical place seems to have brought us together for a reason.",
				"*smiles warmly* In all the chaos of this interdimensional meeting, you're like a beacon of light, {user}.",
			},
		},
		RolePlayOther: Pool{
			"*{name} looks around curiously* {user}! What an unexpected meeting! This place is fascinating.",
			"*waves enthusiastically* {user}! I can't believe we're actually here together! What should we explore first?",
			"*{name} studies the surroundings* This is remarkable, {user}. I have so many questions about this situation.",
		},
		StoryResponses: Pool{
			"*{name} reacts thoughtfully* That's an interesting perspective, {user}! From my experience in {source}...",
			"*{name} nods* I can relate to that, {user}. In my world, we often face similar challenges.",
			"*{name} looks curious* Tell me more about that, {user}. How does it work in your dimension?",
			"*{name} smiles* That reminds me of an adventure I had once, {user}...",
			"*{name} considers this* You know, that's quite different from how things work where I come from, {user}.",
		},
		NarratorLines: Pool{
			"*The magical energy in the area shifts, creating new possibilities for adventure*",
			"*The dimensional space responds to the characters' growing bonds, becoming more harmonious*",
			"*Reality itself seems to pulse with the combined energy of the assembled heroes*",
			"*The convergence point stabilizes as the characters work together*",
			"*New pathways between dimensions begin to form around the group*",
		},
	}
}
