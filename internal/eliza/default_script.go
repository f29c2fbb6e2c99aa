package eliza

// DefaultScript returns the built-in rule set, compiled and ready to share.
// It panics only if the built-in table is itself invalid, which is covered by
// tests.
func DefaultScript() *Script {
	s := &Script{
		Synonyms: map[string]string{
			"mom":       "mother",
			"mum":       "mother",
			"dad":       "father",
			"parents":   "family",
			"brother":   "family",
			"sister":    "family",
			"unhappy":   "sad",
			"depressed": "sad",
			"upset":     "sad",
			"miserable": "sad",
			"elated":    "happy",
			"glad":      "happy",
			"better":    "happy",
			"yeah":      "yes",
			"yep":       "yes",
			"nope":      "no",
			"nah":       "no",
			"think":     "believe",
			"recall":    "remember",
			"dreams":    "dream",
			"dreamed":   "dream",
			"dreamt":    "dream",
			"apologize": "sorry",
		},
		Reflections: defaultReflections(),
		Farewell: FarewellGroup{
			Keywords: []string{"bye", "goodbye", "farewell", "quit", "exit", "later", "leave"},
			Templates: []string{
				"Thank you for talking with me.",
				"Good-bye. This was really a nice talk.",
				"Good-bye. I hope I have helped you.",
				"This was a nice session. Good-bye.",
			},
		},
		Memory: MemoryGroup{
			Keyword: "my",
			Templates: []string{
				"Earlier you said your {1}.",
				"Does that have anything to do with the fact that your {1}?",
				"Let's discuss further why your {1}.",
			},
		},
		Fallback: []string{
			"Please tell me more.",
			"Let's change focus a bit... Tell me about your family.",
			"Can you elaborate on that?",
			"Why do you say that?",
			"I see.",
			"Very interesting.",
			"I see. And what does that tell you?",
			"How does that make you feel?",
			"Do you feel strongly about discussing such things?",
		},
		EmptyPrompt: "Please say something.",
		Rules: []Rule{
			{
				Keyword: "sorry",
				Rank:    9,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "sorry", Wildcard},
						Templates: []string{
							"Please don't apologize.",
							"Apologies are not necessary.",
							"What feelings do you have when you apologize?",
						},
					},
				},
			},
			{
				Keyword: "remember",
				Rank:    8,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "remember", Wildcard},
						Templates: []string{
							"Do you often think of {1}?",
							"Does thinking of {1} bring anything else to mind?",
							"What else do you remember?",
							"Why do you remember {1} just now?",
						},
					},
				},
			},
			{
				Keyword: "dream",
				Rank:    7,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "dream", Wildcard},
						Templates: []string{
							"What does that dream suggest to you?",
							"Do you dream often?",
							"What persons appear in your dreams?",
							"Are you disturbed by your dreams?",
						},
					},
				},
			},
			{
				Keyword: "mother",
				Rank:    6,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "mother", Wildcard},
						Templates: []string{
							"Tell me more about your family.",
							"Your mother?",
							"What else comes to mind when you think of your mother?",
						},
					},
				},
			},
			{
				Keyword: "father",
				Rank:    6,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "father", Wildcard},
						Templates: []string{
							"Tell me more about your family.",
							"Your father?",
							"What else comes to mind when you think of your father?",
						},
					},
				},
			},
			{
				Keyword: "family",
				Rank:    6,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "family", Wildcard},
						Templates: []string{
							"Tell me more about your family.",
							"Who else in your family is on your mind?",
						},
					},
				},
			},
			{
				Keyword: "sad",
				Rank:    5,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "sad", Wildcard},
						Templates: []string{
							"I am sorry to hear that you are sad.",
							"Do you think coming here will help you not to be sad?",
							"I'm sure it's not pleasant to be sad.",
							"Can you explain what made you sad?",
						},
					},
				},
			},
			{
				Keyword: "happy",
				Rank:    5,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "happy", Wildcard},
						Templates: []string{
							"How have I helped you to be happy?",
							"What makes you happy just now?",
							"Can you explain why you are suddenly happy?",
						},
					},
				},
			},
			{
				Keyword: "believe",
				Rank:    4,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "believe", Wildcard},
						Templates: []string{
							"Do you really think so?",
							"But you are not sure you believe that.",
							"Do you really doubt that?",
						},
					},
				},
			},
			{
				Keyword: "my",
				Rank:    3,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "my", Wildcard},
						Templates: []string{
							"Your {1}?",
							"Why do you say your {1}?",
							"Does your {1} matter to you a great deal?",
						},
					},
				},
			},
			{
				Keyword: "yes",
				Rank:    2,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "yes", Wildcard},
						Templates: []string{
							"You seem quite positive.",
							"You are sure?",
							"I see.",
							"I understand.",
						},
					},
				},
			},
			{
				Keyword: "no",
				Rank:    2,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "no", Wildcard},
						Templates: []string{
							"Are you saying 'No' just to be negative?",
							"You are being a bit negative.",
							"Why not?",
							"Why 'No'?",
						},
					},
				},
			},
			{
				Keyword: "i",
				Rank:    1,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "i", "am", Wildcard},
						Templates: []string{
							"Did you come to me because you are {1}?",
							"How long have you been {1}?",
							"Do you believe it is normal to be {1}?",
							"Do you enjoy being {1}?",
						},
					},
					{
						Pattern: []string{Wildcard, "i", Wildcard},
						Templates: []string{
							"We should be discussing you, not me.",
							"Why do you say that?",
							"I see.",
							"And what does that tell you?",
							"How does that make you feel?",
						},
					},
				},
			},
			{
				Keyword: "you",
				Rank:    1,
				Decomp: []Decomposition{
					{
						Pattern: []string{Wildcard, "you", "are", Wildcard},
						Templates: []string{
							"Why are you interested in whether I am {1} or not?",
							"Would you prefer if I were not {1}?",
							"Perhaps I am {1} in your fantasies.",
							"Do you sometimes think I am {1}?",
						},
					},
					{
						Pattern: []string{Wildcard, "you", Wildcard},
						Templates: []string{
							"We should be discussing you, not me.",
							"Oh, I {1}?",
							"You're not really talking about me, are you?",
							"What makes you think I {1}?",
						},
					},
				},
			},
		},
	}
	if err := s.Compile(); err != nil {
		panic("eliza: default script invalid: " + err.Error())
	}
	return s
}
