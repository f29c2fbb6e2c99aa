package eliza

import "strings"

// historyTokenLimit caps how much of a single input is retained in session
// history. Matching always sees the full input; only retention truncates.
const historyTokenLimit = 64

// Session holds the mutable state of one logical conversation. It is owned
// by exactly one caller (the stream serving the conversation) and must never
// be shared between concurrent callers. Discard it when the stream closes or
// the engine reports termination.
type Session struct {
	historyLimit int
	history      []string
	cursors      map[string]int
	memory       []string
	terminated   bool
}

// NewSession creates an empty session retaining at most historyLimit inputs.
func NewSession(historyLimit int) *Session {
	if historyLimit <= 0 {
		historyLimit = 16
	}
	return &Session{
		historyLimit: historyLimit,
		cursors:      make(map[string]int),
	}
}

// Terminated reports whether a farewell has ended this session.
func (s *Session) Terminated() bool { return s.terminated }

// History returns a copy of the retained normalized inputs, oldest first.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// nextTemplate picks the round-robin template for a keyword and advances the
// cursor, so consecutive matches on the same keyword never repeat a template
// unless the set has size one.
func (s *Session) nextTemplate(keyword string, templates []string) string {
	idx := s.cursors[keyword] % len(templates)
	s.cursors[keyword]++
	return templates[idx]
}

// remember stashes a fallback reply for a later turn.
func (s *Session) remember(reply string) {
	s.memory = append(s.memory, reply)
}

// recallMemory pops the oldest stashed reply, if any.
func (s *Session) recallMemory() (string, bool) {
	if len(s.memory) == 0 {
		return "", false
	}
	reply := s.memory[0]
	s.memory = s.memory[1:]
	return reply, true
}

// appendHistory records a normalized input, truncating very long inputs and
// evicting the oldest entries beyond the retention limit.
func (s *Session) appendHistory(tokens []string) {
	if len(tokens) > historyTokenLimit {
		tokens = tokens[:historyTokenLimit]
	}
	s.history = append(s.history, strings.Join(tokens, " "))
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = s.history[over:]
	}
}
