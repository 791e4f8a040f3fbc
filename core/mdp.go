package core

// Reward is a real valued reward. Rewards are summed and discounted, never clamped.
type Reward = float64

// Outcome is one possible result of taking an action in a state
type Outcome[S comparable] struct {
	Probability float64
	Reward      Reward
	Next        S
}

// Deterministic returns the single outcome of a transition that always
// lands in next with the given reward
func Deterministic[S comparable](reward Reward, next S) []Outcome[S] {
	return []Outcome[S]{{Probability: 1, Reward: reward, Next: next}}
}

// MDP is a finite Markov decision process. Implementations are read-only
// for the duration of a solve and may be shared between solvers.
type MDP[S comparable, A comparable] interface {
	// States enumerates every state of the model
	States() []S
	// Actions returns the legal actions in a state. A state whose actions
	// are absent or empty is terminal.
	Actions(S) ([]A, bool)
	// Outcomes returns the possible (reward, next state) pairs of taking
	// the action in the state, together with their probabilities
	Outcomes(S, A) []Outcome[S]
}

// IsTerminal returns true if the state has no legal actions in the model
func IsTerminal[S comparable, A comparable](m MDP[S, A], s S) bool {
	actions, ok := m.Actions(s)
	return !ok || len(actions) == 0
}
