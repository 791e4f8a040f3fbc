package policies

import "github.com/zeu5/markov-dp/core"

func terminalModel() *core.TabularMDP[string, string] {
	m := core.NewTabularMDP[string, string]()
	m.AddState("a")
	m.AddState("b")
	return m
}

func selfLoopModel(reward core.Reward) *core.TabularMDP[string, string] {
	m := core.NewTabularMDP[string, string]()
	m.AddTransition("s", "stay", "s", 1.0, reward)
	return m
}

// chainModel is A -go-> B -done-> C with C terminal
func chainModel(r1, r2 core.Reward) *core.TabularMDP[string, string] {
	m := core.NewTabularMDP[string, string]()
	m.AddTransition("A", "go", "B", 1.0, r1)
	m.AddTransition("B", "done", "C", 1.0, r2)
	m.SetTerminal("C")
	return m
}

// tiedModel has two actions in s with the same value
func tiedModel() *core.TabularMDP[string, string] {
	m := core.NewTabularMDP[string, string]()
	m.AddTransition("s", "a", "t", 1.0, 1.0)
	m.AddTransition("s", "b", "t", 1.0, 1.0)
	m.AddTransition("s", "c", "t", 1.0, 0.5)
	m.SetTerminal("t")
	return m
}

// riskModel is a small stochastic model where the safe and the risky
// route differ in value
func riskModel() *core.TabularMDP[string, string] {
	m := core.NewTabularMDP[string, string]()
	m.AddTransition("start", "safe", "mid", 1.0, -1.0)
	m.AddTransition("start", "risky", "goal", 0.6, 5.0)
	m.AddTransition("start", "risky", "pit", 0.4, -10.0)
	m.AddTransition("mid", "walk", "goal", 0.9, 4.0)
	m.AddTransition("mid", "walk", "start", 0.1, -1.0)
	m.AddTransition("mid", "wait", "mid", 1.0, -0.5)
	m.AddTransition("pit", "climb", "start", 0.5, -2.0)
	m.AddTransition("pit", "climb", "pit", 0.5, -2.0)
	m.SetTerminal("goal")
	return m
}

// trapModel rewards quitting s at once, but waiting for m pays more. The
// uniform policy makes m look bad.
func trapModel() *core.TabularMDP[string, string] {
	m := core.NewTabularMDP[string, string]()
	m.AddTransition("s", "quick", "t", 1.0, 1.0)
	m.AddTransition("s", "slow", "m", 1.0, 0.0)
	m.AddTransition("m", "bad", "t", 1.0, -10.0)
	m.AddTransition("m", "good", "t", 1.0, 3.0)
	m.SetTerminal("t")
	return m
}

// emptyActionsModel lists t with an empty set of actions instead of none
type emptyActionsModel struct {
	*core.TabularMDP[string, string]
}

func (m emptyActionsModel) Actions(s string) ([]string, bool) {
	if s == "t" {
		return []string{}, true
	}
	return m.TabularMDP.Actions(s)
}
