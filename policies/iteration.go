package policies

import (
	"math"

	"github.com/zeu5/markov-dp/core"
)

// PolicyIterator improves a policy greedily with respect to a state value function
type PolicyIterator[S comparable, A comparable] struct {
	mdp    core.MDP[S, A]
	gamma  float64
	margin float64
	round  int

	*settings
}

func NewPolicyIterator[S comparable, A comparable](mdp core.MDP[S, A], gamma float64, opts ...Option) *PolicyIterator[S, A] {
	return &PolicyIterator[S, A]{
		mdp:      mdp,
		gamma:    gamma,
		settings: newSettings(opts),
	}
}

// SetImprovementMargin sets how much better than the current policy's
// actions another legal action must look before Improve switches to it
func (p *PolicyIterator[S, A]) SetImprovementMargin(margin float64) {
	p.margin = margin
}

// Improve returns the stochastic policy that picks, in every state, all the
// actions of maximal action value among those the current policy takes.
// Tied actions are all kept. Unless the support is restricted, the maximal
// actions among all legal actions replace them when their value exceeds the
// best current one by more than the improvement margin.
func (p *PolicyIterator[S, A]) Improve(policy core.Policy[S, A], v core.ValueFunction[S]) *core.StochasticPolicy[S, A] {
	chosenActions := make(map[S][]A)
	for _, s := range p.mdp.States() {
		if core.IsTerminal(p.mdp, s) {
			p.report(core.NoLegalActions, s)
			continue
		}
		legal, _ := p.mdp.Actions(s)
		candidates := make([]A, 0, len(legal))
		for _, a := range legal {
			if policy.Probability(s, a) > 0.0 {
				candidates = append(candidates, a)
			}
		}
		if len(candidates) == 0 {
			p.report(core.NoCandidateActions, s)
			if p.restrictToSupport {
				continue
			}
		}

		best, bestValue := p.maximal(s, candidates, v)
		if !p.restrictToSupport && len(candidates) < len(legal) {
			all, allValue := p.maximal(s, legal, v)
			if len(best) == 0 || allValue > bestValue+p.margin {
				best = all
			}
		}
		chosenActions[s] = best
	}
	return core.NewStochasticPolicy(chosenActions)
}

// maximal returns all the actions reaching the maximal action value
func (p *PolicyIterator[S, A]) maximal(s S, actions []A, v core.ValueFunction[S]) ([]A, core.Reward) {
	best := make([]A, 0, 1)
	maxValue := -math.MaxFloat64
	for _, a := range actions {
		value := core.ActionValue(s, a, p.mdp, p.gamma, v)
		if value >= maxValue {
			if value > maxValue {
				best = best[:0]
				maxValue = value
			}
			best = append(best, a)
		}
	}
	return best, maxValue
}

func (p *PolicyIterator[S, A]) report(kind core.AnomalyKind, s S) {
	p.reporter.Report(core.Anomaly{
		Kind:   kind,
		Solver: PolicyIterationName,
		Sweep:  p.round,
		State:  s,
	})
}

// PolicyIterationResult is the outcome of GetOptimalPolicy
type PolicyIterationResult[S comparable, A comparable] struct {
	Policy                *core.StochasticPolicy[S, A]
	ImprovementIterations int
	EvaluatorIterations   int
	// Estimates is the value table of the final evaluation
	Estimates core.ValueTable[S]
}

// GetOptimalPolicy runs policy iteration from the uniform random policy.
// Evaluation and improvement alternate until two successive evaluations
// produce exactly the same value table. The improvement margin is
// ImprovementMargin(config) so that evaluation error never triggers a switch.
func GetOptimalPolicy[S comparable, A comparable](mdp core.MDP[S, A], config core.SolverConfig, opts ...Option) (*PolicyIterationResult[S, A], error) {
	evaluator, err := NewPolicyEvaluator(mdp, config, opts...)
	if err != nil {
		return nil, err
	}
	improver := NewPolicyIterator(mdp, config.Discount, opts...)
	improver.SetImprovementMargin(ImprovementMargin(config))
	initialPolicy := core.NewUniformPolicy(mdp)

	result := &PolicyIterationResult[S, A]{}
	priorEstimates := evaluator.Estimates()

	evaluator.round, improver.round = 1, 1
	if err := evaluator.Evaluate(initialPolicy); err != nil {
		return nil, err
	}
	result.EvaluatorIterations += evaluator.Iterations()

	policy := improver.Improve(initialPolicy, evaluator.Estimates().Get)
	result.ImprovementIterations++

	// exact comparison: evaluation is deterministic for a fixed policy
	for !priorEstimates.Equal(evaluator.Estimates()) {
		priorEstimates = evaluator.Estimates()

		evaluator.round, improver.round = result.ImprovementIterations+1, result.ImprovementIterations+1
		if err := evaluator.Evaluate(policy); err != nil {
			return nil, err
		}
		result.EvaluatorIterations += evaluator.Iterations()

		policy = improver.Improve(policy, evaluator.Estimates().Get)
		result.ImprovementIterations++
	}

	result.Policy = policy
	result.Estimates = evaluator.Estimates()
	return result, nil
}

// ImprovementMargin bounds the error of comparing two action values computed
// from an evaluation that stopped at the configured tolerance
func ImprovementMargin(config core.SolverConfig) float64 {
	return 2 * config.Tolerance / (1 - config.Discount)
}
