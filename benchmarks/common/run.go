package common

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/zeu5/markov-dp/analysis"
	"github.com/zeu5/markov-dp/core"
	"github.com/zeu5/markov-dp/policies"
	"github.com/zeu5/markov-dp/util"
)

type PolicyIterationReport struct {
	ImprovementIterations int
	EvaluatorIterations   int
	FinalDelta            float64
}

type ValueIterationReport struct {
	Iterations int
	FinalDelta float64
}

type AgreementReport struct {
	MaxGap     float64
	Tolerance  float64
	Match      bool
	Mismatched int
	// SupportRestricted is set when policy iteration never considered
	// actions outside its first greedy policy, so a mismatch is expected
	SupportRestricted bool
}

// Report summarizes a benchmark run. It never contains the model or the
// policies. ConfigHash is equal for runs with the same solver settings.
type Report struct {
	RunID           string
	Benchmark       string
	States          int
	Config          core.SolverConfig
	ConfigHash      string
	PolicyIteration *PolicyIterationReport `json:",omitempty"`
	ValueIteration  *ValueIterationReport  `json:",omitempty"`
	Agreement       *AgreementReport       `json:",omitempty"`
	Anomalies       map[core.AnomalyKind]int
	Duration        time.Duration
}

// Solution holds the results of the solvers selected by the flags
type Solution[S comparable, A comparable] struct {
	PolicyIteration *policies.PolicyIterationResult[S, A]
	ValueIteration  *policies.ValueIterationResult[S, A]
	Deltas          *analysis.DeltaDataset
	Report          *Report
}

// Policy returns the policy of policy iteration if it ran, the value
// iteration policy otherwise
func (s *Solution[S, A]) Policy() *core.StochasticPolicy[S, A] {
	if s.PolicyIteration != nil {
		return s.PolicyIteration.Policy
	}
	return s.ValueIteration.Policy
}

// Estimates returns the value table matching Policy
func (s *Solution[S, A]) Estimates() core.ValueTable[S] {
	if s.PolicyIteration != nil {
		return s.PolicyIteration.Estimates
	}
	return s.ValueIteration.Estimates
}

// Solve runs the selected solvers on the model, writes a summary to out and
// records the report (and optionally a delta chart) under the save path
func Solve[S comparable, A comparable](ctx context.Context, name string, m core.MDP[S, A], f *Flags, out io.Writer) (*Solution[S, A], error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	config := f.Config()
	start := time.Now()

	anomalies := core.NewAnomalyLog()
	reporter := core.MultiReporter{anomalies}
	if f.Verbose {
		reporter = append(reporter, core.NewWriterReporter(out))
	}
	deltas := analysis.NewDeltaAnalyzer()
	opts := []policies.Option{
		policies.WithContext(ctx),
		policies.WithReporter(reporter),
		policies.WithAnalyzer(deltas),
	}
	if f.RestrictToSupport {
		opts = append(opts, policies.WithSupportRestriction())
	}

	if f.Live {
		if file, ok := out.(*os.File); ok && util.IsTerminal(file) {
			printer := util.NewTerminalPrinter(out, 100*time.Millisecond)
			line := printer.NewOutput()
			opts = append(opts, policies.WithAnalyzer(NewSweepLine(name, line)))
			printer.Start(ctx)
			defer printer.Stop()
		}
	}

	report := &Report{
		RunID:      uuid.New().String(),
		Benchmark:  name,
		States:     len(m.States()),
		Config:     config,
		ConfigHash: util.JsonHash(config),
	}
	solution := &Solution[S, A]{Report: report}

	if f.RunPolicyIteration() {
		result, err := policies.GetOptimalPolicy(m, config, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", policies.PolicyIterationName, err)
		}
		solution.PolicyIteration = result
		report.PolicyIteration = &PolicyIterationReport{
			ImprovementIterations: result.ImprovementIterations,
			EvaluatorIterations:   result.EvaluatorIterations,
		}
		fmt.Fprintf(out, "%s: improvements %d, evaluator sweeps %d\n", policies.PolicyIterationName, result.ImprovementIterations, result.EvaluatorIterations)
	}
	if f.RunValueIteration() {
		result, err := policies.GetValueIterationPolicy(m, config, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", policies.ValueIterationName, err)
		}
		solution.ValueIteration = result
		report.ValueIteration = &ValueIterationReport{Iterations: result.Iterations}
		fmt.Fprintf(out, "%s: sweeps %d\n", policies.ValueIterationName, result.Iterations)
	}

	solution.Deltas = deltas.DataSet().(*analysis.DeltaDataset)
	if report.PolicyIteration != nil {
		report.PolicyIteration.FinalDelta, _ = solution.Deltas.Final(policies.EvaluatorName)
	}
	if report.ValueIteration != nil {
		report.ValueIteration.FinalDelta, _ = solution.Deltas.Final(policies.ValueIterationName)
	}

	if solution.PolicyIteration != nil && solution.ValueIteration != nil {
		tolerance := AgreementTolerance(config)
		cmp, err := analysis.ComparePolicies[S, A](m, solution.PolicyIteration.Policy, solution.ValueIteration.Policy, config.Discount, tolerance)
		if err != nil {
			return nil, err
		}
		report.Agreement = &AgreementReport{
			MaxGap:            cmp.MaxGap,
			Tolerance:         tolerance,
			Match:             cmp.Match(),
			Mismatched:        len(cmp.Mismatched),
			SupportRestricted: f.RestrictToSupport,
		}
		fmt.Fprintf(out, "policy values agree: %v (max gap %.3g, tolerance %.3g)\n", cmp.Match(), cmp.MaxGap, tolerance)
		if !cmp.Match() && f.RestrictToSupport {
			fmt.Fprintln(out, "policy iteration only improved within the actions of its first greedy policy, the gap is expected")
		}
	}

	report.Anomalies = anomalies.Counts()
	report.Duration = time.Since(start)
	if anomalies.Len() > 0 && !f.Verbose {
		fmt.Fprintf(out, "skipped %d state visits without actions\n", anomalies.Len())
	}

	if f.SavePath != "" {
		dir := path.Join(f.SavePath, name)
		if err := util.SaveJson(path.Join(dir, "report.json"), report); err != nil {
			return nil, err
		}
		if f.Chart {
			if err := analysis.SaveDeltaChart(path.Join(dir, "deltas.html"), name, solution.Deltas); err != nil {
				return nil, err
			}
		}
	}
	return solution, nil
}

// AgreementTolerance is the largest value gap between the policies of policy
// iteration and value iteration that is explained by their stopping rules.
// A better action hidden by the improvement margin costs at most
// margin/(1-gamma) in value.
func AgreementTolerance(config core.SolverConfig) float64 {
	return policies.ImprovementMargin(config) / (1 - config.Discount)
}

// PrintSolution lists the value and chosen actions of every state in the
// order of the model
func PrintSolution[S comparable, A comparable](out io.Writer, m core.MDP[S, A], s *Solution[S, A]) {
	policy, estimates := s.Policy(), s.Estimates()
	for _, state := range m.States() {
		if core.IsTerminal(m, state) {
			fmt.Fprintf(out, "%v: terminal\n", state)
			continue
		}
		fmt.Fprintf(out, "%v:%s %v\n", state, util.FormatValue(estimates.Get(state)), policy.Actions(state))
	}
}

// SweepLine shows the latest sweep of any solver on a live terminal line
type SweepLine struct {
	name   string
	output *util.Line
}

var _ core.SweepAnalyzer = &SweepLine{}

func NewSweepLine(name string, output *util.Line) *SweepLine {
	return &SweepLine{name: name, output: output}
}

func (s *SweepLine) AnalyzeSweep(stats core.SweepStats) {
	line := fmt.Sprintf("%s: %s sweep %d, delta %.3g", s.name, stats.Solver, stats.Iteration, stats.Delta)
	if stats.Round > 0 {
		line = fmt.Sprintf("%s: %s round %d sweep %d, delta %.3g", s.name, stats.Solver, stats.Round, stats.Iteration, stats.Delta)
	}
	s.output.Update(line)
}
