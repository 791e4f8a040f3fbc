package common

import (
	"fmt"
	"path"

	"github.com/spf13/pflag"
	"github.com/zeu5/markov-dp/core"
	"github.com/zeu5/markov-dp/util"
)

const (
	AlgorithmPolicyIteration = "pi"
	AlgorithmValueIteration  = "vi"
	AlgorithmBoth            = "both"
)

type Flags struct {
	SolverFlags
	Algorithm string
	SavePath  string
	Chart     bool
	Live      bool
	Verbose   bool

	RestrictToSupport bool
}

type SolverFlags struct {
	Tolerance float64
	Discount  float64
	MaxSweeps int
}

func (s SolverFlags) Config() core.SolverConfig {
	return core.SolverConfig{
		Tolerance: s.Tolerance,
		Discount:  s.Discount,
		MaxSweeps: s.MaxSweeps,
	}
}

func DefaultFlags() *Flags {
	defaults := core.DefaultSolverConfig()
	return &Flags{
		SolverFlags: SolverFlags{
			Tolerance: defaults.Tolerance,
			Discount:  defaults.Discount,
			MaxSweeps: defaults.MaxSweeps,
		},
		Algorithm: AlgorithmBoth,
		SavePath:  "results",
		Chart:     false,
		Live:      false,
		Verbose:   false,
	}
}

// AddFlags binds the flags to fs with the current values as defaults
func (f *Flags) AddFlags(fs *pflag.FlagSet) {
	fs.Float64Var(&f.Tolerance, "tolerance", f.Tolerance, "Convergence threshold on the largest value change of a sweep")
	fs.Float64Var(&f.Discount, "discount", f.Discount, "Discount factor in [0, 1)")
	fs.IntVar(&f.MaxSweeps, "max-sweeps", f.MaxSweeps, "Maximum sweeps per evaluation or value iteration run, 0 for unbounded")
	fs.StringVar(&f.Algorithm, "algorithm", f.Algorithm, "Solver to run: pi, vi or both")
	fs.StringVar(&f.SavePath, "save-path", f.SavePath, "Path to save results, empty to skip")
	fs.BoolVar(&f.Chart, "chart", f.Chart, "Render an HTML chart of the sweep deltas into the save path")
	fs.BoolVar(&f.Live, "live", f.Live, "Show live sweep progress when attached to a terminal")
	fs.BoolVar(&f.Verbose, "verbose", f.Verbose, "Print every model anomaly")
	fs.BoolVar(&f.RestrictToSupport, "restrict-to-support", f.RestrictToSupport, "Only improve among the actions the current policy takes")
}

func (f *Flags) Validate() error {
	if err := f.Config().Validate(); err != nil {
		return err
	}
	switch f.Algorithm {
	case AlgorithmPolicyIteration, AlgorithmValueIteration, AlgorithmBoth:
	default:
		return fmt.Errorf("unknown algorithm %q, expected pi, vi or both", f.Algorithm)
	}
	return nil
}

func (f *Flags) RunPolicyIteration() bool {
	return f.Algorithm == AlgorithmPolicyIteration || f.Algorithm == AlgorithmBoth
}

func (f *Flags) RunValueIteration() bool {
	return f.Algorithm == AlgorithmValueIteration || f.Algorithm == AlgorithmBoth
}

// Record saves the flags as config.json in the save path
func (f *Flags) Record() error {
	if f.SavePath == "" {
		return nil
	}
	return util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
