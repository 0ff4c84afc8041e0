package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/config"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rmnk"
)

// globalOptions holds the flags shared by every algorithm subcommand,
// mirroring the general options of the original CLI11-based driver.
type globalOptions struct {
	instance string
	maxeval  int
	seed     uint64
	output   string
	ref      []float64

	metricsAddr   string
	plotPath      string
	plotFrontPath string

	inst *rmnk.Instance
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:   "apmnkl",
		Short: "Run anytime multiobjective search heuristics on ρMNK-landscapes instances",
		Long: "apmnkl drives the GSEMO, PLS, and IBEA search heuristics over a\n" +
			"ρMNK-landscapes instance, gathering anytime hypervolume data.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.instance = args[0]
			if _, err := os.Stat(opts.instance); err != nil {
				return fmt.Errorf("%w: %v", rmnk.ErrMalformedInstance, err)
			}
			inst, err := rmnk.Load(opts.instance)
			if err != nil {
				return err
			}
			opts.inst = inst

			if len(opts.ref) != 0 && len(opts.ref) != inst.M {
				return fmt.Errorf("%w: --hvref has %d components, instance has M=%d objectives", config.ErrInvalidConfiguration, len(opts.ref), inst.M)
			}
			if len(opts.ref) == 0 {
				opts.ref = make([]float64, inst.M)
			}
			return nil
		},
	}

	root.PersistentFlags().IntVarP(&opts.maxeval, "maxeval", "m", 0, "maximum number of evaluations to perform (stopping criterion)")
	root.MarkPersistentFlagRequired("maxeval")
	root.PersistentFlags().Uint64VarP(&opts.seed, "seed", "s", uint64(time.Now().UnixNano()), "pseudo random generator seed")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "file to which the anytime CSV output is written (default stdout)")
	root.PersistentFlags().Var(&refValue{ref: &opts.ref}, "hvref", "reference point for the hypervolume indicator, comma-separated (default all zeros)")
	root.PersistentFlags().Lookup("hvref").Shorthand = "r"
	root.PersistentFlags().StringVar(&opts.metricsAddr, "metrics-addr", "", "if set, serve the finished run's Prometheus metrics on this address once the search completes")
	root.PersistentFlags().StringVar(&opts.plotPath, "plot", "", "if set, render an anytime hypervolume chart to this HTML file path")
	root.PersistentFlags().StringVar(&opts.plotFrontPath, "plot-front", "", "if set, render the final archive's Pareto front (M=2 only) to this HTML file path")

	goflags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(goflags)
	root.PersistentFlags().AddGoFlagSet(goflags)

	root.AddCommand(newGSEMOCommand(opts))
	root.AddCommand(newPLSCommand(opts))
	root.AddCommand(newIBEACommand(opts))

	return root
}

// refValue implements pflag.Value for a comma-separated float64 vector.
type refValue struct {
	ref *[]float64
}

func (r *refValue) String() string {
	if r.ref == nil || len(*r.ref) == 0 {
		return ""
	}
	parts := make([]string, len(*r.ref))
	for i, v := range *r.ref {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (r *refValue) Set(s string) error {
	if s == "" {
		*r.ref = nil
		return nil
	}
	parts := strings.Split(s, ",")
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("invalid reference point component %q: %w", p, err)
		}
		vals[i] = v
	}
	*r.ref = vals
	return nil
}

func (r *refValue) Type() string { return "floats" }

var _ pflag.Value = (*refValue)(nil)
