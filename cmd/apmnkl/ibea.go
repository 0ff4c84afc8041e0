package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/config"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/ibea"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
)

func newIBEACommand(opts *globalOptions) *cobra.Command {
	var (
		popSize        int
		generations    int
		scalingFactor  float64
		adaptive       bool
		indicatorFlag  string
		crossoverFlag  string
		crossoverProb  float64
		mutationProb   float64
		nPoints        int
		poolSize       int
		tournamentSize int
		configPath     string
	)

	cmd := &cobra.Command{
		Use:   "ibea instance",
		Short: "Run the indicator-based evolutionary algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fileCfg config.IBEAFileConfig
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				fileCfg = *loaded
			} else {
				fileCfg = config.IBEAFileConfig{
					PopSize:         popSize,
					Generations:     generations,
					K:               scalingFactor,
					Adaptive:        adaptive,
					TournamentSize:  tournamentSize,
					PoolSize:        poolSize,
					Indicator:       indicatorFlag,
					Crossover:       crossoverFlag,
					CrossoverRate:   crossoverProb,
					CrossoverPoints: nPoints,
					MutationRate:    mutationProb,
				}
			}

			// Flags explicitly passed on the command line override whatever
			// --config loaded, so a user can load a base config and tweak a
			// single parameter without editing the file.
			flags := cmd.Flags()
			if flags.Changed("pop-size") {
				fileCfg.PopSize = popSize
			}
			if flags.Changed("generations") {
				fileCfg.Generations = generations
			}
			if flags.Changed("scaling-factor") {
				fileCfg.K = scalingFactor
			}
			if flags.Changed("adaptive") {
				fileCfg.Adaptive = adaptive
			}
			if flags.Changed("indicator") {
				fileCfg.Indicator = strings.ToLower(indicatorFlag)
			}
			if flags.Changed("crossover") {
				fileCfg.Crossover = strings.ToLower(crossoverFlag)
			}
			if flags.Changed("crossover-probability") {
				fileCfg.CrossoverRate = crossoverProb
			}
			if flags.Changed("n-points") {
				fileCfg.CrossoverPoints = nPoints
			}
			if flags.Changed("mutation-probability") {
				fileCfg.MutationRate = mutationProb
			}
			if flags.Changed("matting-pool-size") {
				fileCfg.PoolSize = poolSize
			}
			if flags.Changed("tournament-size") {
				fileCfg.TournamentSize = tournamentSize
			}

			if err := fileCfg.Validate(); err != nil {
				return err
			}
			cfg := fileCfg.ToIBEAConfig(opts.ref)

			ctx := klog.NewContext(context.Background(), klog.Background())
			src := rng.New(opts.seed)
			arc, log := ibea.Run(ctx, opts.inst, opts.maxeval, opts.ref, src, cfg)
			return emitResults(opts, "ibea", arc, log)
		},
	}

	cmd.Flags().IntVarP(&popSize, "pop-size", "p", 0, "maximum population size")
	cmd.Flags().IntVarP(&generations, "generations", "g", 0, "number of generations (stopping criterion)")
	cmd.Flags().Float64VarP(&scalingFactor, "scaling-factor", "k", 1.0, "IBEA fitness scaling factor")
	cmd.Flags().BoolVarP(&adaptive, "adaptive", "a", false, "use the adaptive version of the algorithm (A-IBEA)")
	cmd.Flags().StringVar(&indicatorFlag, "indicator", "eps", "indicator operator: eps or ihd")
	cmd.Flags().StringVar(&crossoverFlag, "crossover", "uc", "crossover operator: uc (uniform) or npc (n-point)")
	cmd.Flags().Float64Var(&crossoverProb, "crossover-probability", 0.9, "probability of applying crossover to a mating pair")
	cmd.Flags().Float64Var(&mutationProb, "mutation-probability", 0.05, "per-bit mutation probability")
	cmd.Flags().IntVar(&nPoints, "n-points", 2, "number of crossover points (n-point crossover only)")
	cmd.Flags().IntVar(&poolSize, "matting-pool-size", 0, "mating pool size (default: pop-size)")
	cmd.Flags().IntVarP(&tournamentSize, "tournament-size", "t", 2, "tournament size used by k-way tournament selection")
	cmd.Flags().StringVar(&configPath, "config", "", "load IBEA parameters from a YAML file; flags set explicitly above still override the loaded values")

	return cmd
}
