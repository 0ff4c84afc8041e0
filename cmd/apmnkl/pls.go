package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/pls"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
)

func newPLSCommand(opts *globalOptions) *cobra.Command {
	var acceptanceFlag, explorationFlag string

	cmd := &cobra.Command{
		Use:   "pls instance",
		Short: "Run Pareto Local Search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			acceptance, err := parseAcceptance(acceptanceFlag)
			if err != nil {
				return err
			}
			exploration, err := parseExploration(explorationFlag)
			if err != nil {
				return err
			}

			ctx := klog.NewContext(context.Background(), klog.Background())
			src := rng.New(opts.seed)
			arc, log := pls.Run(ctx, opts.inst, opts.maxeval, opts.ref, src, acceptance, exploration)
			return emitResults(opts, "pls", arc, log)
		},
	}

	cmd.Flags().StringVarP(&acceptanceFlag, "pls-acceptance-criterion", "a", "NON_DOMINATING",
		"acceptance criterion: NON_DOMINATING, DOMINATING, or BOTH")
	cmd.Flags().StringVarP(&explorationFlag, "pls-neighborhood-exploration", "e", "BEST_IMPROVEMENT",
		"neighborhood exploration: BEST_IMPROVEMENT, FIRST_IMPROVEMENT, or BOTH")

	return cmd
}

func parseAcceptance(s string) (pls.Acceptance, error) {
	switch strings.ToUpper(s) {
	case "NON_DOMINATING":
		return pls.NonDominating, nil
	case "DOMINATING":
		return pls.Dominating, nil
	case "BOTH":
		return pls.Both, nil
	default:
		return 0, fmt.Errorf("pls: unknown acceptance criterion %q", s)
	}
}

func parseExploration(s string) (pls.Exploration, error) {
	switch strings.ToUpper(s) {
	case "BEST_IMPROVEMENT":
		return pls.BestImprovement, nil
	case "FIRST_IMPROVEMENT":
		return pls.FirstImprovement, nil
	case "BOTH":
		return pls.ExploreBoth, nil
	default:
		return 0, fmt.Errorf("pls: unknown neighborhood exploration criterion %q", s)
	}
}
