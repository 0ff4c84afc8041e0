package main

import (
	"context"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/gsemo"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rng"
)

func newGSEMOCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gsemo instance",
		Short: "Run the global simple evolutionary multiobjective optimizer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := klog.NewContext(context.Background(), klog.Background())
			src := rng.New(opts.seed)
			arc, log := gsemo.Run(ctx, opts.inst, opts.maxeval, opts.ref, src)
			return emitResults(opts, "gsemo", arc, log)
		},
	}
}
