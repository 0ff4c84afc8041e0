// Command apmnkl drives the GSEMO, PLS, and IBEA search heuristics over a
// ρMNK-landscapes instance, gathering anytime hypervolume data.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pedromig/anytime-pmnk-landscapes/pkg/config"
	"github.com/pedromig/anytime-pmnk-landscapes/pkg/rmnk"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, rmnk.ErrMalformedInstance):
		return 2
	case errors.Is(err, config.ErrInvalidConfiguration):
		return 1
	default:
		return 1
	}
}
