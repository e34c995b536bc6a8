package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetsprint/internal/session"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Draw one problem set and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		rng := resolveRand(cmd)
		if rng == nil {
			rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
		}

		problems := session.Sample(cat, cfg.SampleSizes, rng)
		out := cmd.OutOrStdout()
		for i, p := range problems {
			fmt.Fprintf(out, "%d. [%-6s] %s\n   %s\n", i+1, p.Difficulty, p.Label(), p.Link)
		}
		if len(problems) < cfg.TotalProblems() {
			fmt.Fprintf(out, "\nOnly %d of %d requested problems were available.\n",
				len(problems), cfg.TotalProblems())
		}
		return nil
	},
}
