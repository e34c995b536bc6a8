package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/leetsprint/internal/catalog"
	"github.com/abhisek/leetsprint/internal/session"
)

var rootCmd = &cobra.Command{
	Use:   "leetsprint",
	Short: "Timed LeetCode practice sessions",
	Long:  "LeetSprint draws a random set of LeetCode problems and gives you one hour to solve them.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A missing .env is fine; the environment and flags still apply.
		_ = godotenv.Load()
	},
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addSessionFlags(rootCmd)

	rootCmd.Flags().String("log-file", "", "Write logs to this file (overrides LEETSPRINT_LOG_FILE)")
	rootCmd.Flags().Bool("light", false, "Start with the light theme")

	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

// addSessionFlags registers the catalog and sampling flags shared by the
// TUI and pick.
func addSessionFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.String("catalog", "", "Path to a problem catalog JSON file (overrides LEETSPRINT_CATALOG)")
	pf.Int("easy", session.DefaultEasyCount, "Number of easy problems to draw")
	pf.Int("medium", session.DefaultMediumCount, "Number of medium problems to draw")
	pf.Int("hard", session.DefaultHardCount, "Number of hard problems to draw")
	pf.Int("minutes", int(session.DefaultBudget/time.Minute), "Session length in minutes")
	pf.Uint64("seed", 0, "Seed for a reproducible draw")
}

// resolveCatalog loads the catalog named by --catalog (highest priority),
// then LEETSPRINT_CATALOG, then the built-in catalog.
func resolveCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = os.Getenv("LEETSPRINT_CATALOG")
	}
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

// resolveConfig builds the session config: flags override LEETSPRINT_*
// variables, which override the defaults.
func resolveConfig(cmd *cobra.Command) (session.Config, error) {
	cfg, err := session.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	counts := []struct {
		flag string
		d    catalog.Difficulty
	}{
		{"easy", catalog.Easy},
		{"medium", catalog.Medium},
		{"hard", catalog.Hard},
	}
	for _, c := range counts {
		if flags.Changed(c.flag) {
			n, _ := flags.GetInt(c.flag)
			cfg.SampleSizes[c.d] = n
		}
	}
	if flags.Changed("minutes") {
		m, _ := flags.GetInt("minutes")
		cfg.Budget = time.Duration(m) * time.Minute
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid session config: %w", err)
	}
	return cfg, nil
}

// resolveRand returns a seeded source when --seed is set, nil otherwise.
func resolveRand(cmd *cobra.Command) *rand.Rand {
	if !cmd.Flags().Changed("seed") {
		return nil
	}
	seed, _ := cmd.Flags().GetUint64("seed")
	return rand.New(rand.NewPCG(seed, seed))
}
