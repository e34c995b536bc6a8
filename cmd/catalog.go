package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/leetsprint/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the problem catalog (or validate it with --validate)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalog(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if validate, _ := cmd.Flags().GetBool("validate"); validate {
			fmt.Fprintf(out, "catalog OK: %d easy, %d medium, %d hard\n",
				cat.Count(catalog.Easy), cat.Count(catalog.Medium), cat.Count(catalog.Hard))
			return nil
		}

		difficulties := catalog.Difficulties
		if name, _ := cmd.Flags().GetString("difficulty"); name != "" {
			d, err := catalog.ParseDifficulty(name)
			if err != nil {
				return err
			}
			difficulties = []catalog.Difficulty{d}
		}

		for _, d := range difficulties {
			bucket := cat.Bucket(d)
			fmt.Fprintf(out, "%s (%d)\n", strings.ToUpper(d.String()), len(bucket))
			fmt.Fprintln(out, strings.Repeat("─", 72))
			for _, p := range bucket {
				title := p.Title
				if len(title) > 40 {
					title = title[:37] + "..."
				}
				fmt.Fprintf(out, "%5d  %-40s  %s\n", p.Number, title, p.Link)
			}
			fmt.Fprintln(out)
		}

		if len(difficulties) == len(catalog.Difficulties) {
			fmt.Fprintf(out, "%d problems\n", cat.Len())
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().Bool("validate", false, "Only validate the catalog and print counts")
	catalogCmd.Flags().String("difficulty", "", "Only list one difficulty (easy, medium or hard)")
}
