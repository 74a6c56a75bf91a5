package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/prepsheet-cli/internal/directory"
	"github.com/sells-group/prepsheet-cli/internal/prompt"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List companies in the verified dataset",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := directory.Load(cfg.Data.Path, cfg.Data.Sheet)
		if err != nil {
			return eris.Wrap(err, "load company dataset")
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tDOMAIN\tMONTHLY VISITS\tAPP DOWNLOADS (30D)")
		for _, rec := range dir.Companies() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				rec.Name,
				rec.Domain(),
				prompt.FormatCount(rec.MonthlyVisits),
				prompt.FormatCount(rec.AppDownloads),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(companiesCmd)
}
