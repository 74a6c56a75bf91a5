package main

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/prepsheet-cli/internal/export"
	"github.com/sells-group/prepsheet-cli/internal/model"
)

var (
	runCompany string
	runNoSave  bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a prep sheet for a single company",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := initEnv()
		if err != nil {
			return err
		}

		run, err := env.Orchestrator.Run(ctx, runCompany)
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		if run.State == model.StateFailed {
			return eris.Errorf("research stage failed: %s", run.Research.ErrorDetail)
		}

		summary := map[string]any{
			"run_id":   run.ID,
			"company":  run.Company.Name,
			"match":    run.Company.Match,
			"state":    run.State,
			"progress": run.Progress,
		}

		if !runNoSave {
			path, err := export.Write(cfg.Export.Dir, run.Company.Name, run.Document())
			if err != nil {
				return err
			}
			summary["output"] = path
			zap.L().Info("prep sheet written", zap.String("path", path))
		} else {
			summary["document"] = run.Document()
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

func init() {
	runCmd.Flags().StringVar(&runCompany, "company", "", "company name to research (required)")
	runCmd.Flags().BoolVar(&runNoSave, "no-save", false, "print the document instead of writing a file")
	_ = runCmd.MarkFlagRequired("company")
	rootCmd.AddCommand(runCmd)
}
