package main

import (
	"bufio"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/prepsheet-cli/internal/export"
	"github.com/sells-group/prepsheet-cli/internal/model"
)

var batchFile string

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate prep sheets for a list of companies",
	Long:  "Reads company names from a file (one per line) and runs the pipeline for each. Runs are independent and share only the read-only dataset, so they execute concurrently.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		names, err := readCompanyList(batchFile)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			return eris.New("company list is empty")
		}

		env, err := initEnv()
		if err != nil {
			return err
		}

		var done, failed atomic.Int64

		g, gCtx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Batch.MaxConcurrent)

		for _, name := range names {
			g.Go(func() error {
				run, runErr := env.Orchestrator.Run(gCtx, name)
				if runErr != nil {
					return runErr
				}
				if run.State == model.StateFailed {
					failed.Add(1)
					zap.L().Error("batch: run failed",
						zap.String("company", name),
						zap.String("error", run.Research.ErrorDetail),
					)
					return nil
				}
				path, writeErr := export.Write(cfg.Export.Dir, run.Company.Name, run.Document())
				if writeErr != nil {
					return writeErr
				}
				done.Add(1)
				zap.L().Info("batch: prep sheet written",
					zap.String("company", run.Company.Name),
					zap.String("path", path),
				)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return eris.Wrap(err, "batch run")
		}

		zap.L().Info("batch complete",
			zap.Int64("succeeded", done.Load()),
			zap.Int64("failed", failed.Load()),
		)
		return nil
	},
}

func readCompanyList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "open company list")
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrap(err, "read company list")
	}
	return names, nil
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "path to company list, one name per line (required)")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}
