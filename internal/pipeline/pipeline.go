// Package pipeline sequences the two-stage prep sheet generation: directory
// resolution, search-augmented research, then reasoning-based enhancement.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/prepsheet-cli/internal/directory"
	"github.com/sells-group/prepsheet-cli/internal/model"
	"github.com/sells-group/prepsheet-cli/internal/prompt"
	"github.com/sells-group/prepsheet-cli/internal/provider"
)

// Progress checkpoints emitted at each transition.
const (
	progressStart      = 0.1
	progressResearch   = 0.3
	progressResearched = 0.6
	progressEnhance    = 0.8
	progressDone       = 1.0
)

// Orchestrator runs the pipeline. Stage 2 never starts before stage 1 has
// finished: its prompt embeds the stage-1 output. Orchestrators are stateless
// across runs and safe for concurrent use; the directory is read-only.
type Orchestrator struct {
	dir      *directory.Directory
	research researchStage
	enhance  enhanceStage
	obs      Observer
}

// New creates an Orchestrator. A nil observer disables progress reporting.
func New(dir *directory.Directory, researcher provider.Researcher, enhancer provider.Enhancer, obs Observer) *Orchestrator {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Orchestrator{
		dir:      dir,
		research: researchStage{researcher: researcher},
		enhance:  enhanceStage{enhancer: enhancer},
		obs:      obs,
	}
}

// Run executes the full two-stage pipeline for a company name. Stage errors
// are converted to StageResults at the stage boundary and never propagate as
// faults: a stage-1 failure fails the run with the failure text as its
// document, a stage-2 failure still completes the run with the stage-1 report
// preserved. The returned error is non-nil only for cancellation.
func (o *Orchestrator) Run(ctx context.Context, companyName string) (*model.PipelineRun, error) {
	run := &model.PipelineRun{ID: uuid.NewString(), State: model.StateResolving}
	log := zap.L().With(zap.String("run_id", run.ID), zap.String("company", companyName))

	o.report(run, progressStart, "resolving company")
	run.Company = o.dir.Resolve(companyName)
	log.Info("pipeline: company resolved",
		zap.String("name", run.Company.Name),
		zap.String("match", string(run.Company.Match)),
		zap.Int64("monthly_visits", run.Company.MonthlyVisits),
		zap.Int64("app_downloads", run.Company.AppDownloads),
	)

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: cancelled before research")
	}

	run.State = model.StateResearching
	o.report(run, progressResearch, "researching with web search")
	run.Research = o.research.run(ctx,
		prompt.BuildResearchPrompt(run.Company),
		prompt.ResearchTask(run.Company.Name),
	)

	if run.Research.Failed {
		run.State = model.StateFailed
		o.report(run, progressResearched, "research failed")
		log.Error("pipeline: research stage failed", zap.String("error", run.Research.ErrorDetail))
		return run, nil
	}
	o.report(run, progressResearched, "research complete")

	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "pipeline: cancelled before enhancement")
	}

	run.State = model.StateEnhancing
	o.report(run, progressEnhance, "enhancing with reasoning model")
	run.Enhancement = o.enhance.run(ctx,
		prompt.BuildEnhancementPrompt(run.Company, run.Research.Text),
		run.Research.Text,
	)

	run.State = model.StateDone
	if run.Enhancement.Failed {
		log.Warn("pipeline: enhancement stage failed, research report preserved",
			zap.String("error", run.Enhancement.ErrorDetail))
		o.report(run, progressDone, "done (enhancement failed, research preserved)")
	} else {
		log.Info("pipeline: run complete")
		o.report(run, progressDone, "done")
	}

	return run, nil
}

func (o *Orchestrator) report(run *model.PipelineRun, value float64, status string) {
	run.Progress = value
	o.obs.Progress(value, status)
}
