package model

// RunState is the orchestrator's position in the two-stage pipeline.
type RunState string

const (
	StateIdle        RunState = "idle"
	StateResolving   RunState = "resolving"
	StateResearching RunState = "researching"
	StateEnhancing   RunState = "enhancing"
	StateDone        RunState = "done"
	StateFailed      RunState = "failed"
)

// StageResult is the outcome of one generation stage. Failed implies
// ErrorDetail is set and Text carries a fallback message instead of a report.
type StageResult struct {
	Text        string `json:"text,omitempty"`
	Failed      bool   `json:"failed"`
	ErrorDetail string `json:"error_detail,omitempty"`
}

// PipelineRun is one end-to-end prep sheet generation. Nothing in it outlives
// the run; the company directory is the only process-wide state.
type PipelineRun struct {
	ID          string        `json:"id"`
	Company     CompanyRecord `json:"company"`
	Research    StageResult   `json:"research"`
	Enhancement StageResult   `json:"enhancement"`
	State       RunState      `json:"state"`
	Progress    float64       `json:"progress"`
}

// Document returns the final artifact for rendering or export. A failed run
// yields the research stage's failure text; a completed run yields the
// enhancement text, which embeds the research report when enhancement failed.
func (r *PipelineRun) Document() string {
	if r.State == StateFailed {
		return r.Research.Text
	}
	return r.Enhancement.Text
}
