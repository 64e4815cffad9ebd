package api

import (
	"time"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
)

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	JobType   string            `json:"job_type" example:"CorpusAnalysis"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

// AnalysisSummary is the small completion summary that travels with /status.
// The full result is fetched separately via /results/{id}.
type AnalysisSummary struct {
	DocumentsAnalyzed int `json:"documents_analyzed,omitempty"`
	PairsCompared     int `json:"pairs_compared,omitempty"`
	DuplicateGroups   int `json:"duplicate_groups,omitempty"`
}

type Result struct {
	Status  string           `json:"status"`
	Step    string           `json:"step,omitempty"`
	Summary *AnalysisSummary `json:"summary,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type ResultResponse struct {
	Id     string                     `json:"id"`
	Kind   string                     `json:"kind"`
	Stats  corpusModel.ResultStats    `json:"stats"`
	Pairs  []corpusModel.PairScore    `json:"pairs,omitempty"`
	Groups []corpusModel.DuplicateGroup `json:"groups,omitempty"`

	// matches and summaries can run long; they are included whole because the
	// report files carry the same data for offline review
	Matches   []corpusModel.Match       `json:"matches,omitempty"`
	Summaries []corpusModel.PairSummary `json:"summaries,omitempty"`
	Records   []corpusModel.AwardRecord `json:"records,omitempty"`
}

// requests---------------------

type CorpusAnalysisRequest struct {
	CorpusDir    string `json:"corpus_dir" validate:"required"`
	TemplateFile string `json:"template_file,omitempty"`
	ContactMode  bool   `json:"contact_mode,omitempty"`
	MaxDocuments int    `json:"max_documents,omitempty"`
}

type AwardsAnalysisRequest struct {
	RecordsFile string                    `json:"records_file,omitempty"`
	Records     []corpusModel.AwardRecord `json:"records,omitempty"`
	Agency      string                    `json:"agency,omitempty"`
	Branch      string                    `json:"branch,omitempty"`
}

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
