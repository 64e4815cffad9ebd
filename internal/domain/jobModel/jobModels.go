package jobModel

import (
	"context"
	"time"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
)

type JobStatus string
type InternalStatus string

type JobType string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	CorpusInit       InternalStatus = "Init"
	CorpusLoading    InternalStatus = "CorpusLoad"
	TemplateScan     InternalStatus = "TemplateScan"
	PairwiseCompare  InternalStatus = "PairwiseCompare"
	AwardsInit       InternalStatus = "AwardsInit"
	EntityResolution InternalStatus = "EntityResolution"
	ReportWrite      InternalStatus = "ReportWrite"
	RedisCall        InternalStatus = "Redis"
	Error            InternalStatus = "Error"

	Complete InternalStatus = "Complete"

	JobTypeCorpus JobType = "CorpusAnalysis"
	JobTypeAwards JobType = "AwardsAnalysis"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobType     JobType        `json:"job_type"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

// JobPayload carries the request parameters for either job type plus the
// small summary that is safe to return inline from /status. The full result
// lives in the ResultStore keyed by the job id.
type JobPayload struct {
	//corpus analysis
	CorpusDir    string `json:"corpus_dir,omitempty"`
	TemplateFile string `json:"template_file,omitempty"`
	ContactMode  bool   `json:"contact_mode,omitempty"` //restrict matching to the contact-info page window
	MaxDocuments int    `json:"max_documents,omitempty"`

	//awards analysis
	RecordsFile string                    `json:"records_file,omitempty"`
	Records     []corpusModel.AwardRecord `json:"records,omitempty"`
	Agency      string                    `json:"agency,omitempty"`
	Branch      string                    `json:"branch,omitempty"`

	//summary filled in on completion
	DocumentsAnalyzed int `json:"documents_analyzed,omitempty"`
	PairsCompared     int `json:"pairs_compared,omitempty"`
	DuplicateGroups   int `json:"duplicate_groups,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}

// ResultStore persists full analysis results and the pairwise checkpoint that
// lets an interrupted corpus run resume at the batch boundary it last wrote.
type ResultStore interface {
	SaveResult(ctx context.Context, jobId string, result corpusModel.AnalysisResult) error
	GetResult(ctx context.Context, jobId string) (corpusModel.AnalysisResult, bool)
	SaveCheckpoint(ctx context.Context, jobId string, pairsDone int) error
	GetCheckpoint(ctx context.Context, jobId string) (int, bool)
}
