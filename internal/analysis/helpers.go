package analysis

import (
	"net/http"
	"sort"
	"time"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/internal/domain/jobModel"
	"github.com/akolanti/DupFinder/internal/metrics"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

func returnOutput(job jobModel.Job) jobModel.Job {
	job.CurrentStep = jobModel.Complete
	return job
}

func logOutput(job jobModel.Job, status jobModel.InternalStatus, log *logger_i.Logger) jobModel.Job {
	job.CurrentStep = status
	log.Debug("Analysis", "Current Status", job.CurrentStep)
	return job
}

func (s *service) jobError(job jobModel.Job, err error, message string, canRetry bool) jobModel.Job {
	s.logger.Error(message, "error", err)

	job.Error = jobModel.JobError{
		Code:    http.StatusInternalServerError,
		Message: message,
		Retry:   canRetry,
	}
	job.Status = jobModel.JobStatusError
	return job
}

func (s *service) captureStage(stage string) func() {
	start := time.Now()
	return func() { metrics.CaptureStageMetrics(stage, time.Since(start)) }
}

// Report files are secondary output: the authoritative result lives in the
// result store, so a failed CSV write is logged and the job continues.
func (s *service) executeCorpusReportStep(log *logger_i.Logger, jobt *jobModel.Job, result *corpusModel.AnalysisResult) {
	*jobt = logOutput(*jobt, jobModel.ReportWrite, log)
	defer s.captureStage("report_write")()

	if _, err := s.reports.WritePairScores(result.Pairs); err != nil {
		log.Error("Failed to write pair score report", "err", err)
	}
	if _, err := s.reports.WriteMatches(result.Matches); err != nil {
		log.Error("Failed to write matches report", "err", err)
	}
	if _, err := s.reports.WriteSummary(result.Summaries); err != nil {
		log.Error("Failed to write summary report", "err", err)
	}
}

func (s *service) executeAwardsReportStep(log *logger_i.Logger, jobt *jobModel.Job, result *corpusModel.AnalysisResult) {
	*jobt = logOutput(*jobt, jobModel.ReportWrite, log)
	defer s.captureStage("report_write")()

	if _, err := s.reports.WriteDuplicateGroups(result.Groups, result.Records); err != nil {
		log.Error("Failed to write duplicate group report", "err", err)
	}
}

type summaryFlags struct {
	text  bool
	image bool
}

// buildSummaries collapses the match list into one row per document pair that
// matched anything, enriched with each side's extracted firm contacts.
func buildSummaries(docs []corpusModel.Document, matches []corpusModel.Match) []corpusModel.PairSummary {
	firmByDoc := make(map[string]*corpusModel.FirmInfo, len(docs))
	for _, d := range docs {
		firmByDoc[d.Id] = d.FirmInfo
	}

	type docPair struct{ file1, file2 string }
	flags := make(map[docPair]*summaryFlags)
	var order []docPair
	for _, m := range matches {
		key := docPair{m.File1, m.File2}
		f, ok := flags[key]
		if !ok {
			f = &summaryFlags{}
			flags[key] = f
			order = append(order, key)
		}
		switch m.Type {
		case corpusModel.MatchTypeText:
			f.text = true
		case corpusModel.MatchTypeImage:
			f.image = true
		}
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].file1 != order[j].file1 {
			return order[i].file1 < order[j].file1
		}
		return order[i].file2 < order[j].file2
	})

	summaries := make([]corpusModel.PairSummary, 0, len(order))
	for _, key := range order {
		f := flags[key]
		summaries = append(summaries, corpusModel.PairSummary{
			File1:      key.file1,
			File2:      key.file2,
			TextMatch:  f.text,
			ImageMatch: f.image,
			BothMatch:  f.text && f.image,
			Firm1:      firmByDoc[key.file1],
			Firm2:      firmByDoc[key.file2],
		})
	}
	return summaries
}

func matchExtremes(pairs []corpusModel.PairScore) (highest, lowest float64) {
	if len(pairs) == 0 {
		return 0, 0
	}
	highest, lowest = pairs[0].OverallMatch, pairs[0].OverallMatch
	for _, p := range pairs[1:] {
		if p.OverallMatch > highest {
			highest = p.OverallMatch
		}
		if p.OverallMatch < lowest {
			lowest = p.OverallMatch
		}
	}
	return highest, lowest
}
