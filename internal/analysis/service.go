package analysis

import (
	"context"
	"errors"

	"github.com/akolanti/DupFinder/internal/analysis/compare"
	"github.com/akolanti/DupFinder/internal/analysis/graph"
	"github.com/akolanti/DupFinder/internal/analysis/template"
	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/corpus"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/internal/domain/jobModel"
	"github.com/akolanti/DupFinder/internal/report"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

// Service is the contract the worker calls. The worker never needs to know
// about loaders, detectors or the result store; it hands a job in and gets
// the finished (or failed) job back.
type Service interface {
	RunCorpusAnalysis(ctx context.Context, job jobModel.Job) jobModel.Job
	RunAwardsAnalysis(ctx context.Context, job jobModel.Job) jobModel.Job
}

type service struct {
	cfg         config.Thresholds
	loader      *corpus.Loader
	detector    *template.Detector
	comparator  *compare.Comparator
	resolver    *graph.Resolver
	resultStore jobModel.ResultStore
	reports     *report.Writer
	logger      *logger_i.Logger
}

// NewService constructor. The result store is injected so tests can swap in
// the in-memory implementation.
func NewService(cfg config.Thresholds, resultStore jobModel.ResultStore, reports *report.Writer) Service {
	return &service{
		cfg:         cfg,
		loader:      corpus.NewLoader(),
		detector:    template.NewDetector(cfg),
		comparator:  compare.NewComparator(cfg),
		resolver:    graph.NewResolver(cfg),
		resultStore: resultStore,
		reports:     reports,
		logger:      logger_i.NewLogger("Analysis Service :"),
	}
}

// RunCorpusAnalysis executes the full document pipeline: load, template
// filtering, checkpointed pairwise comparison, summary building, report
// writing. Pair batches are persisted as they finish, so a rerun of the same
// job id resumes at the last saved batch boundary instead of starting over.
func (s *service) RunCorpusAnalysis(ctx context.Context, jobt jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", jobt.TraceId, "JobId", jobt.Id)

	docs, err := s.executeCorpusLoadStep(inMethodLogger, &jobt)
	if err != nil {
		return s.jobError(jobt, err, "CORPUS_LOAD_FAILURE", false)
	}

	tmpl, err := s.executeTemplateStep(inMethodLogger, &jobt, docs)
	if err != nil {
		return s.jobError(jobt, err, "TEMPLATE_SCAN_FAILURE", false)
	}
	filtered := tmpl.FilterDocuments(docs)

	result, err := s.executeCompareStep(ctx, inMethodLogger, &jobt, filtered, tmpl)
	if err != nil {
		return s.jobError(jobt, err, "PAIRWISE_COMPARE_FAILURE", true)
	}

	result.Summaries = buildSummaries(filtered, result.Matches)
	result.Stats.TotalDocuments = len(docs)
	result.Stats.TemplatePages = len(tmpl.Pages)
	result.Stats.TemplatePhrases = len(tmpl.Phrases)
	result.Stats.PairsCompared = len(result.Pairs)
	result.Stats.HighestMatch, result.Stats.LowestMatch = matchExtremes(result.Pairs)

	s.executeCorpusReportStep(inMethodLogger, &jobt, result)

	if err := s.resultStore.SaveResult(ctx, jobt.Id, *result); err != nil {
		return s.jobError(jobt, err, "RESULT_SAVE_FAILURE", true)
	}

	jobt.JobPayload.DocumentsAnalyzed = len(docs)
	jobt.JobPayload.PairsCompared = len(result.Pairs)
	return returnOutput(jobt)
}

// RunAwardsAnalysis executes entity resolution over a flat award-record list:
// load, optional agency/branch filtering, attribute-graph grouping, report
// writing.
func (s *service) RunAwardsAnalysis(ctx context.Context, jobt jobModel.Job) jobModel.Job {
	inMethodLogger := s.logger.With("traceId", jobt.TraceId, "JobId", jobt.Id)

	records, err := s.executeAwardsLoadStep(inMethodLogger, &jobt)
	if err != nil {
		return s.jobError(jobt, err, "AWARDS_LOAD_FAILURE", false)
	}

	groups := s.executeResolutionStep(inMethodLogger, &jobt, records)

	result := &corpusModel.AnalysisResult{
		JobId:   jobt.Id,
		Kind:    "awards",
		Records: records,
		Groups:  groups,
	}
	result.Stats.TotalAwards = len(records)
	for _, g := range groups {
		result.Stats.DuplicateEntities += len(g.Members)
		result.Stats.TotalDuplicateAmount += g.TotalAmount
	}

	s.executeAwardsReportStep(inMethodLogger, &jobt, result)

	if err := s.resultStore.SaveResult(ctx, jobt.Id, *result); err != nil {
		return s.jobError(jobt, err, "RESULT_SAVE_FAILURE", true)
	}

	jobt.JobPayload.DuplicateGroups = len(groups)
	return returnOutput(jobt)
}

// executeCompareStep runs the pairwise phase in checkpointed batches. The
// checkpoint counts pairs of the fixed AllPairs ordering already persisted;
// on resume the partial result is reloaded and comparison continues from that
// offset. A cancelled context stops between batches without advancing the
// checkpoint past saved work.
func (s *service) executeCompareStep(ctx context.Context, log *logger_i.Logger, jobt *jobModel.Job,
	docs []corpusModel.Document, tmpl *template.Result) (*corpusModel.AnalysisResult, error) {
	*jobt = logOutput(*jobt, jobModel.PairwiseCompare, log)
	defer s.captureStage("pairwise_compare")()

	pairs := compare.AllPairs(len(docs))
	window := compare.PageWindow{
		Enabled: jobt.JobPayload.ContactMode,
		Head:    s.cfg.ContactWindowHead,
		Tail:    s.cfg.ContactWindowTail,
	}

	result := &corpusModel.AnalysisResult{JobId: jobt.Id, Kind: "corpus"}
	done := 0
	if saved, found := s.resultStore.GetCheckpoint(ctx, jobt.Id); found && saved > 0 && saved <= len(pairs) {
		if prior, ok := s.resultStore.GetResult(ctx, jobt.Id); ok {
			log.Info("Resuming from checkpoint", "pairsDone", saved, "pairsTotal", len(pairs))
			result = &prior
			done = saved
		}
	}

	batchSize := s.cfg.PairBatchSize
	if batchSize < 1 {
		batchSize = len(pairs)
	}
	for start := done; start < len(pairs); start += batchSize {
		end := start + batchSize
		if end > len(pairs) {
			end = len(pairs)
		}

		batch := s.comparator.RunPairs(ctx, docs, pairs[start:end], window, s.cfg.CompareWorkers)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		result.Pairs = append(result.Pairs, batch.Scores...)
		result.Matches = append(result.Matches, batch.Matches...)

		if err := s.resultStore.SaveResult(ctx, jobt.Id, *result); err != nil {
			return nil, err
		}
		if err := s.resultStore.SaveCheckpoint(ctx, jobt.Id, end); err != nil {
			return nil, err
		}
		log.Debug("Batch complete", "pairsDone", end, "pairsTotal", len(pairs), "skipped", batch.Skipped)
	}
	return result, nil
}

func (s *service) executeTemplateStep(log *logger_i.Logger, jobt *jobModel.Job,
	docs []corpusModel.Document) (*template.Result, error) {
	*jobt = logOutput(*jobt, jobModel.TemplateScan, log)
	defer s.captureStage("template_scan")()

	if path := jobt.JobPayload.TemplateFile; path != "" {
		phrases, err := s.loader.LoadTemplatePhrases(path)
		if err != nil {
			return nil, err
		}
		log.Info("Using preloaded template phrases", "phrases", len(phrases))
		return template.NewResultFromPhrases(s.cfg, phrases), nil
	}
	return s.detector.Detect(docs)
}

func (s *service) executeCorpusLoadStep(log *logger_i.Logger, jobt *jobModel.Job) ([]corpusModel.Document, error) {
	*jobt = logOutput(*jobt, jobModel.CorpusLoading, log)
	defer s.captureStage("corpus_load")()

	docs, err := s.loader.LoadDocuments(jobt.JobPayload.CorpusDir, jobt.JobPayload.MaxDocuments)
	if err != nil {
		return nil, err
	}
	if len(docs) < 2 {
		return nil, errors.New("corpus analysis needs at least 2 readable documents")
	}
	return docs, nil
}

func (s *service) executeAwardsLoadStep(log *logger_i.Logger, jobt *jobModel.Job) ([]corpusModel.AwardRecord, error) {
	*jobt = logOutput(*jobt, jobModel.AwardsInit, log)
	defer s.captureStage("awards_load")()

	records := jobt.JobPayload.Records
	if path := jobt.JobPayload.RecordsFile; path != "" {
		loaded, err := s.loader.LoadAwardRecords(path)
		if err != nil {
			return nil, err
		}
		records = loaded
	}
	if len(records) == 0 {
		return nil, errors.New("no award records to analyze")
	}

	if jobt.JobPayload.Agency != "" || jobt.JobPayload.Branch != "" {
		before := len(records)
		records = corpus.FilterByBranch(records, jobt.JobPayload.Agency, jobt.JobPayload.Branch)
		log.Info("Filtered records", "before", before, "after", len(records),
			"agency", jobt.JobPayload.Agency, "branch", jobt.JobPayload.Branch)
	}
	return records, nil
}

func (s *service) executeResolutionStep(log *logger_i.Logger, jobt *jobModel.Job,
	records []corpusModel.AwardRecord) []corpusModel.DuplicateGroup {
	*jobt = logOutput(*jobt, jobModel.EntityResolution, log)
	defer s.captureStage("entity_resolution")()

	return s.resolver.Resolve(records)
}
