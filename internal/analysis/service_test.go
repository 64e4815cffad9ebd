package analysis

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/data/store"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/internal/domain/jobModel"
	"github.com/akolanti/DupFinder/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coverPage = "This standardized cover sheet must accompany every submission to the review office. " +
	"Do not alter the layout of this form in any way. All fields are required before processing can begin."

var bodyPages = []string{
	"The proposed effort develops a lightweight composite housing for rotary actuators operating in high vibration environments.",
	"Our team will characterize thermal drift in the optical bench across the full mission temperature profile and altitude range.",
	"Phase one deliverables include a calibrated sensor array prototype and a complete report on field measurement uncertainty.",
}

func writeTestDoc(t *testing.T, dir, name, body string, firm *map[string]string) {
	t.Helper()
	doc := map[string]any{
		"filename": name,
		"text_by_page": map[string]string{
			"1": coverPage,
			"2": body,
		},
	}
	if firm != nil {
		doc["firm_info"] = *firm
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func buildTestCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	names := []string{"alpha.json", "bravo.json", "charlie.json"}
	for i, name := range names {
		writeTestDoc(t, dir, name, bodyPages[i], nil)
	}
	return dir
}

func newTestService(t *testing.T, cfg config.Thresholds, results jobModel.ResultStore) Service {
	t.Helper()
	return NewService(cfg, results, report.NewWriter(t.TempDir()))
}

func TestRunCorpusAnalysis_EndToEnd(t *testing.T) {
	results := store.InitResultStore()
	svc := newTestService(t, config.DefaultThresholds(), results)

	jobt := jobModel.Job{
		Id:      "corpus-job-1",
		TraceId: "trace-1",
		JobType: jobModel.JobTypeCorpus,
		JobPayload: jobModel.JobPayload{
			CorpusDir: buildTestCorpus(t),
		},
	}

	out := svc.RunCorpusAnalysis(context.Background(), jobt)

	require.Empty(t, out.Error.Message)
	assert.Equal(t, jobModel.Complete, out.CurrentStep)
	assert.Equal(t, 3, out.JobPayload.DocumentsAnalyzed)
	assert.Equal(t, 3, out.JobPayload.PairsCompared)

	result, found := results.GetResult(context.Background(), "corpus-job-1")
	require.True(t, found)
	assert.Equal(t, "corpus", result.Kind)
	assert.Equal(t, 3, result.Stats.TotalDocuments)
	assert.Equal(t, 3, result.Stats.PairsCompared)
	// the shared cover page was flagged as template
	assert.Equal(t, 1, result.Stats.TemplatePages)
	assert.Len(t, result.Pairs, 3)

	done, found := results.GetCheckpoint(context.Background(), "corpus-job-1")
	require.True(t, found)
	assert.Equal(t, 3, done)
}

func TestRunCorpusAnalysis_BatchedCheckpoints(t *testing.T) {
	cfg := config.DefaultThresholds()
	cfg.PairBatchSize = 1
	results := store.InitResultStore()
	svc := newTestService(t, cfg, results)

	jobt := jobModel.Job{
		Id:         "corpus-job-batched",
		JobType:    jobModel.JobTypeCorpus,
		JobPayload: jobModel.JobPayload{CorpusDir: buildTestCorpus(t)},
	}

	out := svc.RunCorpusAnalysis(context.Background(), jobt)

	require.Empty(t, out.Error.Message)
	done, found := results.GetCheckpoint(context.Background(), "corpus-job-batched")
	require.True(t, found)
	assert.Equal(t, 3, done)
}

func TestRunCorpusAnalysis_ResumesFromCheckpoint(t *testing.T) {
	results := store.InitResultStore()
	svc := newTestService(t, config.DefaultThresholds(), results)

	ctx := context.Background()
	jobId := "corpus-job-resume"

	// a prior run persisted the first pair and its checkpoint before dying
	seed := corpusModel.AnalysisResult{
		JobId: jobId,
		Kind:  "corpus",
		Pairs: []corpusModel.PairScore{{Doc1: "alpha.json", Doc2: "bravo.json", OverallMatch: 42}},
	}
	require.NoError(t, results.SaveResult(ctx, jobId, seed))
	require.NoError(t, results.SaveCheckpoint(ctx, jobId, 1))

	jobt := jobModel.Job{
		Id:         jobId,
		JobType:    jobModel.JobTypeCorpus,
		JobPayload: jobModel.JobPayload{CorpusDir: buildTestCorpus(t)},
	}
	out := svc.RunCorpusAnalysis(ctx, jobt)

	require.Empty(t, out.Error.Message)
	result, found := results.GetResult(ctx, jobId)
	require.True(t, found)
	// the seeded score survived; only the remaining two pairs were recomputed
	require.Len(t, result.Pairs, 3)
	assert.Equal(t, 42.0, result.Pairs[0].OverallMatch)
}

func TestRunCorpusAnalysis_MissingDirectory(t *testing.T) {
	svc := newTestService(t, config.DefaultThresholds(), store.InitResultStore())

	jobt := jobModel.Job{
		Id:         "corpus-job-bad",
		JobType:    jobModel.JobTypeCorpus,
		JobPayload: jobModel.JobPayload{CorpusDir: "/does/not/exist"},
	}
	out := svc.RunCorpusAnalysis(context.Background(), jobt)

	assert.Equal(t, jobModel.JobStatusError, out.Status)
	assert.Equal(t, "CORPUS_LOAD_FAILURE", out.Error.Message)
	assert.False(t, out.Error.Retry)
}

func TestRunCorpusAnalysis_TooFewDocuments(t *testing.T) {
	dir := t.TempDir()
	writeTestDoc(t, dir, "only.json", bodyPages[0], nil)
	svc := newTestService(t, config.DefaultThresholds(), store.InitResultStore())

	out := svc.RunCorpusAnalysis(context.Background(), jobModel.Job{
		Id:         "corpus-job-single",
		JobType:    jobModel.JobTypeCorpus,
		JobPayload: jobModel.JobPayload{CorpusDir: dir},
	})

	assert.Equal(t, jobModel.JobStatusError, out.Status)
	assert.Equal(t, "CORPUS_LOAD_FAILURE", out.Error.Message)
}

func TestRunCorpusAnalysis_CancelledContext(t *testing.T) {
	svc := newTestService(t, config.DefaultThresholds(), store.InitResultStore())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := svc.RunCorpusAnalysis(ctx, jobModel.Job{
		Id:         "corpus-job-cancelled",
		JobType:    jobModel.JobTypeCorpus,
		JobPayload: jobModel.JobPayload{CorpusDir: buildTestCorpus(t)},
	})

	assert.Equal(t, jobModel.JobStatusError, out.Status)
	assert.Equal(t, "PAIRWISE_COMPARE_FAILURE", out.Error.Message)
	assert.True(t, out.Error.Retry, "an interrupted comparison is retryable")
}

func TestRunAwardsAnalysis_EndToEnd(t *testing.T) {
	results := store.InitResultStore()
	svc := newTestService(t, config.DefaultThresholds(), results)

	jobt := jobModel.Job{
		Id:      "awards-job-1",
		JobType: jobModel.JobTypeAwards,
		JobPayload: jobModel.JobPayload{
			Records: []corpusModel.AwardRecord{
				{Firm: "Acme Inc", POCPhone: "555-1234", AwardAmount: "$100,000"},
				{Firm: "Zenith LLC", PIPhone: "555-1234", AwardAmount: "$50,000"},
				{Firm: "Unrelated Co", POCPhone: "555-9999", AwardAmount: "$10,000"},
			},
		},
	}

	out := svc.RunAwardsAnalysis(context.Background(), jobt)

	require.Empty(t, out.Error.Message)
	assert.Equal(t, jobModel.Complete, out.CurrentStep)
	assert.Equal(t, 1, out.JobPayload.DuplicateGroups)

	result, found := results.GetResult(context.Background(), "awards-job-1")
	require.True(t, found)
	assert.Equal(t, "awards", result.Kind)
	assert.Equal(t, 3, result.Stats.TotalAwards)
	assert.Equal(t, 2, result.Stats.DuplicateEntities)
	assert.InDelta(t, 150000, result.Stats.TotalDuplicateAmount, 0.01)
	require.Len(t, result.Groups, 1)
	assert.Contains(t, result.Groups[0].RedFlagPhones, "555-1234")
}

func TestRunAwardsAnalysis_NoRecords(t *testing.T) {
	svc := newTestService(t, config.DefaultThresholds(), store.InitResultStore())

	out := svc.RunAwardsAnalysis(context.Background(), jobModel.Job{
		Id:      "awards-job-empty",
		JobType: jobModel.JobTypeAwards,
	})

	assert.Equal(t, jobModel.JobStatusError, out.Status)
	assert.Equal(t, "AWARDS_LOAD_FAILURE", out.Error.Message)
}

func TestRunAwardsAnalysis_BranchFilter(t *testing.T) {
	results := store.InitResultStore()
	svc := newTestService(t, config.DefaultThresholds(), results)

	out := svc.RunAwardsAnalysis(context.Background(), jobModel.Job{
		Id:      "awards-job-filtered",
		JobType: jobModel.JobTypeAwards,
		JobPayload: jobModel.JobPayload{
			Agency: "DOD",
			Records: []corpusModel.AwardRecord{
				{Firm: "Acme Inc", Agency: "DOD", POCPhone: "555-1234", AwardAmount: "$100,000"},
				{Firm: "Zenith LLC", Agency: "NASA", PIPhone: "555-1234", AwardAmount: "$50,000"},
			},
		},
	})

	require.Empty(t, out.Error.Message)
	result, found := results.GetResult(context.Background(), "awards-job-filtered")
	require.True(t, found)
	assert.Equal(t, 1, result.Stats.TotalAwards)
	// the cross-agency phone edge disappears once the NASA record is filtered
	assert.Empty(t, result.Groups)
}
