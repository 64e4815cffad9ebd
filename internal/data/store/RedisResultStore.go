package store

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/data/redisStore"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

type RedisResultStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

func GetRedisResultStore(ctx context.Context) *RedisResultStore {
	return &RedisResultStore{
		store:  redisStore.GetRedisStore(ctx, config.RedisResultStore),
		logger: logger_i.NewLogger("ResultStore"),
	}
}

func resultKey(jobId string) string {
	return "result:" + jobId
}

func checkpointKey(jobId string) string {
	return "checkpoint:" + jobId
}

func (s *RedisResultStore) SaveResult(ctx context.Context, jobId string, result corpusModel.AnalysisResult) error {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "job Id", jobId)
	data, err := json.Marshal(result)
	if err != nil {
		log.Error("Error marshalling result", "err", err)
		return err
	}

	err = s.store.Set(ctx, resultKey(jobId), data, config.RedisResultStoreTTL)
	if err == nil {
		log.Debug("Saved result to Redis")
	}
	return err
}

func (s *RedisResultStore) GetResult(ctx context.Context, jobId string) (corpusModel.AnalysisResult, bool) {
	var result corpusModel.AnalysisResult
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "job Id", jobId)
	val, err := s.store.Get(ctx, resultKey(jobId))
	if s.store.IsNil(err) {
		return result, false
	} else if err != nil {
		log.Error("Error getting result", "err", err)
		return result, false
	}

	err = json.Unmarshal([]byte(val), &result)
	if err != nil {
		log.Error("Error unmarshalling result", "err", err)
		return result, false
	}

	log.Debug("Result found in Redis")
	return result, true
}

// SaveCheckpoint records how many pairs of the fixed pair ordering have been
// fully compared and persisted, so an interrupted run resumes at that offset.
func (s *RedisResultStore) SaveCheckpoint(ctx context.Context, jobId string, pairsDone int) error {
	return s.store.Set(ctx, checkpointKey(jobId), pairsDone, config.RedisResultStoreTTL)
}

func (s *RedisResultStore) GetCheckpoint(ctx context.Context, jobId string) (int, bool) {
	val, err := s.store.Get(ctx, checkpointKey(jobId))
	if err != nil {
		return 0, false
	}
	pairsDone, err := strconv.Atoi(val)
	if err != nil {
		s.logger.Error("Invalid checkpoint value", "jobId", jobId, "value", val)
		return 0, false
	}
	return pairsDone, true
}

func TestResultStore(store *redisStore.Store) *RedisResultStore {
	return &RedisResultStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
