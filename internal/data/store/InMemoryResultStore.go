package store

import (
	"context"
	"sync"

	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
)

type InMemoryResultStore struct {
	resultLock    *sync.RWMutex
	resultMap     map[string]corpusModel.AnalysisResult
	checkpointMap map[string]int
}

func InitResultStore() *InMemoryResultStore {
	return &InMemoryResultStore{
		resultLock:    new(sync.RWMutex),
		resultMap:     make(map[string]corpusModel.AnalysisResult),
		checkpointMap: make(map[string]int),
	}
}

func (store *InMemoryResultStore) SaveResult(ctx context.Context, jobId string, result corpusModel.AnalysisResult) error {
	store.resultLock.Lock()
	defer store.resultLock.Unlock()
	store.resultMap[jobId] = result
	inMemLogger.Info(jobId, " : Saved result to store")
	return nil
}

func (store *InMemoryResultStore) GetResult(ctx context.Context, jobId string) (corpusModel.AnalysisResult, bool) {
	store.resultLock.RLock()
	defer store.resultLock.RUnlock()
	result, found := store.resultMap[jobId]
	return result, found
}

func (store *InMemoryResultStore) SaveCheckpoint(ctx context.Context, jobId string, pairsDone int) error {
	store.resultLock.Lock()
	defer store.resultLock.Unlock()
	store.checkpointMap[jobId] = pairsDone
	return nil
}

func (store *InMemoryResultStore) GetCheckpoint(ctx context.Context, jobId string) (int, bool) {
	store.resultLock.RLock()
	defer store.resultLock.RUnlock()
	pairsDone, found := store.checkpointMap[jobId]
	return pairsDone, found
}
