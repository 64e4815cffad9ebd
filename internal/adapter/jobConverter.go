package adapter

import (
	"fmt"
	"time"

	"github.com/akolanti/DupFinder/internal/api"
	"github.com/akolanti/DupFinder/internal/domain/corpusModel"
	"github.com/akolanti/DupFinder/internal/domain/jobModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("status/%s", id), //pass "status/job.Id"
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status:  string(job.Status),
		Step:    string(job.CurrentStep),
		Summary: ToAnalysisSummary(job.JobPayload),
	}

	return api.JobResponse{
		Id:        job.Id,
		JobType:   string(job.JobType),
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToAnalysisSummary(payload jobModel.JobPayload) *api.AnalysisSummary {
	if payload.DocumentsAnalyzed == 0 && payload.PairsCompared == 0 && payload.DuplicateGroups == 0 {
		return nil
	}

	return &api.AnalysisSummary{
		DocumentsAnalyzed: payload.DocumentsAnalyzed,
		PairsCompared:     payload.PairsCompared,
		DuplicateGroups:   payload.DuplicateGroups,
	}
}

func ToResultResponse(result corpusModel.AnalysisResult) api.ResultResponse {
	return api.ResultResponse{
		Id:        result.JobId,
		Kind:      result.Kind,
		Stats:     result.Stats,
		Pairs:     result.Pairs,
		Groups:    result.Groups,
		Matches:   result.Matches,
		Summaries: result.Summaries,
		Records:   result.Records,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
