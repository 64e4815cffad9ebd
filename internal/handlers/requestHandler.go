package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/akolanti/DupFinder/internal/adapter"
	"github.com/akolanti/DupFinder/internal/adapter/utils"
	"github.com/akolanti/DupFinder/internal/api"
	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/domain/jobModel"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

var logRH *logger_i.Logger

// technically i dont need this
// but i want to eventually remove jobHandler from handlers and set it in another package
// so in anticipation for that this struct exists
type newJobData struct {
	id      string
	traceId string
	jobType jobModel.JobType
	payload jobModel.JobPayload
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// PostCorpusAnalysisHandler godoc
// @Summary      Start a corpus comparison job
// @Description  Accepts a directory of extracted document JSON files, queues a pairwise duplicate-detection job, and returns a job ID to track status.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      api.CorpusAnalysisRequest  true  "Corpus directory and run options"
// @Success      202      {object}  api.InitJobResponse        "Job successfully created"
// @Failure      400      {object}  api.JobResponse            "Invalid request data"
// @Router       /analysis/corpus [post]
func PostCorpusAnalysisHandler(w http.ResponseWriter, request *http.Request) {

	if validateContext(request.Context()) {

		var requestData api.CorpusAnalysisRequest
		defer closeBody(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || requestData.CorpusDir == "" {
			logRH.Warn("Bad Corpus Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		//a request that doesn't say how many documents it wants gets the test-mode
		//cap; a negative count means the whole corpus
		maxDocs := requestData.MaxDocuments
		if maxDocs == 0 {
			maxDocs = config.TestModeDocumentCap
		} else if maxDocs < 0 {
			maxDocs = 0
		}

		enqueueJob(request, w, jobModel.JobTypeCorpus, jobModel.JobPayload{
			CorpusDir:    requestData.CorpusDir,
			TemplateFile: requestData.TemplateFile,
			ContactMode:  requestData.ContactMode,
			MaxDocuments: maxDocs,
		})
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// PostAwardsAnalysisHandler godoc
// @Summary      Start an award-record entity resolution job
// @Description  Accepts award records inline or by file path, queues a duplicate-firm grouping job, and returns a job ID to track status.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request  body      api.AwardsAnalysisRequest  true  "Award records and optional agency/branch filter"
// @Success      202      {object}  api.InitJobResponse        "Job successfully created"
// @Failure      400      {object}  api.JobResponse            "Invalid request data"
// @Router       /analysis/awards [post]
func PostAwardsAnalysisHandler(w http.ResponseWriter, request *http.Request) {

	if validateContext(request.Context()) {

		var requestData api.AwardsAnalysisRequest
		defer closeBody(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil ||
			(requestData.RecordsFile == "" && len(requestData.Records) == 0) {
			logRH.Warn("Bad Awards Request: ", "error:", err)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		enqueueJob(request, w, jobModel.JobTypeAwards, jobModel.JobPayload{
			RecordsFile: requestData.RecordsFile,
			Records:     requestData.Records,
			Agency:      requestData.Agency,
			Branch:      requestData.Branch,
		})
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific job using its ID.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.JobResponse   "Successful retrieval of job status"
// @Failure      404  {object}  api.JobResponse   "Job not found (returns Error object within JobResponse)"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		//use chi get the url id
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// GetResultHandler godoc
// @Summary      Get full analysis result
// @Description  Retrieves the complete stored result of a finished job: pair scores, matches, summaries and duplicate groups.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID "
// @Success      200  {object}  api.ResultResponse  "The stored analysis result"
// @Failure      404  {object}  api.JobResponse     "Result not found (job unknown or still running)"
// @Router       /results/{id} [get]
func GetResultHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		if idString == "" {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Result not found")
			return
		}
		result, isFound := GetJobResult(idString, r.Context().Value(config.TRACE_ID_KEY).(string))
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Result not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToResultResponse(result))
	}
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		logRH.Error("Couldn't close the request body reader :", err)
	}
}
