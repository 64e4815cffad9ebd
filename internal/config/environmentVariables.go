package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD                         = false
	LOG_LEVEL_PROD                  = slog.LevelInfo
	FALLBACK_REDIS_TO_INTERNALSTORE = true //if redis init fails, it falls back to an internal in-memory store
	TRACE_ID_KEY                    = "traceId"
	RATE_LIMIT_PER_SECOND           = 2
	BURST_RATE_LIMIT_PER_SECOND     = 5

	NoAuthBypass = true //local analysis runs do not carry a token
	AuthToken    = ""

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute
	//full corpus runs are quadratic in document count, so jobs get a generous
	//deadline relative to request handling
	JobExecutionTimeout = 30 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 10 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	//corpus loading
	//a full corpus run is O(N^2 * L) on text length, so runs default to a capped
	//document count unless the request asks for everything
	TestModeDocumentCap = 10

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore    = 0
	RedisResultStore = 1

	//redis timeouts
	RedisJobStoreTTL    = 24 * time.Hour
	RedisResultStoreTTL = 72 * time.Hour
)

// AnalysisConfigPath points at an optional TOML file that overrides the
// detection thresholds in Thresholds. Empty means defaults only.
func AnalysisConfigPath() string {
	return os.Getenv("ANALYSIS_CONFIG")
}

// ReportDir is where the CSV report files land.
func ReportDir() string {
	if dir := os.Getenv("REPORT_DIR"); dir != "" {
		return dir
	}
	return "reports"
}
