// @title           DupFinder API
// @version         1.0
// @description     Asynchronous duplicate-detection jobs over extracted document corpora and award-record entity resolution
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akolanti/DupFinder/internal/analysis"
	"github.com/akolanti/DupFinder/internal/config"
	"github.com/akolanti/DupFinder/internal/data/redisStore"
	"github.com/akolanti/DupFinder/internal/data/store"
	jobmodel "github.com/akolanti/DupFinder/internal/domain/jobModel"
	"github.com/akolanti/DupFinder/internal/handlers"
	"github.com/akolanti/DupFinder/internal/job"
	"github.com/akolanti/DupFinder/internal/report"
	"github.com/akolanti/DupFinder/internal/server"
	"github.com/akolanti/DupFinder/internal/worker"
	"github.com/akolanti/DupFinder/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using process environment")
	}
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	thresholds, err := config.LoadThresholds(config.AnalysisConfigPath())
	if err != nil {
		logger.Error("Invalid analysis config", "error", err)
		return
	}

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init stores - redis first, in-memory when redis is offline
	var jobStore jobmodel.JobStore
	var resultStore jobmodel.ResultStore
	if redisStore.GetRedisStore(serviceContext, config.RedisJobStore) != nil {
		jobStore = store.GetRedisJobStore(serviceContext)
		resultStore = store.GetRedisResultStore(serviceContext)
	} else if config.FALLBACK_REDIS_TO_INTERNALSTORE {
		logger.Error("Redis stores are offline - falling back to in-memory stores")
		jobStore = store.InitInMemoryJobStore()
		resultStore = store.InitResultStore()
	} else {
		logger.Error("Redis stores are offline. Shutting down.")
		return
	}

	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		JobStore:          jobStore,
		ResultStore:       resultStore,
	}
	logger.Info("Starting job service")
	service := job.InitJobService(serviceConfig)

	analysisService := analysis.NewService(thresholds, resultStore, report.NewWriter(config.ReportDir()))

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, analysisService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
