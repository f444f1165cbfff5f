package benchmark

import (
	"fmt"
	"hash/crc32"
	"log"
	"os"
	"path"
	"strconv"
	"sync"
	"time"
)

type RequestTimeLogger interface {
	LogStartRequest(identifier string) error
	LogEndRequest(identifier string) error
}

// RequestTimeLoggerImpl spreads latency records over a fixed set of routines,
// each owning one log file, so concurrent senders never contend on a writer.
type RequestTimeLoggerImpl struct {
	concurrentLogsCount int
	loggerRoutines      []*timeLoggerRoutine
	wg                  *sync.WaitGroup
}

func NewRequestTimeLoggerImpl(baseLogPath string, logGroupName string, concurrentLogsCount int) *RequestTimeLoggerImpl {
	basePath := path.Join(baseLogPath, logGroupName)
	err := os.MkdirAll(basePath, os.ModePerm)
	if err != nil {
		log.Fatalf("Could not create the time logger: %v\n", err)
	}

	var wg sync.WaitGroup
	var loggerRoutines []*timeLoggerRoutine
	for i := 0; i < concurrentLogsCount; i++ {
		wg.Add(1)
		loggerRoutines = append(loggerRoutines, newTimeLoggerRoutine(basePath, strconv.Itoa(i), &wg))
	}

	return &RequestTimeLoggerImpl{
		concurrentLogsCount: concurrentLogsCount,
		loggerRoutines:      loggerRoutines,
		wg:                  &wg,
	}
}

func (tl *RequestTimeLoggerImpl) LogStartRequest(identifier string) error {
	tl.dispatch(timedRequest{identifier: identifier, isStart: true, timestamp: time.Now()})
	return nil
}

func (tl *RequestTimeLoggerImpl) LogEndRequest(identifier string) error {
	tl.dispatch(timedRequest{identifier: identifier, isStart: false, timestamp: time.Now()})
	return nil
}

func (tl *RequestTimeLoggerImpl) Start() {
	for _, routine := range tl.loggerRoutines {
		go routine.run()
	}
}

func (tl *RequestTimeLoggerImpl) Stop() {
	for _, routine := range tl.loggerRoutines {
		close(routine.inputQueue)
	}
	tl.wg.Wait()
}

func (tl *RequestTimeLoggerImpl) dispatch(request timedRequest) {
	bucket := crc32.ChecksumIEEE([]byte(request.identifier)) % uint32(tl.concurrentLogsCount)
	tl.loggerRoutines[bucket].inputQueue <- request
}

type timedRequest struct {
	identifier string
	isStart    bool
	timestamp  time.Time
}

type timeLoggerRoutine struct {
	inputQueue      chan timedRequest
	volatileRecords map[string]time.Time
	file            *os.File
	wg              *sync.WaitGroup
}

func newTimeLoggerRoutine(basePath string, logIdentifier string, wg *sync.WaitGroup) *timeLoggerRoutine {
	file, err := os.Create(path.Join(basePath, logIdentifier+".log"))
	if err != nil {
		log.Fatalf("Could not create the time log file: %v\n", err)
	}

	return &timeLoggerRoutine{
		inputQueue:      make(chan timedRequest, 1000),
		volatileRecords: make(map[string]time.Time),
		file:            file,
		wg:              wg,
	}
}

func (routine *timeLoggerRoutine) run() {
	for request := range routine.inputQueue {
		if request.isStart {
			routine.volatileRecords[request.identifier] = request.timestamp
			continue
		}

		startTime, ok := routine.volatileRecords[request.identifier]
		if !ok {
			log.Printf("Could not find the start request for '%v'\n", request.identifier)
			continue
		}
		delete(routine.volatileRecords, request.identifier)

		latency := request.timestamp.Sub(startTime)
		_, err := fmt.Fprintf(routine.file, "%v,%v,%v,%v\n",
			request.identifier,
			startTime.UnixMicro(),
			request.timestamp.UnixMicro(),
			latency.Milliseconds(),
		)
		if err != nil {
			log.Printf("Could not log end timestamp for request '%v': %v\n", request.identifier, err)
		}
	}

	if err := routine.file.Close(); err != nil {
		log.Printf("Could not close the time log file: %v\n", err)
	}
	routine.wg.Done()
}
