package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/nexconsult/cnpj-geo/internal/cnpj"
	"github.com/nexconsult/cnpj-geo/internal/config"
)

var (
	ErrPoolStopped    = errors.New("worker pool is stopped")
	ErrPoolNotStarted = errors.New("worker pool is not started")
)

// AnalyzeFunc validates a single input. It must be safe for concurrent use.
type AnalyzeFunc func(ctx context.Context, input string) (cnpj.Info, error)

// Job is one CNPJ waiting to be validated
type Job struct {
	ID       string
	Input    string
	Created  time.Time
	Started  time.Time
	Finished time.Time
	result   chan Result
}

// Result is the outcome of a job
type Result struct {
	JobID    string
	Input    string
	Info     cnpj.Info
	Err      error
	Duration time.Duration
}

// Stats are worker pool statistics
type Stats struct {
	Workers       int    `json:"workers"`
	ActiveWorkers int32  `json:"active_workers"`
	QueueSize     int    `json:"queue_size"`
	QueueCapacity int    `json:"queue_capacity"`
	TotalJobs     int64  `json:"total_jobs"`
	CompletedJobs int64  `json:"completed_jobs"`
	FailedJobs    int64  `json:"failed_jobs"`
	Uptime        string `json:"uptime"`
	Running       bool   `json:"running"`
}

// Pool runs AnalyzeFunc on a fixed number of goroutines
type Pool struct {
	workerCount int
	jobTimeout  time.Duration
	jobQueue    chan *Job
	analyze     AnalyzeFunc
	logger      *logrus.Logger

	totalJobs     atomic.Int64
	completedJobs atomic.Int64
	failedJobs    atomic.Int64
	activeWorkers atomic.Int32
	startTime     time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	mu      sync.Mutex
	running bool
}

// NewPool creates a pool; call Start before submitting work.
func NewPool(cfg config.WorkersConfig, analyze AnalyzeFunc, logger *logrus.Logger) *Pool {
	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workerCount: cfg.Count,
		jobTimeout:  cfg.JobTimeout,
		jobQueue:    make(chan *Job, cfg.QueueSize),
		analyze:     analyze,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Start launches the workers
func (p *Pool) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ctx.Err() != nil {
		return ErrPoolStopped
	}
	if p.running {
		return nil
	}

	p.startTime = time.Now()
	p.running = true
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		go p.work(i)
	}

	p.logger.WithField("workers", p.workerCount).Info("Worker pool started")
	return nil
}

// Stop cancels pending jobs and waits for the workers to exit
func (p *Pool) Stop() {
	p.mu.Lock()
	p.running = false
	p.mu.Unlock()

	p.logger.Info("Stopping worker pool...")
	p.cancel()
	p.wg.Wait()
	p.logger.Info("Worker pool stopped")
}

// ProcessBatch validates every input and returns results in input order.
// Items that cannot be queued or finished before ctx is done carry an error.
func (p *Pool) ProcessBatch(ctx context.Context, inputs []string) ([]Result, error) {
	p.mu.Lock()
	running := p.running
	p.mu.Unlock()

	if !running {
		if p.ctx.Err() != nil {
			return nil, ErrPoolStopped
		}
		return nil, ErrPoolNotStarted
	}

	jobs := make([]*Job, len(inputs))
	for i, input := range inputs {
		jobs[i] = &Job{
			ID:      uuid.New().String(),
			Input:   input,
			Created: time.Now(),
			result:  make(chan Result, 1),
		}
	}

	results := make([]Result, len(jobs))
	queued := make([]bool, len(jobs))

	for i, job := range jobs {
		select {
		case p.jobQueue <- job:
			p.totalJobs.Add(1)
			queued[i] = true
		case <-ctx.Done():
			results[i] = Result{JobID: job.ID, Input: job.Input, Err: fmt.Errorf("queue job: %w", ctx.Err())}
		case <-p.ctx.Done():
			results[i] = Result{JobID: job.ID, Input: job.Input, Err: ErrPoolStopped}
		}
	}

	for i, job := range jobs {
		if !queued[i] {
			continue
		}
		select {
		case res := <-job.result:
			results[i] = res
		case <-ctx.Done():
			results[i] = Result{JobID: job.ID, Input: job.Input, Err: fmt.Errorf("wait job: %w", ctx.Err())}
		case <-p.ctx.Done():
			results[i] = Result{JobID: job.ID, Input: job.Input, Err: ErrPoolStopped}
		}
	}

	return results, nil
}

// Stats returns a snapshot of the pool statistics
func (p *Pool) Stats() Stats {
	p.mu.Lock()
	running := p.running
	start := p.startTime
	p.mu.Unlock()

	uptime := time.Duration(0)
	if !start.IsZero() {
		uptime = time.Since(start).Truncate(time.Second)
	}

	return Stats{
		Workers:       p.workerCount,
		ActiveWorkers: p.activeWorkers.Load(),
		QueueSize:     len(p.jobQueue),
		QueueCapacity: cap(p.jobQueue),
		TotalJobs:     p.totalJobs.Load(),
		CompletedJobs: p.completedJobs.Load(),
		FailedJobs:    p.failedJobs.Load(),
		Uptime:        uptime.String(),
		Running:       running,
	}
}

// Health reports whether the pool accepts work
func (p *Pool) Health() map[string]interface{} {
	s := p.Stats()
	status := "healthy"
	if !s.Running {
		status = "unhealthy"
	}
	return map[string]interface{}{
		"status":     status,
		"workers":    s.Workers,
		"queue_size": s.QueueSize,
	}
}

func (p *Pool) work(id int) {
	defer p.wg.Done()

	p.logger.WithField("worker_id", id).Debug("Worker started")

	for {
		select {
		case job := <-p.jobQueue:
			p.processJob(id, job)
		case <-p.ctx.Done():
			p.logger.WithField("worker_id", id).Debug("Worker stopped by context")
			return
		}
	}
}

func (p *Pool) processJob(workerID int, job *Job) {
	p.activeWorkers.Add(1)
	defer p.activeWorkers.Add(-1)

	job.Started = time.Now()

	ctx := p.ctx
	if p.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(p.ctx, p.jobTimeout)
		defer cancel()
	}

	info, err := p.analyze(ctx, job.Input)
	job.Finished = time.Now()

	res := Result{
		JobID:    job.ID,
		Input:    job.Input,
		Info:     info,
		Err:      err,
		Duration: job.Finished.Sub(job.Started),
	}

	fields := logrus.Fields{
		"worker_id": workerID,
		"job_id":    job.ID,
		"duration":  res.Duration,
	}
	if err != nil {
		p.failedJobs.Add(1)
		fields["error"] = err.Error()
		p.logger.WithFields(fields).Error("Job failed")
	} else {
		p.completedJobs.Add(1)
		fields["valid"] = info.Valid
		p.logger.WithFields(fields).Debug("Job completed")
	}

	// result is buffered with capacity one and written once
	job.result <- res
}
