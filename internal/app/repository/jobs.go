package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

type JobRepository struct {
	jobs       map[string]*models.BatchJob
	activeJobs int
	maxJobs    int
	mu         sync.Mutex
}

func CreateJobRepository(maxJobs int) *JobRepository {
	return &JobRepository{
		jobs:    make(map[string]*models.BatchJob),
		maxJobs: maxJobs,
	}
}

func copyJob(job *models.BatchJob) *models.BatchJob {
	copied := *job
	copied.Questions = append([]models.Question(nil), job.Questions...)
	return &copied
}

func (r *JobRepository) CreateJob(ctx context.Context, questions []models.Question) (*models.BatchJob, error) {
	const funcName = "JobRepository.CreateJob"
	logger.Debug("attempting to create batch job",
		zap.String("function", funcName),
		zap.Int("questions", len(questions)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.activeJobs >= r.maxJobs {
		logger.Warn("maximum batch jobs limit reached",
			zap.String("function", funcName),
			zap.Int("active_jobs", r.activeJobs),
			zap.Int("max_jobs", r.maxJobs),
		)
		return nil, fmt.Errorf("%w: current %d, max %d", errs.ErrMaxJobsReached, r.activeJobs, r.maxJobs)
	}

	job := &models.BatchJob{
		ID:        uuid.NewString(),
		Status:    models.BatchPending,
		Questions: append([]models.Question(nil), questions...),
		CreatedAt: time.Now(),
	}

	r.jobs[job.ID] = job
	r.activeJobs++

	logger.Info("batch job created successfully",
		zap.String("function", funcName),
		zap.String("job_id", job.ID),
		zap.Int("active_jobs", r.activeJobs),
		zap.Time("created_at", job.CreatedAt),
	)

	return copyJob(job), nil
}

func (r *JobRepository) GetJob(ctx context.Context, id string) (*models.BatchJob, error) {
	const funcName = "JobRepository.GetJob"

	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		logger.Warn("batch job not found",
			zap.String("function", funcName),
			zap.String("job_id", id),
		)
		return nil, errs.ErrJobNotFound
	}

	return copyJob(job), nil
}

// UpdateJobStatus moves a job forward. Reaching a settled status releases
// the active slot; completed jobs count every question they carried.
func (r *JobRepository) UpdateJobStatus(ctx context.Context, id string, status models.BatchStatusValue, errMsg string) error {
	const funcName = "JobRepository.UpdateJobStatus"
	logger.Debug("attempting to update batch job status",
		zap.String("function", funcName),
		zap.String("job_id", id),
		zap.String("new_status", string(status)),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	job, exists := r.jobs[id]
	if !exists {
		logger.Warn("batch job not found when updating status",
			zap.String("function", funcName),
			zap.String("job_id", id),
		)
		return errs.ErrJobNotFound
	}

	oldStatus := job.Status
	job.Status = status
	job.Error = errMsg
	if status == models.BatchCompleted {
		job.Created = len(job.Questions)
	}

	if status.Settled() && !oldStatus.Settled() {
		r.activeJobs--
		logger.Info("active batch job slot released",
			zap.String("function", funcName),
			zap.String("job_id", id),
			zap.Int("remaining_active_jobs", r.activeJobs),
		)
	}

	logger.Info("batch job status updated successfully",
		zap.String("function", funcName),
		zap.String("job_id", id),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(status)),
	)

	return nil
}

func (r *JobRepository) GetMaxJobs() int {
	return r.maxJobs
}

func (r *JobRepository) GetActiveJobsCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.activeJobs
}
