package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/metrics"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

// BatchUsecase accepts question batches and processes them in the
// background, the way the real backend answers 202 to large uploads.
type BatchUsecase struct {
	jobRepository     app.JobRepository
	catalogRepository app.CatalogRepository
	processingDelay   time.Duration
}

func CreateBatchUsecase(jobRepository app.JobRepository, catalogRepository app.CatalogRepository, processingDelay time.Duration) *BatchUsecase {
	return &BatchUsecase{
		jobRepository:     jobRepository,
		catalogRepository: catalogRepository,
		processingDelay:   processingDelay,
	}
}

func (u *BatchUsecase) SubmitBatch(ctx context.Context, questions []models.Question) (*models.BatchJob, error) {
	const funcName = "BatchUsecase.SubmitBatch"
	logger.Debug("submitting batch",
		zap.String("function", funcName),
		zap.Int("questions", len(questions)),
	)

	if len(questions) == 0 {
		return nil, errs.ErrEmptyBatch
	}

	job, err := u.jobRepository.CreateJob(ctx, questions)
	if err != nil {
		logger.Error("failed to create batch job",
			zap.String("function", funcName),
			zap.Error(err),
		)
		return nil, err
	}

	metrics.RecordStubBatchJob(string(job.Status))
	go u.ProcessJob(context.WithoutCancel(ctx), job.ID)

	return job, nil
}

func (u *BatchUsecase) ProcessJob(ctx context.Context, jobID string) {
	const funcName = "BatchUsecase.ProcessJob"
	logger.Info("starting batch processing",
		zap.String("function", funcName),
		zap.String("job_id", jobID),
	)

	if err := u.jobRepository.UpdateJobStatus(ctx, jobID, models.BatchProcessing, ""); err != nil {
		logger.Error("failed to update batch job status",
			zap.String("function", funcName),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return
	}
	metrics.RecordStubBatchJob(string(models.BatchProcessing))

	job, err := u.jobRepository.GetJob(ctx, jobID)
	if err != nil {
		logger.Error("failed to get batch job for processing",
			zap.String("function", funcName),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return
	}

	timer := time.NewTimer(u.processingDelay)
	select {
	case <-ctx.Done():
		timer.Stop()
		u.fail(ctx, jobID, ctx.Err().Error())
		return
	case <-timer.C:
	}

	for i, q := range job.Questions {
		if _, err := u.catalogRepository.SaveQuestion(ctx, q); err != nil {
			logger.Warn("failed to save question from batch",
				zap.String("function", funcName),
				zap.String("job_id", jobID),
				zap.Int("index", i),
				zap.Error(err),
			)
			u.fail(ctx, jobID, fmt.Sprintf("question %d: %v", i, err))
			return
		}
	}

	if err := u.jobRepository.UpdateJobStatus(ctx, jobID, models.BatchCompleted, ""); err != nil {
		logger.Error("failed to update batch job status",
			zap.String("function", funcName),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return
	}
	metrics.RecordStubBatchJob(string(models.BatchCompleted))

	logger.Info("batch processed successfully",
		zap.String("function", funcName),
		zap.String("job_id", jobID),
		zap.Int("questions", len(job.Questions)),
	)
}

func (u *BatchUsecase) fail(ctx context.Context, jobID, message string) {
	if err := u.jobRepository.UpdateJobStatus(ctx, jobID, models.BatchFailed, message); err != nil {
		logger.Error("failed to mark batch job as failed",
			zap.String("function", "BatchUsecase.fail"),
			zap.String("job_id", jobID),
			zap.Error(err),
		)
		return
	}
	metrics.RecordStubBatchJob(string(models.BatchFailed))
}

func (u *BatchUsecase) GetJobStatus(ctx context.Context, id string) (*models.BatchStatus, error) {
	const funcName = "BatchUsecase.GetJobStatus"
	logger.Debug("getting batch job status",
		zap.String("function", funcName),
		zap.String("job_id", id),
	)

	job, err := u.jobRepository.GetJob(ctx, id)
	if err != nil {
		logger.Error("failed to get batch job status",
			zap.String("function", funcName),
			zap.String("job_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	return &models.BatchStatus{
		OperationID: job.ID,
		Status:      job.Status,
		Created:     job.Created,
		Error:       job.Error,
	}, nil
}

func (u *BatchUsecase) GetMaxJobs() int {
	return u.jobRepository.GetMaxJobs()
}

func (u *BatchUsecase) GetActiveJobsCount() int {
	return u.jobRepository.GetActiveJobsCount()
}
