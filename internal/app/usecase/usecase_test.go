package usecase

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	mock_app "github.com/supchaser/quiz_client/internal/app/mocks"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/app/repository"
	"github.com/supchaser/quiz_client/internal/utils/errs"
	"github.com/supchaser/quiz_client/internal/utils/logger"
)

func TestMain(m *testing.M) {
	logger.InitTestLogger()
	os.Exit(m.Run())
}

func question(areaID int64) models.Question {
	return models.Question{
		Statement: "2+2?",
		AreaID:    areaID,
		Options:   []models.Option{{Text: "4", Correct: true}, {Text: "5"}},
	}
}

func TestBatchUsecase_SubmitBatch(t *testing.T) {
	tests := []struct {
		name          string
		questions     []models.Question
		mockSetup     func(*mock_app.MockJobRepository)
		expectedError error
	}{
		{
			name:          "EmptyBatch",
			questions:     nil,
			mockSetup:     func(*mock_app.MockJobRepository) {},
			expectedError: errs.ErrEmptyBatch,
		},
		{
			name:      "MaxJobsReached",
			questions: []models.Question{question(1)},
			mockSetup: func(mockRepo *mock_app.MockJobRepository) {
				mockRepo.EXPECT().
					CreateJob(gomock.Any(), gomock.Any()).
					Return(nil, errs.ErrMaxJobsReached)
			},
			expectedError: errs.ErrMaxJobsReached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockJobs := mock_app.NewMockJobRepository(ctrl)
			mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
			tt.mockSetup(mockJobs)

			uc := CreateBatchUsecase(mockJobs, mockCatalog, time.Millisecond)
			job, err := uc.SubmitBatch(context.Background(), tt.questions)

			assert.Nil(t, job)
			assert.True(t, errors.Is(err, tt.expectedError))
		})
	}
}

func TestBatchUsecase_ProcessJob(t *testing.T) {
	tests := []struct {
		name      string
		mockSetup func(*mock_app.MockJobRepository, *mock_app.MockCatalogRepository)
	}{
		{
			name: "Success",
			mockSetup: func(jobs *mock_app.MockJobRepository, catalog *mock_app.MockCatalogRepository) {
				gomock.InOrder(
					jobs.EXPECT().UpdateJobStatus(gomock.Any(), "job-1", models.BatchProcessing, "").Return(nil),
					jobs.EXPECT().GetJob(gomock.Any(), "job-1").Return(&models.BatchJob{
						ID:        "job-1",
						Questions: []models.Question{question(1), question(1)},
					}, nil),
					catalog.EXPECT().SaveQuestion(gomock.Any(), gomock.Any()).Return(&models.Question{ID: 1}, nil).Times(2),
					jobs.EXPECT().UpdateJobStatus(gomock.Any(), "job-1", models.BatchCompleted, "").Return(nil),
				)
			},
		},
		{
			name: "SaveFails",
			mockSetup: func(jobs *mock_app.MockJobRepository, catalog *mock_app.MockCatalogRepository) {
				gomock.InOrder(
					jobs.EXPECT().UpdateJobStatus(gomock.Any(), "job-1", models.BatchProcessing, "").Return(nil),
					jobs.EXPECT().GetJob(gomock.Any(), "job-1").Return(&models.BatchJob{
						ID:        "job-1",
						Questions: []models.Question{question(7)},
					}, nil),
					catalog.EXPECT().SaveQuestion(gomock.Any(), gomock.Any()).Return(nil, errs.ErrInvalidReference),
					jobs.EXPECT().UpdateJobStatus(gomock.Any(), "job-1", models.BatchFailed, gomock.Any()).Return(nil),
				)
			},
		},
		{
			name: "JobMissing",
			mockSetup: func(jobs *mock_app.MockJobRepository, catalog *mock_app.MockCatalogRepository) {
				jobs.EXPECT().UpdateJobStatus(gomock.Any(), "job-1", models.BatchProcessing, "").Return(errs.ErrJobNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockJobs := mock_app.NewMockJobRepository(ctrl)
			mockCatalog := mock_app.NewMockCatalogRepository(ctrl)
			tt.mockSetup(mockJobs, mockCatalog)

			uc := CreateBatchUsecase(mockJobs, mockCatalog, time.Millisecond)
			uc.ProcessJob(context.Background(), "job-1")
		})
	}
}

func TestBatchUsecase_ProcessJobCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockJobs := mock_app.NewMockJobRepository(ctrl)
	mockCatalog := mock_app.NewMockCatalogRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		mockJobs.EXPECT().UpdateJobStatus(gomock.Any(), "job-1", models.BatchProcessing, "").Return(nil),
		mockJobs.EXPECT().GetJob(gomock.Any(), "job-1").DoAndReturn(
			func(context.Context, string) (*models.BatchJob, error) {
				cancel()
				return &models.BatchJob{ID: "job-1", Questions: []models.Question{question(1)}}, nil
			}),
		mockJobs.EXPECT().UpdateJobStatus(gomock.Any(), "job-1", models.BatchFailed, context.Canceled.Error()).Return(nil),
	)

	uc := CreateBatchUsecase(mockJobs, mockCatalog, time.Hour)
	uc.ProcessJob(ctx, "job-1")
}

func TestBatchUsecase_EndToEnd(t *testing.T) {
	catalog := repository.CreateCatalogRepository()
	area := catalog.AddArea(models.Area{Name: "Matemática"})
	jobs := repository.CreateJobRepository(2)

	uc := CreateBatchUsecase(jobs, catalog, 10*time.Millisecond)

	job, err := uc.SubmitBatch(context.Background(), []models.Question{question(area.ID), question(area.ID)})
	assert.NoError(t, err)
	assert.Equal(t, 1, uc.GetActiveJobsCount())
	assert.Equal(t, 2, uc.GetMaxJobs())

	assert.Eventually(t, func() bool {
		status, err := uc.GetJobStatus(context.Background(), job.ID)
		return err == nil && status.Status == models.BatchCompleted
	}, 2*time.Second, 5*time.Millisecond)

	status, err := uc.GetJobStatus(context.Background(), job.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, status.Created)
	assert.Equal(t, 0, uc.GetActiveJobsCount())

	saved, _ := catalog.ListQuestions(context.Background(), models.QuestionFilter{AreaID: area.ID})
	assert.Len(t, saved, 2)
}

func TestBatchUsecase_GetJobStatusNotFound(t *testing.T) {
	uc := CreateBatchUsecase(repository.CreateJobRepository(1), repository.CreateCatalogRepository(), time.Millisecond)

	status, err := uc.GetJobStatus(context.Background(), "missing")
	assert.Nil(t, status)
	assert.ErrorIs(t, err, errs.ErrJobNotFound)
}
