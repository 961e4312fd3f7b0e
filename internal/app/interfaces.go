package app

import (
	"context"

	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/upload"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go

type CatalogAPI interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	ListTopics(ctx context.Context, areaID int64) ([]models.Topic, error)
	CreateTopic(ctx context.Context, req models.CreateTopicRequest) (*models.Topic, error)
	ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	CreateQuestion(ctx context.Context, body *upload.Request) (*models.Question, error)
	EditQuestion(ctx context.Context, id int64, body *upload.Request) (*models.Question, error)
}

type BatchAPI interface {
	CreateQuestionBatch(ctx context.Context, body *upload.Request) (*models.BatchResult, error)
	GetBatchStatus(ctx context.Context, operationID string) (*models.BatchStatus, error)
}

type InstitutionAPI interface {
	ListCourses(ctx context.Context, institutionID int64) ([]models.Course, error)
	ListTeachers(ctx context.Context, institutionID int64) ([]models.Teacher, error)
	CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	SetCourseEnabled(ctx context.Context, courseID int64, enabled bool) (*models.Course, error)
}

type QuizAPI interface {
	SubmitAnswer(ctx context.Context, answer models.QuizAnswer) (*models.AnswerReceipt, error)
	SubmitResult(ctx context.Context, result models.QuizResult) (*models.QuizResultSummary, error)
	ListResults(ctx context.Context, userID string) ([]models.QuizResultSummary, error)
}

// StatusChecker reports the progress of an accepted batch job.
type StatusChecker interface {
	GetBatchStatus(ctx context.Context, operationID string) (*models.BatchStatus, error)
}

type IdentityProvider interface {
	CurrentUser() (*models.User, bool)
	Token() string
}

type Notifier interface {
	Notify(ctx context.Context, n models.Notification) error
}

// Stub backend layers

type CatalogRepository interface {
	ListAreas(ctx context.Context) ([]models.Area, error)
	GetArea(ctx context.Context, id int64) (*models.Area, error)
	ListTopics(ctx context.Context, areaID int64) ([]models.Topic, error)
	CreateTopic(ctx context.Context, areaID int64, name string) (*models.Topic, error)
	ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int64) (*models.Question, error)
	SaveQuestion(ctx context.Context, q models.Question) (*models.Question, error)
	ListCourses(ctx context.Context, institutionID int64) ([]models.Course, error)
	ListTeachers(ctx context.Context, institutionID int64) ([]models.Teacher, error)
	CreateCourse(ctx context.Context, req models.CreateCourseRequest) (*models.Course, error)
	SetCourseEnabled(ctx context.Context, id int64, enabled bool) (*models.Course, error)
	SaveAnswer(ctx context.Context, answer models.QuizAnswer) (*models.AnswerReceipt, error)
	SaveResult(ctx context.Context, result models.QuizResult) (*models.QuizResultSummary, error)
	ListResults(ctx context.Context, userID string) ([]models.QuizResultSummary, error)
}

type JobRepository interface {
	CreateJob(ctx context.Context, questions []models.Question) (*models.BatchJob, error)
	GetJob(ctx context.Context, id string) (*models.BatchJob, error)
	UpdateJobStatus(ctx context.Context, id string, status models.BatchStatusValue, errMsg string) error
	GetMaxJobs() int
	GetActiveJobsCount() int
}

type BatchUsecase interface {
	SubmitBatch(ctx context.Context, questions []models.Question) (*models.BatchJob, error)
	GetJobStatus(ctx context.Context, id string) (*models.BatchStatus, error)
	GetMaxJobs() int
	GetActiveJobsCount() int
}
