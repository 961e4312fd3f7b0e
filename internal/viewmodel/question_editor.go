package viewmodel

import (
	"context"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/runner"
	"github.com/supchaser/quiz_client/internal/state"
	"github.com/supchaser/quiz_client/internal/upload"
	"github.com/supchaser/quiz_client/internal/utils/validate"
)

// QuestionEditor backs the single question create/edit screen.
type QuestionEditor struct {
	scope    *runner.Scope
	api      app.CatalogAPI
	question *runner.Runner[*models.Question]
	save     *runner.Runner[*models.Question]
}

func NewQuestionEditor(ctx context.Context, api app.CatalogAPI) *QuestionEditor {
	scope := runner.NewScope(ctx)
	return &QuestionEditor{
		scope:    scope,
		api:      api,
		question: runner.New(scope, "question", state.NewRequestStore[*models.Question]()),
		save:     runner.New(scope, "question_save", state.NewRequestStore[*models.Question]()),
	}
}

func (e *QuestionEditor) Question() state.Source[state.RequestState[*models.Question]] {
	return e.question.State()
}

func (e *QuestionEditor) Save() state.Source[state.RequestState[*models.Question]] {
	return e.save.State()
}

func (e *QuestionEditor) Load(id int64) *runner.Handle {
	return e.question.Run(func(ctx context.Context) (*models.Question, error) {
		return e.api.GetQuestion(ctx, id)
	})
}

func (e *QuestionEditor) Create(item models.UploadBatchItem) *runner.Handle {
	return e.save.Run(func(ctx context.Context) (*models.Question, error) {
		body, err := buildSingle(item)
		if err != nil {
			return nil, err
		}
		return e.api.CreateQuestion(ctx, body)
	})
}

func (e *QuestionEditor) Edit(id int64, item models.UploadBatchItem) *runner.Handle {
	return e.save.Run(func(ctx context.Context) (*models.Question, error) {
		body, err := buildSingle(item)
		if err != nil {
			return nil, err
		}
		return e.api.EditQuestion(ctx, id, body)
	})
}

func (e *QuestionEditor) Close() {
	e.scope.Close()
}

func buildSingle(item models.UploadBatchItem) (*upload.Request, error) {
	if err := validate.ValidateItem(item); err != nil {
		return nil, err
	}
	return upload.BuildQuestion(item)
}
