package viewmodel

import (
	"context"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/runner"
	"github.com/supchaser/quiz_client/internal/state"
	"github.com/supchaser/quiz_client/internal/utils/errs"
)

// Quiz backs the quiz taking screen and the results history.
type Quiz struct {
	scope    *runner.Scope
	api      app.QuizAPI
	identity app.IdentityProvider

	answer  *runner.Runner[*models.AnswerReceipt]
	result  *runner.Runner[*models.QuizResultSummary]
	results *runner.Runner[[]models.QuizResultSummary]
}

func NewQuiz(ctx context.Context, api app.QuizAPI, identity app.IdentityProvider) *Quiz {
	scope := runner.NewScope(ctx)
	return &Quiz{
		scope:    scope,
		api:      api,
		identity: identity,
		answer:   runner.New(scope, "quiz_answer", state.NewRequestStore[*models.AnswerReceipt]()),
		result:   runner.New(scope, "quiz_result", state.NewRequestStore[*models.QuizResultSummary]()),
		results:  runner.New(scope, "quiz_results", state.NewRequestStore[[]models.QuizResultSummary]()),
	}
}

func (q *Quiz) Answer() state.Source[state.RequestState[*models.AnswerReceipt]] {
	return q.answer.State()
}

func (q *Quiz) Result() state.Source[state.RequestState[*models.QuizResultSummary]] {
	return q.result.State()
}

func (q *Quiz) Results() state.Source[state.RequestState[[]models.QuizResultSummary]] {
	return q.results.State()
}

func (q *Quiz) currentUserID() (string, error) {
	user, ok := q.identity.CurrentUser()
	if !ok {
		return "", errs.ErrNotSignedIn
	}
	return user.ID, nil
}

func (q *Quiz) SubmitAnswer(answer models.QuizAnswer) *runner.Handle {
	return q.answer.Run(func(ctx context.Context) (*models.AnswerReceipt, error) {
		userID, err := q.currentUserID()
		if err != nil {
			return nil, err
		}
		answer.UserID = userID
		return q.api.SubmitAnswer(ctx, answer)
	})
}

func (q *Quiz) SubmitResult(result models.QuizResult) *runner.Handle {
	return q.result.Run(func(ctx context.Context) (*models.QuizResultSummary, error) {
		userID, err := q.currentUserID()
		if err != nil {
			return nil, err
		}
		result.UserID = userID
		return q.api.SubmitResult(ctx, result)
	})
}

// LoadResults lists the signed-in user's past results.
func (q *Quiz) LoadResults() *runner.Handle {
	return q.results.Run(func(ctx context.Context) ([]models.QuizResultSummary, error) {
		userID, err := q.currentUserID()
		if err != nil {
			return nil, err
		}
		return q.api.ListResults(ctx, userID)
	})
}

func (q *Quiz) Close() {
	q.scope.Close()
}
