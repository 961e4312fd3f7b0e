package viewmodel

import (
	"context"
	"strings"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/runner"
	"github.com/supchaser/quiz_client/internal/state"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

// QuestionBank backs the question bank screen: areas, the topics of the
// selected area, and a searchable question list.
type QuestionBank struct {
	scope *runner.Scope
	api   app.CatalogAPI

	areas       *runner.Runner[[]models.Area]
	topics      *runner.Runner[[]models.Topic]
	questions   *runner.Runner[[]models.Question]
	topicCreate *runner.Runner[*models.Topic]

	query    *state.Store[string]
	filtered state.Source[[]models.Question]
}

func NewQuestionBank(ctx context.Context, api app.CatalogAPI) *QuestionBank {
	scope := runner.NewScope(ctx)
	b := &QuestionBank{
		scope:       scope,
		api:         api,
		areas:       runner.New(scope, "areas", state.NewRequestStore[[]models.Area]()),
		topics:      runner.New(scope, "topics", state.NewRequestStore[[]models.Topic]()),
		questions:   runner.New(scope, "questions", state.NewRequestStore[[]models.Question]()),
		topicCreate: runner.New(scope, "topic_create", state.NewRequestStore[*models.Topic]()),
		query:       state.New(""),
	}
	b.filtered = state.Combine(b.questions.State(), b.query.ReadOnly(), filterQuestions)

	return b
}

func (b *QuestionBank) Areas() state.Source[state.RequestState[[]models.Area]] {
	return b.areas.State()
}

func (b *QuestionBank) Topics() state.Source[state.RequestState[[]models.Topic]] {
	return b.topics.State()
}

func (b *QuestionBank) Questions() state.Source[state.RequestState[[]models.Question]] {
	return b.questions.State()
}

func (b *QuestionBank) TopicCreation() state.Source[state.RequestState[*models.Topic]] {
	return b.topicCreate.State()
}

// Filtered is the loaded question list narrowed by the current query.
func (b *QuestionBank) Filtered() state.Source[[]models.Question] {
	return b.filtered
}

func (b *QuestionBank) SetQuery(query string) {
	b.query.Set(query)
}

func (b *QuestionBank) LoadAreas() *runner.Handle {
	return b.areas.Run(b.api.ListAreas)
}

// SelectArea loads the topics of areaID and the questions filed under it.
// The returned handle tracks the topics load only; follow Questions() for the
// question list.
func (b *QuestionBank) SelectArea(areaID int64) *runner.Handle {
	const funcName = "QuestionBank.SelectArea"

	logger.Debug("area selected",
		zap.String("function", funcName),
		zap.Int64("area_id", areaID),
	)

	b.LoadQuestions(models.QuestionFilter{AreaID: areaID})
	return b.LoadTopics(areaID)
}

func (b *QuestionBank) LoadTopics(areaID int64) *runner.Handle {
	return b.topics.Run(func(ctx context.Context) ([]models.Topic, error) {
		return b.api.ListTopics(ctx, areaID)
	})
}

func (b *QuestionBank) LoadQuestions(filter models.QuestionFilter) *runner.Handle {
	return b.questions.Run(func(ctx context.Context) ([]models.Question, error) {
		return b.api.ListQuestions(ctx, filter)
	})
}

// CreateTopic creates a topic and refreshes the topic list of its area
// before the returned handle completes.
func (b *QuestionBank) CreateTopic(req models.CreateTopicRequest) *runner.Handle {
	return b.topicCreate.Run(func(ctx context.Context) (*models.Topic, error) {
		topic, err := b.api.CreateTopic(ctx, req)
		if err != nil {
			return nil, err
		}

		b.LoadTopics(req.AreaID).Wait()
		return topic, nil
	})
}

func (b *QuestionBank) Close() {
	b.scope.Close()
}

func filterQuestions(s state.RequestState[[]models.Question], query string) []models.Question {
	if !s.IsSuccess() {
		return nil
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return s.Value
	}

	filtered := make([]models.Question, 0, len(s.Value))
	for _, q := range s.Value {
		if strings.Contains(strings.ToLower(q.Statement), query) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}
