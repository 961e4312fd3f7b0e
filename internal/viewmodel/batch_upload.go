package viewmodel

import (
	"context"

	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/notify"
	"github.com/supchaser/quiz_client/internal/poller"
	"github.com/supchaser/quiz_client/internal/runner"
	"github.com/supchaser/quiz_client/internal/state"
	"github.com/supchaser/quiz_client/internal/upload"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"github.com/supchaser/quiz_client/internal/utils/validate"
	"go.uber.org/zap"
)

// BatchUpload backs the batch question upload screen.
type BatchUpload struct {
	scope  *runner.Scope
	api    app.BatchAPI
	poller *poller.Poller
	upload *runner.Runner[models.BatchResult]

	stopWatch func()
}

// NewBatchUpload wires the upload slot. A nil notifier disables settle
// notifications.
func NewBatchUpload(ctx context.Context, api app.BatchAPI, p *poller.Poller, notifier app.Notifier) *BatchUpload {
	scope := runner.NewScope(ctx)
	u := &BatchUpload{
		scope:     scope,
		api:       api,
		poller:    p,
		upload:    runner.New(scope, "batch_upload", state.NewRequestStore[models.BatchResult]()),
		stopWatch: func() {},
	}

	if notifier != nil {
		u.stopWatch = notify.Watch(ctx, u.upload.State(), notifier, notify.BatchUploadMessages())
	}

	return u
}

func (u *BatchUpload) State() state.Source[state.RequestState[models.BatchResult]] {
	return u.upload.State()
}

// Submit validates and uploads items. A 201 settles immediately; a 202 moves
// the slot to Accepted and settles once the poller does.
func (u *BatchUpload) Submit(items []models.UploadBatchItem) *runner.Handle {
	const funcName = "BatchUpload.Submit"

	return u.upload.RunTracked(func(ctx context.Context, accepted runner.Progress) (models.BatchResult, error) {
		if err := validate.ValidateBatch(items); err != nil {
			return models.BatchResult{}, err
		}

		body, err := upload.Build(items)
		if err != nil {
			return models.BatchResult{}, err
		}

		logger.Info("uploading question batch",
			zap.String("function", funcName),
			zap.Int("questions", len(items)),
			zap.Int("parts", len(body.Parts)),
		)

		result, err := u.api.CreateQuestionBatch(ctx, body)
		if err != nil {
			return models.BatchResult{}, err
		}
		if !result.Accepted {
			return *result, nil
		}

		accepted(result.Operation.ID)

		outcome, err := u.poller.Await(ctx, result.Operation)
		if err != nil {
			return models.BatchResult{}, err
		}
		return outcome.Result(), nil
	})
}

func (u *BatchUpload) Close() {
	u.stopWatch()
	u.scope.Close()
}
