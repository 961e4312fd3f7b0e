package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"time"

	"github.com/mailersend/mailersend-go"
	"github.com/supchaser/quiz_client/internal/app"
	"github.com/supchaser/quiz_client/internal/app/models"
	"github.com/supchaser/quiz_client/internal/utils/logger"
	"go.uber.org/zap"
)

const sendTimeout = 5 * time.Second

var (
	_ app.Notifier = (*LogNotifier)(nil)
	_ app.Notifier = (*MailerSendNotifier)(nil)
	_ app.Notifier = Fanout(nil)
)

// LogNotifier writes notifications to the application log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, msg models.Notification) error {
	logger.Info("notification",
		zap.String("channel", msg.Channel),
		zap.String("title", msg.Title),
		zap.String("body", msg.Body),
	)
	return nil
}

type MailConfig struct {
	APIKey    string
	FromName  string
	FromEmail string
	To        []string
}

// MailerSendNotifier delivers notifications by email through MailerSend.
type MailerSendNotifier struct {
	ms         *mailersend.Mailersend
	from       mailersend.From
	recipients []mailersend.Recipient
}

func NewMailerSendNotifier(cfg MailConfig) *MailerSendNotifier {
	recipients := make([]mailersend.Recipient, 0, len(cfg.To))
	for _, to := range cfg.To {
		recipients = append(recipients, mailersend.Recipient{Email: to})
	}

	return &MailerSendNotifier{
		ms: mailersend.NewMailersend(cfg.APIKey),
		from: mailersend.From{
			Name:  cfg.FromName,
			Email: cfg.FromEmail,
		},
		recipients: recipients,
	}
}

// SetHTTPClient replaces the transport used to reach MailerSend.
func (n *MailerSendNotifier) SetHTTPClient(c *http.Client) {
	n.ms.SetClient(c)
}

func (n *MailerSendNotifier) Notify(ctx context.Context, msg models.Notification) error {
	const funcName = "MailerSendNotifier.Notify"

	if len(n.recipients) == 0 {
		return errors.New("mailersend notifier has no recipients")
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	message := n.ms.Email.NewMessage()
	message.SetFrom(n.from)
	message.SetRecipients(n.recipients)
	message.SetSubject(msg.Title)
	message.SetHTML(fmt.Sprintf("<p>%s</p>", html.EscapeString(msg.Body)))
	message.SetText(msg.Body)

	if _, err := n.ms.Email.Send(ctx, message); err != nil {
		logger.Error("failed to send notification email",
			zap.String("function", funcName),
			zap.String("channel", msg.Channel),
			zap.Error(err),
		)
		return fmt.Errorf("send notification email: %w", err)
	}

	logger.Debug("notification email sent",
		zap.String("function", funcName),
		zap.String("channel", msg.Channel),
		zap.Int("recipients", len(n.recipients)),
	)

	return nil
}

// Fanout posts to every notifier and joins their errors.
type Fanout []app.Notifier

func (f Fanout) Notify(ctx context.Context, msg models.Notification) error {
	var joined error
	for _, n := range f {
		if err := n.Notify(ctx, msg); err != nil {
			joined = errors.Join(joined, err)
		}
	}
	return joined
}
