package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/olimpo/referrals/internal/config"
	"github.com/olimpo/referrals/internal/events"
)

type channel string

const (
	channelEmail   channel = "email"
	channelWebhook channel = "webhook"
)

// Which stub channels each simulated mutation notifies.
var notificationRoutes = map[events.EventType][]channel{
	events.EventProspectRegistered:  {channelEmail, channelWebhook},
	events.EventInviteLinkGenerated: {channelWebhook},
	events.EventAgentSaved:          {channelEmail},
}

// NotificationService turns simulated mutations into logged email and
// webhook notifications. Nothing leaves the process.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger.Named("notifications"),
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to every routed event type.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for eventType := range notificationRoutes {
		n.dispatcher.Subscribe(eventType, n.handle)
	}
}

func (n *NotificationService) handle(ctx context.Context, event events.Event) error {
	n.logger.Info(string(event.Type),
		zap.String("event_id", event.ID),
		zap.String("agent_id", event.AgentID),
		zap.Any("payload", event.Payload))
	for _, ch := range notificationRoutes[event.Type] {
		n.deliver(ctx, ch, event)
	}
	return nil
}

// deliver logs the notification a real sender would emit. A channel with
// no configured endpoint is skipped.
func (n *NotificationService) deliver(_ context.Context, ch channel, event events.Event) {
	var target string
	switch ch {
	case channelEmail:
		target = n.cfg.EmailFrom
	case channelWebhook:
		target = n.cfg.WebhookURL
	}
	if strings.TrimSpace(target) == "" {
		return
	}
	n.logger.Debug("notification stub",
		zap.String("channel", string(ch)),
		zap.String("target", target),
		zap.String("event_type", string(event.Type)),
		zap.String("agent_id", event.AgentID))
}
