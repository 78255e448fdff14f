package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/a1technologies/cooling-crm/internal/config"
	"github.com/a1technologies/cooling-crm/internal/events"
)

// NotificationService tells admins and technicians about ledger activity. Delivery is stubbed
// to the log.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventServiceRequestCreated, n.handleRequestCreated)
	n.dispatcher.Subscribe(events.EventServiceRequestAssigned, n.handleRequestAssigned)
	n.dispatcher.Subscribe(events.EventServiceRequestCompleted, n.handleRequestCompleted)
	n.dispatcher.Subscribe(events.EventContentPersisted, n.handleContentPersisted)
}

func (n *NotificationService) handleRequestCreated(ctx context.Context, event events.Event) error {
	n.logger.Info("ServiceRequestCreated", zap.String("request_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event, "admins")
	n.sendEmailNotificationStub(ctx, event, "technicians")
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleRequestAssigned(ctx context.Context, event events.Event) error {
	n.logger.Info("ServiceRequestAssigned", zap.String("request_id", event.SubjectID), zap.Any("payload", event.Payload))
	recipient := "technician"
	if payload, ok := event.Payload.(events.ServiceRequestAssignedPayload); ok {
		recipient = payload.TechnicianID
	}
	n.sendEmailNotificationStub(ctx, event, recipient)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleRequestCompleted(ctx context.Context, event events.Event) error {
	n.logger.Info("ServiceRequestCompleted", zap.String("request_id", event.SubjectID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleContentPersisted(_ context.Context, event events.Event) error {
	n.logger.Info("ContentPersisted", zap.String("actor_id", event.Actor.ID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(_ context.Context, event events.Event, recipient string) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", recipient),
		zap.String("request_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("request_id", event.SubjectID),
		zap.String("event_type", string(event.Type)))
}
