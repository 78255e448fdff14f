package worker

import (
	"github.com/a1technologies/cooling-crm/internal/service"
)

// StartNotificationWorker registers notification handlers on the ledger and content events.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
