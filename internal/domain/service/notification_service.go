package service

import "context"

// NotificationService delivers one push message to many device tokens. Tokens the provider reports
// as unregistered come back in invalidTokens so the caller can deactivate them; err is reserved for
// failures of the whole batch.
type NotificationService interface {
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
