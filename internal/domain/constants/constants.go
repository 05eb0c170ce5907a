// Package constants contains string constants shared between configuration and infrastructure.
package constants

const (
	// EnvDevelop is the env value used for local development.
	EnvDevelop = "develop"
	// EnvProduction is the env value used for production deployments.
	EnvProduction = "production"
)

// Job publisher providers.
const (
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Job names understood by the worker.
const (
	JobNotificationPush      = "notification.push"
	JobDispatchAssignPending = "dispatch.assign_pending"
	JobDispatchCreateTask    = "dispatch.create_task"
	JobMediaRemoveBackground = "media.remove_background"
	JobMediaEnhanceImage     = "media.enhance_image"
)

// IPN invoice resolution modes.
const (
	IPNInvoicePublicID   = "public_id"
	IPNInvoiceInternalID = "internal_id"
)
