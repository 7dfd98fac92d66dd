// Package constants holds names shared between configuration and wiring.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push providers
const (
	PushProviderExpo = "expo"
	PushProviderFCM  = "fcm"
	PushProviderMock = "mock"
)

// SMS providers
const (
	SMSProviderHTTP = "http"
	SMSProviderMock = "mock"
)

// Push payload types understood by the mobile client.
const (
	PushTypeSOSAlert     = "sos_alert"
	PushTypeContactAdded = "contact_added"
	PushTypeTimerPrompt  = "timer_prompt"
)
