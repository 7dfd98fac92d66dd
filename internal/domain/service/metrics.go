package service

// DispatchMetrics counts delivery outcomes.
type DispatchMetrics interface {
	ObserveDelivery(method, status string)
	ObserveFallback(reason string)
	ObserveAlert(alertType, outcome string)
}
