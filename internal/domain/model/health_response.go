package model

type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
	// StatusUnknown marks a component that is not configured.
	StatusUnknown HealthStatus = "UNKNOWN"
)

type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
	Cache    ComponentHealthStatus `json:"cache"`
}

// NewHealthResponse derives the overall status: DOWN when the database is not UP
// or the cache is DOWN. An UNKNOWN cache leaves the application UP.
func NewHealthResponse(database, cache ComponentHealthStatus) HealthResponse {
	status := StatusUp
	if database.Status != StatusUp || cache.Status == StatusDown {
		status = StatusDown
	}
	return HealthResponse{Status: status, Database: database, Cache: cache}
}
