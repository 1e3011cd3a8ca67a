package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// ComponentHealthStatus represents the health check structure of a application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse is the liveness marker. OK is always true while the process serves requests;
// Status reflects the store reachability.
type HealthResponse struct {
	OK       bool                  `json:"ok"`
	Status   HealthStatus          `json:"status"`
	Database ComponentHealthStatus `json:"database"`
}
