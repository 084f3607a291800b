package api

import "time"

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
}

type DatasourceHealth struct {
	Status       string `json:"status"`
	Driver       string `json:"driver"`
	ResponseTime int64  `json:"responseTime"`
	Error        string `json:"error,omitempty"`
}

type DetailedHealth struct {
	Health
	Datasource DatasourceHealth `json:"datasource"`
}

// Problem is an RFC 7807 error body.
type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}
