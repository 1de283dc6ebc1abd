package model

import "net/http"

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

const (
	ResourceIngestion  = "ingestion"
	ResourceQC         = "qc"
	ResourcePipelines  = "pipelines"
	ResourceExecution  = "execution"
	ResourceResults    = "results"
	ResourceMonitoring = "monitoring"
)

// ActionForMethod maps safe methods to read and everything else to write.
func ActionForMethod(method string) Action {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ActionRead
	default:
		return ActionWrite
	}
}
