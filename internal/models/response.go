package models

// ErrorResponse is the uniform error payload for every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ActionResponse acknowledges a lifecycle action.
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// InterviewContextResponse is what a candidate sees when resolving a token.
type InterviewContextResponse struct {
	Interview *Interview `json:"interview"`
	Quiz      *Quiz      `json:"quiz"`
	Candidate *Candidate `json:"candidate"`
}

// GenerationResponse reports the outcome of an AI question generation run.
type GenerationResponse struct {
	Questions []Question         `json:"questions"`
	RequestID string             `json:"request_id"`
	Metadata  GenerationMetadata `json:"metadata"`
}

// additional information about a generation run
type GenerationMetadata struct {
	ProcessingTime int    `json:"processing_time_ms"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
}
