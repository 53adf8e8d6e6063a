package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// EncodeResponse is the payload returned by the encode endpoint.
type EncodeResponse struct {
	Encoded    string `json:"encoded"`
	InputBytes int    `json:"input_bytes"`
}

// FileRequest asks the server to run a streaming file operation.
type FileRequest struct {
	InputPath  string `json:"input_path"`
	OutputPath string `json:"output_path"`
}

// FileResponse reports a finished file operation.
type FileResponse struct {
	JobID          string `json:"job_id"`
	BytesProcessed int64  `json:"bytes_processed"`
}
