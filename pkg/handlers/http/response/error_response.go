package response

// ErrorResponse keeps TMDb's status_code sentinel so clients that already
// understand TMDb error documents recognise proxy errors too.
type ErrorResponse struct {
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
