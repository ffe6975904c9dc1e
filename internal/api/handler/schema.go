package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. The actual rendering happens in the central error handler;
// this type documents the shape for the handler annotations.
type errorResponse struct {
	Error string `json:"error"`
}
