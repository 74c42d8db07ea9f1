package dto

// MessageResponse acknowledges a mutation
type MessageResponse struct {
	Msg string `json:"msg" example:"User Updated"`
}

// StatusResponse is the body of the liveness endpoints
type StatusResponse struct {
	Message string `json:"message" example:"Backend Working"`
}
