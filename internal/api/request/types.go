package request

// JoinRequest is the request body for registering a participant
type JoinRequest struct {
	Name string `json:"name" validate:"required"`
}

// PostMessageRequest is the request body for posting a message
type PostMessageRequest struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
	Type string `json:"type" validate:"required,oneof=message private_message"`
}

// EditMessageRequest is the request body for editing a message
type EditMessageRequest struct {
	To   string `json:"to" validate:"required"`
	Text string `json:"text" validate:"required"`
	Type string `json:"type" validate:"required,oneof=message private_message"`
}
