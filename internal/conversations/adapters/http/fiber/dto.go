package fiber

// StoreMessageRequest represents a conversation message payload
// @Description Conversation message DTO
type StoreMessageRequest struct {
	MessageID string `json:"ig_message_id" example:"aWdfZAG1faXRlbToxOklH"`
	Username  string `json:"ig_username" example:"ana.garcia"`
	Direction string `json:"direction" example:"outbound"`
	Tag       string `json:"message_tag" example:"startMessage_A"`
	Timestamp int64  `json:"timestamp" example:"1736154000"`
}

type StoreMessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type BulkStoreMessagesRequest struct {
	Messages []StoreMessageRequest `json:"messages"`
}

type BulkStoreMessagesResponse struct {
	Created    int `json:"created"`
	Duplicates int `json:"duplicates"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_message"`
	Message string `json:"message" example:"invalid message"`
}
