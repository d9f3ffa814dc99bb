package models

// Roles a transcript message can carry.
const (
	RoleMe   = "me"   // the person replies are written for
	RoleThem = "them" // the other party, usually a recruiter
)

// Message is a single turn of the conversation, in chronological order.
type Message struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// ReplyRequest is the payload sent to the reply endpoint.
type ReplyRequest struct {
	Messages []Message `json:"messages"`
}

// ReplyResponse carries the generated reply.
type ReplyResponse struct {
	Text string `json:"text"`
}
