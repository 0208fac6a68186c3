package models

import "github.com/google/uuid"

// Response is the uniform API envelope: {success, data?, message?}.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

func SuccessResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func ErrorResponse(message string) Response {
	return Response{Success: false, Message: message}
}

// Owned is implemented by every user-owned resource.
type Owned interface {
	GetID() uuid.UUID
	GetUserID() uuid.UUID
}
