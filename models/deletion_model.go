package models

import "github.com/Kotlang/accountGo/auth"

type DeletionRequest struct {
	// Caller is nil when the transport carried no credential.
	Caller *auth.Caller
	UserId string
}

type DeletionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
