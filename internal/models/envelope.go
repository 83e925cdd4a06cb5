package models

import "encoding/json"

// Envelope is the wrapper every admin API response uses.
// Data stays raw until the caller knows which record shape to decode.
type Envelope struct {
	Status  int             `json:"status"`
	Error   bool            `json:"error"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data" validate:"present"`
}

// LoginResponse carries the token at the top level rather than under data.
type LoginResponse struct {
	Status  int    `json:"status"`
	Error   bool   `json:"error"`
	Message string `json:"message"`
	Token   string `json:"token" validate:"required"`
}
