// Package dto defines the HTTP request types for the newsletter feature.
package dto

// SubscribeReq is the request body for POST /newsletter/subscribe.
type SubscribeReq struct {
	Email string `json:"email" binding:"required,email"`
}
