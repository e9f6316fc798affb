// Package entity defines the response shapes shared by the web layer.
package entity

// ApiError is the structured body returned for every failed request.
type ApiError struct {
	Code    int    `json:"code"`    // HTTP status code
	Status  string `json:"status"`  // HTTP status text
	Message string `json:"message"` // Human-readable detail
}

// Msg is a plain confirmation body, e.g. for deletes.
type Msg struct {
	Message string `json:"message"`
}

// UserProfile is the public view of a user account.
type UserProfile struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserId      int    `json:"user_id"`
	Username    string `json:"username"`
}
