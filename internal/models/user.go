package models

// User is the profile reported by the provider's user-info endpoint.
// Created is epoch seconds; Karma and About may be absent from the payload,
// in which case their zero values stand in.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Karma    int64  `json:"karma"`
	Created  int64  `json:"created"`
	About    string `json:"about"`
}
