package domain

// User is the persisted user entity. ID is assigned by the store on insert
// and immutable afterwards; Username must be unique across all users.
type User struct {
	ID       int
	Username string
}

// UserRequest is the inbound payload for create and update operations.
type UserRequest struct {
	Username string `json:"username" binding:"required"`
}

// UserResponse is the outbound representation of a user.
type UserResponse struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}
