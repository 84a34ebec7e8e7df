package entity

// User is an account in the marketplace. Token is the credential issued at
// registration; authorization always compares a presented bearer token against
// this stored value, never against the token's own claims.
type User struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Token   string `json:"token"`
	Balance int64  `json:"balance"`
}
