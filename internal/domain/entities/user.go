package entities

// User exists for the future back-office login; only the storage contract is
// wired in, no authentication flow uses it yet.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
