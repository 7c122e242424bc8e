package models

// User is an API account. The username doubles as the oracle identity the
// account acts under.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // never expose the hash
}

func (u User) Identity() Identity { return Identity(u.Username) }
