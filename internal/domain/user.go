package domain

import "time"

// User represents a registered account. Password holds the bcrypt digest,
// never the plaintext.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}
