package user

import "time"

// User is a persisted identity record. Password and Pin hold bcrypt hashes
// and are never serialized into responses.
type User struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Password  string    `db:"password" json:"-"`
	Pin       string    `db:"pin" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Public is the subset of User safe to return to clients.
type Public struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the non-sensitive view of the user.
func (u *User) Public() Public {
	return Public{ID: u.ID, Name: u.Name, Email: u.Email}
}
