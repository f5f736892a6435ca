package models

// Address is one entry of a user's address book. At most one address in the
// book carries IsDefault; setting a new default clears the flag on all others.
type Address struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required,max=100"`
	Street     string `json:"street" validate:"required,max=200"`
	City       string `json:"city" validate:"required,max=100"`
	State      string `json:"state" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Country    string `json:"country" validate:"required,max=100"`
	IsDefault  bool   `json:"isDefault"`
}

// User is the active account: identity plus address book, chronological order
// history and a wishlist of product ids with set semantics. There is never a
// password here; see Credential.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Avatar    string    `json:"avatar,omitempty"`
	Addresses []Address `json:"addresses"`
	Orders    []Order   `json:"orders"`
	Wishlist  []string  `json:"wishlist"`
}

// Credential is a directory record: the user plus its password hash. The hash
// is stripped before the user becomes public session state.
type Credential struct {
	User
	PasswordHash string `json:"-"`
}
