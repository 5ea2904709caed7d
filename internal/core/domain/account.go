package domain

// Account models a registered user. The email is the account's unique
// identity and is also what access tokens carry as their subject.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
