package usecasecontract

// IValidator validates user-supplied values before they reach the store.
type IValidator interface {
	ValidateEmail(email string) error
	ValidatePassword(password string) error
}
