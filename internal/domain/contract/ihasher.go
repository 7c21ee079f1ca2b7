package contract

// IHasher hashes and verifies passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	// ComparePasswordHash returns a non-nil error when the password does not
	// match the stored hash.
	ComparePasswordHash(password, hashedPassword string) error
}
