package contract

// IRandomGenerator produces URL-safe random strings, e.g. OAuth state tokens.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}
