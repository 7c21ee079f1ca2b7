package contract

// IUUIDGenerator produces unique identifiers for new records.
type IUUIDGenerator interface {
	NewUUID() string
}
