package usecases

// PasswordHasher hashes credentials for storage and verifies login attempts.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

// TokenIssuer mints signed access tokens for authenticated users.
type TokenIssuer interface {
	Generate(userID uint, username string) (string, error)
	AccessExpMinutes() int
}
