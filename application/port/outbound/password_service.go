package outbound

type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword reports false, nil on a mismatch.
	VerifyPassword(password, hash string) (bool, error)
}
