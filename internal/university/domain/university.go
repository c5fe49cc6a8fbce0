package domain

// University is keyed by the UID the auth service assigns at registration
// time; this service never generates its own identifiers.
type University struct {
	UID       string `db:"uid"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Address   string `db:"address"`
	Phone     string `db:"phone"`
	PublicKey string `db:"public_key"`
	Verified  bool   `db:"verified"`
	CreatedAt int64  `db:"created_at"`
	UpdatedAt int64  `db:"updated_at"`
}
