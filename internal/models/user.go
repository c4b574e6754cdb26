package models

// UserIdentity is the broker-assigned federated identity for a user.
// IdentityID is stable; the OpenID token is short-lived, single-use and is
// never persisted.
type UserIdentity struct {
	IdentityID  string `json:"identityId"`
	OpenIDToken string `json:"token"`
}

// UserCredentials is the temporary credential bundle returned to the
// caller after a successful login or registration. It is never stored.
type UserCredentials struct {
	AccessKey    string `json:"accessKey"`
	SecretKey    string `json:"secretKey"`
	SessionToken string `json:"sessionToken"`
	// Expiration is a Unix timestamp in milliseconds.
	Expiration int64 `json:"expiration"`
}

// User is a registered account. Username is the immutable lookup key;
// Salt and PasswordHash are always set together. Identity is nil only
// while the record is being constructed during registration.
type User struct {
	Username     string
	PasswordHash []byte
	Salt         []byte
	Identity     *UserIdentity
}

// IdentityID returns the stored federated identity id, or "" if the user
// has not been federated yet.
func (u *User) IdentityID() string {
	if u == nil || u.Identity == nil {
		return ""
	}
	return u.Identity.IdentityID
}
