package model

// Session is an authenticated identity paired with a bearer token. It
// exists only while authenticated and is owned exclusively by the auth
// store, which mirrors it 1:1 into persisted storage.
type Session struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// Valid reports whether the session carries the minimum required fields.
func (s Session) Valid() bool {
	return s.AccessToken != "" && s.User.Email != ""
}
