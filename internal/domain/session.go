package domain

// Session is the credential pair plus user identity for the signed-in
// user. It is owned by the session store; other components hold a
// read/update capability, never a private copy that can go stale.
type Session struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	User         User
}

// Authenticated reports whether the session carries a usable access
// token. A session without one is equivalent to being logged out.
func (s Session) Authenticated() bool {
	return s.AccessToken != ""
}
