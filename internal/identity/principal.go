package identity

// Principal is the caller as asserted by a verified token, valid for the
// lifetime of one request. It is never persisted as-is.
type Principal struct {
	SubjectID         string
	Email             string
	GivenName         string
	FamilyName        string
	PreferredUsername string
	AssertedRoles     []string
	Claims            Claims
}

// NewPrincipal builds a Principal from verified token claims. It fails only
// when the required email claim is missing; every other claim is optional.
func NewPrincipal(claims Claims, assertedRoles []string) (Principal, error) {
	email, err := claims.Email()
	if err != nil {
		return Principal{}, err
	}
	p := Principal{
		SubjectID:     claims.Subject(),
		Email:         email,
		AssertedRoles: assertedRoles,
		Claims:        claims,
	}
	p.GivenName, _ = claims.GivenName()
	p.FamilyName, _ = claims.FamilyName()
	p.PreferredUsername, _ = claims.PreferredUsername()
	return p, nil
}
