package domain

// Identity is the request-scoped view of a decoded token. It carries the
// claims snapshot taken at issuance; role and admin are not re-read from the
// directory while the token is alive.
type Identity struct {
	Name  string
	ID    int64
	Admin bool
}
