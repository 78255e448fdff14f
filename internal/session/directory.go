package session

import "github.com/a1technologies/cooling-crm/internal/domain"

// Directory resolves a login email to an identity.
type Directory interface {
	Lookup(email string) (domain.Identity, bool)
	Identities() []domain.Identity
}

// StaticDirectory is the fixed demo account set.
type StaticDirectory struct {
	ordered []domain.Identity
	byEmail map[string]domain.Identity
}

// NewStaticDirectory indexes identities by exact email.
func NewStaticDirectory(identities []domain.Identity) *StaticDirectory {
	d := &StaticDirectory{
		ordered: append([]domain.Identity(nil), identities...),
		byEmail: make(map[string]domain.Identity, len(identities)),
	}
	for _, id := range identities {
		d.byEmail[id.Email] = id
	}
	return d
}

// Lookup is exact and case-sensitive.
func (d *StaticDirectory) Lookup(email string) (domain.Identity, bool) {
	id, ok := d.byEmail[email]
	return id, ok
}

// Identities lists the demo accounts in seed order.
func (d *StaticDirectory) Identities() []domain.Identity {
	return append([]domain.Identity(nil), d.ordered...)
}
