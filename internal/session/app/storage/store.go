//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Store=Store"
package storage

import (
	"github.com/klwxsrx/simctl/internal/session/domain"
)

const (
	KeyIdentity   = "user"
	KeyCredential = "token"
)

// Store is the durable mirror of the current session. It performs no validation.
type Store interface {
	// Persist overwrites both entries.
	Persist(domain.Identity, domain.Credential) error
	// LoadIdentity returns nil when nothing is stored.
	LoadIdentity() (*domain.Identity, error)
	// LoadCredential returns an empty Credential when nothing is stored.
	LoadCredential() (domain.Credential, error)
	// Clear removes both entries, clearing an empty store succeeds.
	Clear() error
}
