package interfaces

import (
	"context"

	"coletaverde/internal/domain/entities"
)

//go:generate mockgen -source=address_lookup_interface.go -destination=mocks/mock_address_lookup.go -package=mock_interfaces

// IAddressLookup resolves a CEP to postal fields. found is false for unknown CEPs.
type IAddressLookup interface {
	Lookup(ctx context.Context, cep string) (addr entities.Address, found bool, err error)
}
