package identity

import (
	"context"

	"github.com/piresc/taxilake/internal/pkg/models"
)

// IdentityGW resolves the principal behind the active credentials
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/taxilake/services/identity IdentityGW
type IdentityGW interface {
	GetCallerIdentity(ctx context.Context) (*models.CallerIdentity, error)
}
