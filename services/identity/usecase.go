package identity

import (
	"context"

	"github.com/piresc/taxilake/internal/pkg/models"
)

// IdentityUC defines the credential check use case
type IdentityUC interface {
	WhoAmI(ctx context.Context) (*models.CallerIdentity, error)
}
