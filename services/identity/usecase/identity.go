package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/identity"
)

// IdentityUC implements the identity use case interface
type IdentityUC struct {
	identityGW identity.IdentityGW
	logger     *logger.ZapLogger
	out        io.Writer
}

// NewIdentityUC creates a new identity use case
func NewIdentityUC(identityGW identity.IdentityGW, l *logger.ZapLogger, out io.Writer) *IdentityUC {
	return &IdentityUC{
		identityGW: identityGW,
		logger:     l,
		out:        out,
	}
}

var _ identity.IdentityUC = (*IdentityUC)(nil)

// WhoAmI prints the account and ARN behind the active credentials
func (uc *IdentityUC) WhoAmI(ctx context.Context) (*models.CallerIdentity, error) {
	caller, err := uc.identityGW.GetCallerIdentity(ctx)
	if err != nil {
		uc.logger.Error("Failed to resolve caller identity", logger.Err(err))
		return nil, err
	}

	fmt.Fprintf(uc.out, "AWS account: %s\n", caller.Account)
	fmt.Fprintf(uc.out, "ARN: %s\n", caller.Arn)
	fmt.Fprintln(uc.out, "Credentials are valid.")

	uc.logger.Info("Caller identity resolved",
		logger.String("account", caller.Account),
		logger.String("arn", caller.Arn))
	return caller, nil
}
