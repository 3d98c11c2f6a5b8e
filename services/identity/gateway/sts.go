package gateway

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/identity"
)

// STSAPI is the subset of the STS client used by the gateway
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

var _ STSAPI = (*sts.Client)(nil)

type stsGW struct {
	client STSAPI
}

// NewSTSGW creates an identity gateway backed by STS
func NewSTSGW(client STSAPI) identity.IdentityGW {
	return &stsGW{client: client}
}

func (g *stsGW) GetCallerIdentity(ctx context.Context) (*models.CallerIdentity, error) {
	output, err := g.client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return nil, fmt.Errorf("STS GetCallerIdentity API call failed: %w", err)
	}
	return &models.CallerIdentity{
		Account: aws.ToString(output.Account),
		Arn:     aws.ToString(output.Arn),
		UserID:  aws.ToString(output.UserId),
	}, nil
}
