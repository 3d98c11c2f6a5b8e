package gateway

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSTS struct {
	output *sts.GetCallerIdentityOutput
	err    error
	calls  int
}

func (f *fakeSTS) GetCallerIdentity(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	f.calls++
	return f.output, f.err
}

func TestGetCallerIdentity(t *testing.T) {
	fake := &fakeSTS{output: &sts.GetCallerIdentityOutput{
		Account: aws.String("123456789012"),
		Arn:     aws.String("arn:aws:iam::123456789012:user/villarreal"),
		UserId:  aws.String("AIDAEXAMPLE"),
	}}
	gw := NewSTSGW(fake)

	got, err := gw.GetCallerIdentity(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &models.CallerIdentity{
		Account: "123456789012",
		Arn:     "arn:aws:iam::123456789012:user/villarreal",
		UserID:  "AIDAEXAMPLE",
	}, got)
	assert.Equal(t, 1, fake.calls)
}

func TestGetCallerIdentity_Error(t *testing.T) {
	cause := &smithy.GenericAPIError{Code: "ExpiredToken", Message: "The security token included in the request is expired"}
	gw := NewSTSGW(&fakeSTS{err: cause})

	got, err := gw.GetCallerIdentity(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "GetCallerIdentity")
}
