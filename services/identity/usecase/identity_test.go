package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/taxilake/internal/pkg/logger"
	"github.com/piresc/taxilake/internal/pkg/models"
	"github.com/piresc/taxilake/services/identity"
	"github.com/piresc/taxilake/services/identity/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ identity.IdentityGW = (*mocks.MockIdentityGW)(nil)

func TestWhoAmI_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockIdentityGW(ctrl)
	out := &bytes.Buffer{}
	uc := NewIdentityUC(mockGW, logger.NewNopLogger(), out)

	caller := &models.CallerIdentity{
		Account: "123456789012",
		Arn:     "arn:aws:iam::123456789012:user/villarreal",
		UserID:  "AIDAEXAMPLE",
	}
	mockGW.EXPECT().
		GetCallerIdentity(gomock.Any()).
		Return(caller, nil).
		Times(1)

	got, err := uc.WhoAmI(context.Background())

	require.NoError(t, err)
	assert.Equal(t, caller, got)
	assert.Equal(t, "AWS account: 123456789012\n"+
		"ARN: arn:aws:iam::123456789012:user/villarreal\n"+
		"Credentials are valid.\n", out.String())
}

func TestWhoAmI_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGW := mocks.NewMockIdentityGW(ctrl)
	out := &bytes.Buffer{}
	uc := NewIdentityUC(mockGW, logger.NewNopLogger(), out)
	cause := errors.New("no valid credential sources found")

	mockGW.EXPECT().
		GetCallerIdentity(gomock.Any()).
		Return(nil, cause).
		Times(1)

	got, err := uc.WhoAmI(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, out.String())
}
