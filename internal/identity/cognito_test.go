package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

type fakeCognito struct {
	tokenOut *cognitoidentity.GetOpenIdTokenForDeveloperIdentityOutput
	tokenErr error
	tokenIn  *cognitoidentity.GetOpenIdTokenForDeveloperIdentityInput

	credsOut *cognitoidentity.GetCredentialsForIdentityOutput
	credsErr error
	credsIn  *cognitoidentity.GetCredentialsForIdentityInput
}

func (f *fakeCognito) GetOpenIdTokenForDeveloperIdentity(_ context.Context, in *cognitoidentity.GetOpenIdTokenForDeveloperIdentityInput, _ ...func(*cognitoidentity.Options)) (*cognitoidentity.GetOpenIdTokenForDeveloperIdentityOutput, error) {
	f.tokenIn = in
	return f.tokenOut, f.tokenErr
}

func (f *fakeCognito) GetCredentialsForIdentity(_ context.Context, in *cognitoidentity.GetCredentialsForIdentityInput, _ ...func(*cognitoidentity.Options)) (*cognitoidentity.GetCredentialsForIdentityOutput, error) {
	f.credsIn = in
	return f.credsOut, f.credsErr
}

func newProvider(client cognitoAPI) *CognitoProvider {
	return &CognitoProvider{
		client:                client,
		identityPoolID:        "us-east-1:pool",
		developerProviderName: "login.petgate",
	}
}

func TestGetUserIdentity_NewUser(t *testing.T) {
	client := &fakeCognito{tokenOut: &cognitoidentity.GetOpenIdTokenForDeveloperIdentityOutput{
		IdentityId: aws.String("id-1"),
		Token:      aws.String("tok-1"),
	}}
	p := newProvider(client)

	id, err := p.GetUserIdentity(context.Background(), &models.User{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "id-1", id.IdentityID)
	assert.Equal(t, "tok-1", id.OpenIDToken)

	require.NotNil(t, client.tokenIn)
	assert.Equal(t, "us-east-1:pool", *client.tokenIn.IdentityPoolId)
	assert.Equal(t, "alice", client.tokenIn.Logins["login.petgate"])
	assert.Nil(t, client.tokenIn.IdentityId)
}

func TestGetUserIdentity_KnownIdentityReused(t *testing.T) {
	client := &fakeCognito{tokenOut: &cognitoidentity.GetOpenIdTokenForDeveloperIdentityOutput{
		IdentityId: aws.String("id-1"),
		Token:      aws.String("tok-2"),
	}}
	p := newProvider(client)

	user := &models.User{Username: "alice", Identity: &models.UserIdentity{IdentityID: "id-1"}}
	_, err := p.GetUserIdentity(context.Background(), user)
	require.NoError(t, err)

	require.NotNil(t, client.tokenIn.IdentityId)
	assert.Equal(t, "id-1", *client.tokenIn.IdentityId)
}

func TestGetUserIdentity_InvalidUser(t *testing.T) {
	p := newProvider(&fakeCognito{})

	for _, user := range []*models.User{nil, {}, {Username: "   "}} {
		_, err := p.GetUserIdentity(context.Background(), user)
		require.Error(t, err)

		var ae *apperrors.AuthorizationError
		assert.ErrorAs(t, err, &ae)
	}
}

func TestGetUserIdentity_BrokerFailure(t *testing.T) {
	p := newProvider(&fakeCognito{tokenErr: errors.New("access denied")})

	_, err := p.GetUserIdentity(context.Background(), &models.User{Username: "alice"})
	require.Error(t, err)

	var ae *apperrors.AuthorizationError
	assert.ErrorAs(t, err, &ae)
}

func TestGetUserIdentity_EmptyResponse(t *testing.T) {
	p := newProvider(&fakeCognito{tokenOut: &cognitoidentity.GetOpenIdTokenForDeveloperIdentityOutput{}})

	_, err := p.GetUserIdentity(context.Background(), &models.User{Username: "alice"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty GetOpenIdTokenForDeveloperIdentity response")
}

func TestGetUserCredentials_Success(t *testing.T) {
	exp := time.Unix(1700000000, 0)
	client := &fakeCognito{credsOut: &cognitoidentity.GetCredentialsForIdentityOutput{
		Credentials: &types.Credentials{
			AccessKeyId:  aws.String("AK"),
			SecretKey:    aws.String("SK"),
			SessionToken: aws.String("ST"),
			Expiration:   &exp,
		},
	}}
	p := newProvider(client)

	user := &models.User{
		Username: "alice",
		Identity: &models.UserIdentity{IdentityID: "id-1", OpenIDToken: "tok-1"},
	}
	creds, err := p.GetUserCredentials(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "AK", creds.AccessKey)
	assert.Equal(t, "SK", creds.SecretKey)
	assert.Equal(t, "ST", creds.SessionToken)
	assert.Equal(t, exp.UnixMilli(), creds.Expiration)

	// the exchange uses the fixed Cognito login key with the fresh token
	assert.Equal(t, "tok-1", client.credsIn.Logins["cognito-identity.amazonaws.com"])
}

func TestGetUserCredentials_NoResolvedIdentity(t *testing.T) {
	p := newProvider(&fakeCognito{})

	for _, user := range []*models.User{nil, {Username: "alice"}} {
		_, err := p.GetUserCredentials(context.Background(), user)
		require.Error(t, err)

		var ae *apperrors.AuthorizationError
		assert.ErrorAs(t, err, &ae)
	}
}

func TestGetUserCredentials_EmptyResponse(t *testing.T) {
	p := newProvider(&fakeCognito{credsOut: &cognitoidentity.GetCredentialsForIdentityOutput{}})

	user := &models.User{
		Username: "alice",
		Identity: &models.UserIdentity{IdentityID: "id-1", OpenIDToken: "tok-1"},
	}
	_, err := p.GetUserCredentials(context.Background(), user)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty GetCredentialsForIdentity response")
}
