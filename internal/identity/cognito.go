package identity

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cognitoidentity"

	"github.com/dmitrijs2005/petgate/internal/apperrors"
	"github.com/dmitrijs2005/petgate/internal/models"
)

// cognitoProviderName is the login key Cognito expects for its own tokens.
// This is a fixed Cognito value, not a deployment setting.
const cognitoProviderName = "cognito-identity.amazonaws.com"

// cognitoAPI is the subset of the Cognito Identity client used here.
type cognitoAPI interface {
	GetOpenIdTokenForDeveloperIdentity(ctx context.Context, params *cognitoidentity.GetOpenIdTokenForDeveloperIdentityInput, optFns ...func(*cognitoidentity.Options)) (*cognitoidentity.GetOpenIdTokenForDeveloperIdentityOutput, error)
	GetCredentialsForIdentity(ctx context.Context, params *cognitoidentity.GetCredentialsForIdentityInput, optFns ...func(*cognitoidentity.Options)) (*cognitoidentity.GetCredentialsForIdentityOutput, error)
}

// CognitoProvider implements Provider against a Cognito identity pool
// with developer-authenticated identities.
type CognitoProvider struct {
	client                cognitoAPI
	identityPoolID        string
	developerProviderName string
}

func NewCognitoProvider(client *cognitoidentity.Client, identityPoolID, developerProviderName string) *CognitoProvider {
	return &CognitoProvider{
		client:                client,
		identityPoolID:        identityPoolID,
		developerProviderName: developerProviderName,
	}
}

func (p *CognitoProvider) GetUserIdentity(ctx context.Context, user *models.User) (*models.UserIdentity, error) {
	if user == nil || strings.TrimSpace(user.Username) == "" {
		return nil, &apperrors.AuthorizationError{Reason: "invalid user"}
	}

	in := &cognitoidentity.GetOpenIdTokenForDeveloperIdentityInput{
		IdentityPoolId: aws.String(p.identityPoolID),
		Logins: map[string]string{
			p.developerProviderName: user.Username,
		},
	}
	if id := user.IdentityID(); strings.TrimSpace(id) != "" {
		in.IdentityId = aws.String(id)
	}

	out, err := p.client.GetOpenIdTokenForDeveloperIdentity(ctx, in)
	if err != nil {
		return nil, &apperrors.AuthorizationError{Reason: "GetOpenIdTokenForDeveloperIdentity call failed", Err: err}
	}
	if out == nil || out.IdentityId == nil || out.Token == nil {
		return nil, &apperrors.AuthorizationError{Reason: "empty GetOpenIdTokenForDeveloperIdentity response"}
	}

	return &models.UserIdentity{
		IdentityID:  aws.ToString(out.IdentityId),
		OpenIDToken: aws.ToString(out.Token),
	}, nil
}

func (p *CognitoProvider) GetUserCredentials(ctx context.Context, user *models.User) (*models.UserCredentials, error) {
	if user == nil || strings.TrimSpace(user.IdentityID()) == "" {
		return nil, &apperrors.AuthorizationError{Reason: "invalid user"}
	}

	out, err := p.client.GetCredentialsForIdentity(ctx, &cognitoidentity.GetCredentialsForIdentityInput{
		IdentityId: aws.String(user.Identity.IdentityID),
		Logins: map[string]string{
			cognitoProviderName: user.Identity.OpenIDToken,
		},
	})
	if err != nil {
		return nil, &apperrors.AuthorizationError{Reason: "GetCredentialsForIdentity call failed", Err: err}
	}
	if out == nil || out.Credentials == nil {
		return nil, &apperrors.AuthorizationError{Reason: "empty GetCredentialsForIdentity response"}
	}

	creds := &models.UserCredentials{
		AccessKey:    aws.ToString(out.Credentials.AccessKeyId),
		SecretKey:    aws.ToString(out.Credentials.SecretKey),
		SessionToken: aws.ToString(out.Credentials.SessionToken),
	}
	if out.Credentials.Expiration != nil {
		creds.Expiration = out.Credentials.Expiration.UnixMilli()
	}
	return creds, nil
}
