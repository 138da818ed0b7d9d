package firebase

import (
	"context"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"

	"philatelysamaaj/internal/usecase"
)

// FirebaseAuthClient combines the Admin SDK with the Identity Toolkit REST
// endpoints, which are the only way to sign in with a password server-side.
type FirebaseAuthClient struct {
	client   *auth.Client
	identity *identityToolkit
}

func NewFirebaseAuthClient(client *auth.Client, apiKey string) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
		identity: newIdentityToolkit(apiKey, &http.Client{
			Timeout: 10 * time.Second,
		}),
	}
}

var _ usecase.FirebaseAuthClient = (*FirebaseAuthClient)(nil)

func (f *FirebaseAuthClient) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password)
	if displayName != "" {
		params = params.DisplayName(displayName)
	}

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}
	return user.UID, nil
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (*usecase.VerifiedIdentity, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}
	return identityFromToken(result), nil
}

func (f *FirebaseAuthClient) SignInWithEmailPassword(ctx context.Context, email, password string) (*usecase.AuthTokens, error) {
	return f.identity.signInWithPassword(ctx, email, password)
}

func (f *FirebaseAuthClient) RefreshIDToken(ctx context.Context, refreshToken string) (*usecase.AuthTokens, error) {
	return f.identity.refresh(ctx, refreshToken)
}

// SetAdminClaim keeps the "admin" custom claim in step with the stored role.
func (f *FirebaseAuthClient) SetAdminClaim(ctx context.Context, uid string, admin bool) error {
	user, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return err
	}

	claims := make(map[string]interface{}, len(user.CustomClaims)+1)
	for k, v := range user.CustomClaims {
		claims[k] = v
	}
	if admin {
		claims["admin"] = true
	} else {
		delete(claims, "admin")
	}

	return f.client.SetCustomUserClaims(ctx, uid, claims)
}

func identityFromToken(token *auth.Token) *usecase.VerifiedIdentity {
	id := &usecase.VerifiedIdentity{
		UID:      token.UID,
		Provider: token.Firebase.SignInProvider,
	}
	if v, ok := token.Claims["email"].(string); ok {
		id.Email = v
	}
	if v, ok := token.Claims["name"].(string); ok {
		id.Name = v
	}
	if v, ok := token.Claims["picture"].(string); ok {
		id.Picture = v
	}
	return id
}
