package web

import (
	"context"
	"errors"
	"time"

	"github.com/lestrrat-go/jwx/jwk"
)

const jwksMinRefresh = 15 * time.Minute

// JWKS fetches signing keys from a JSON Web Key Set URL and keeps them
// refreshed in the background.
type JWKS struct {
	url         string
	autoRefresh *jwk.AutoRefresh
}

func NewJWKS(ctx context.Context, url string) *JWKS {
	autoRefresh := jwk.NewAutoRefresh(ctx)
	autoRefresh.Configure(url, jwk.WithMinRefreshInterval(jwksMinRefresh))

	return &JWKS{url: url, autoRefresh: autoRefresh}
}

func (j *JWKS) LookupKey(ctx context.Context, keyID string) (interface{}, error) {
	set, err := j.autoRefresh.Fetch(ctx, j.url)
	if err != nil {
		return nil, err
	}

	key, found := set.LookupKeyID(keyID)
	if !found {
		return nil, errors.New("signing key not found")
	}

	var keyData interface{}
	err = key.Raw(&keyData)
	return keyData, err
}
