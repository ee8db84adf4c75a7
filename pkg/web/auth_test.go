package web

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
	"github.com/kodingmuda/media-stream-server/pkg/mock_backend"
	"github.com/kodingmuda/media-stream-server/pkg/streaming"
	"github.com/lestrrat-go/jwx/jwk"
)

const testSecret = "not-a-real-secret"

func hmacToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "lecturer-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func putLesson(router http.Handler, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("PUT", "/lessons/1", strings.NewReader(`{"title": "a", "contentType": "text"}`))
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRejections(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "lecturer-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	expiredToken, _ := expired.SignedString([]byte(testSecret))

	tables := []struct {
		name       string
		authHeader string
		status     int
	}{
		{"missing header", "", 400},
		{"not bearer", "Basic dXNlcjpwYXNz", 400},
		{"garbage token", "Bearer abc.def.ghi", 401},
		{"wrong secret", "Bearer " + hmacToken(t, "some-other-secret"), 401},
		{"expired", "Bearer " + expiredToken, 401},
		{"rsa without jwks", "Bearer " + rsaToken(t, generateKey(t), "kid-1"), 401},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			ctrl, _, _, _, router := getWebStuff(t)
			defer ctrl.Finish()

			w := putLesson(router, table.authHeader)
			if diff := cmp.Diff(table.status, w.Code); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestAuthNotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := GetRouter("", Handlers{
		Storage:  mock_backend.NewMockStorageBackend(ctrl),
		Database: mock_backend.NewMockDatabaseBackend(ctrl),
		Streamer: streaming.New(streaming.Config{}),
	}, false)

	w := putLesson(router, "Bearer "+hmacToken(t, testSecret))
	if diff := cmp.Diff(401, w.Code); diff != "" {
		t.Fatal(diff)
	}
}

func generateKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatal(err)
	}
	return key
}

func rsaToken(t *testing.T, key *rsa.PrivateKey, keyID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"sub": "lecturer-2",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token.Header["kid"] = keyID
	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatal(err)
	}
	return signed
}

func jwksServer(t *testing.T, key *rsa.PrivateKey, keyID string) *httptest.Server {
	t.Helper()
	pub, err := jwk.New(&key.PublicKey)
	if err != nil {
		t.Fatal(err)
	}
	if err = pub.Set(jwk.KeyIDKey, keyID); err != nil {
		t.Fatal(err)
	}
	if err = pub.Set(jwk.AlgorithmKey, "RS256"); err != nil {
		t.Fatal(err)
	}
	set := jwk.NewSet()
	set.Add(pub)

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatal(err)
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(data)
	}))
}

func TestAuthJWKS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	key := generateKey(t)
	server := jwksServer(t, key, "kid-1")
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	database := mock_backend.NewMockDatabaseBackend(ctrl)
	database.EXPECT().PutLesson(gomock.Any()).Times(1).Return(nil)

	router := GetRouter("", Handlers{
		Storage:  mock_backend.NewMockStorageBackend(ctrl),
		Database: database,
		Streamer: streaming.New(streaming.Config{}),
		JWKS:     NewJWKS(ctx, server.URL),
	}, false)

	w := putLesson(router, "Bearer "+rsaToken(t, key, "kid-1"))
	if diff := cmp.Diff(200, w.Code); diff != "" {
		t.Fatal(w.Body.String(), diff)
	}

	// Right key id, wrong signer
	w = putLesson(router, "Bearer "+rsaToken(t, generateKey(t), "kid-1"))
	if diff := cmp.Diff(401, w.Code); diff != "" {
		t.Fatal(diff)
	}

	w = putLesson(router, "Bearer "+rsaToken(t, key, "kid-unknown"))
	if diff := cmp.Diff(401, w.Code); diff != "" {
		t.Fatal(diff)
	}

	// Shared secret tokens are refused when only a jwks is configured
	w = putLesson(router, "Bearer "+hmacToken(t, testSecret))
	if diff := cmp.Diff(401, w.Code); diff != "" {
		t.Fatal(diff)
	}
}
