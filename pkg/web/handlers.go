package web

import (
	"github.com/kodingmuda/media-stream-server/pkg/database"
	"github.com/kodingmuda/media-stream-server/pkg/storage"
	"github.com/kodingmuda/media-stream-server/pkg/streaming"
)

type Handlers struct {
	Storage  storage.Backend
	Database database.Backend
	Streamer *streaming.Server

	// JWTSecret verifies HS256 tokens, JWKS verifies RS256/ES256 tokens by kid
	JWTSecret []byte
	JWKS      *JWKS

	Debug bool
}
