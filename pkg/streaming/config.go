package streaming

// DefaultChunkSize is the largest window a single partial response will cover.
const DefaultChunkSize int64 = 1024 * 1024

type Config struct {
	// ChunkSize caps the bytes served by one 206 response, whatever the client asked for.
	ChunkSize int64
	// RateLimit is a bytes per second cap applied while copying a single response, 0 disables it.
	RateLimit int
	// FS is used to reach files, defaults to the OS filesystem.
	FS FS
}
