package s3sign

import "time"

// URLSigner is the boundary consumed by higher-level storage adapters that need
// a "get object URL" call. *Signer satisfies it.
type URLSigner interface {
	// PublicURL returns the unsigned URL of an object.
	PublicURL(key string) string

	// PresignedURL returns a time-limited signed URL granting GET access to an object.
	PresignedURL(key string, opts ...PresignOption) (string, error)

	// URL dispatches to PublicURL or PresignedURL based on the signer's
	// configured default visibility and any per-call Public option.
	URL(key string, opts ...PresignOption) (string, error)
}

const (
	// DefaultExpiry is the presign lifetime used when ExpiresIn is not supplied.
	DefaultExpiry = 15 * time.Minute

	// MaxExpiry is the longest presign lifetime SigV4 allows, one week.
	MaxExpiry = 7 * 24 * time.Hour
)
