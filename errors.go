package s3sign

// ConfigError is a construction-time error: the Signer configuration is
// conflicting or incomplete. It is never retried.
type ConfigError string

// Error returns a string representation of the error
func (e ConfigError) Error() string { return string(e) }

// InvalidArgumentError is a per-call error: a presign argument is outside its
// allowed range. It is never retried.
type InvalidArgumentError string

// Error returns a string representation of the error
func (e InvalidArgumentError) Error() string { return string(e) }

const (
	// ErrBucketRequired - bucket name must be non-empty
	ErrBucketRequired = ConfigError("bucket name is required")

	// ErrRegionRequired - region code must be non-empty
	ErrRegionRequired = ConfigError("region is required")

	// ErrCredentialsRequired - both access key id and secret access key must be non-empty
	ErrCredentialsRequired = ConfigError("access key id and secret access key are required")

	// ErrHostEndpointConflict - host and endpoint overrides are mutually exclusive
	ErrHostEndpointConflict = ConfigError("host and endpoint may not both be set")

	// ErrBadEndpoint - the endpoint override could not be parsed as a URL
	ErrBadEndpoint = ConfigError("endpoint is not a valid URL")

	// ErrExpiryOutOfRange - presign expiry must be in (0, 604800] seconds
	ErrExpiryOutOfRange = InvalidArgumentError("expiry must be greater than 0 and at most 604800 seconds")
)
