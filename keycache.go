package s3sign

// signingKeyCacheCap fixes how many derived keys a signer retains, one per
// calendar date.
const signingKeyCacheCap = 5

// signingKeyCache maps an 8-digit datestamp to its derived 32-byte signing key.
// Eviction is by original insertion order, not recency: a date that is re-read
// but never re-inserted keeps its original place in the eviction queue.
//
// The cache is not thread-safe. A Signer that enables it must be confined to a
// single goroutine or externally serialized; see Signer.
type signingKeyCache struct {
	keys  map[string][]byte
	order []string
}

func newSigningKeyCache() *signingKeyCache {
	return &signingKeyCache{
		keys: make(map[string][]byte, signingKeyCacheCap),
	}
}

// get returns the cached key for a datestamp, if present.
func (c *signingKeyCache) get(datestamp string) ([]byte, bool) {
	key, ok := c.keys[datestamp]
	return key, ok
}

// put stores a derived key, then evicts oldest-inserted entries until the cache
// is back at capacity.
func (c *signingKeyCache) put(datestamp string, key []byte) {
	if _, ok := c.keys[datestamp]; !ok {
		c.order = append(c.order, datestamp)
	}
	c.keys[datestamp] = key

	for len(c.keys) > signingKeyCacheCap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.keys, oldest)
	}
}
