package s3sign

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type keyCacheSuite struct {
	suite.Suite
}

func (k *keyCacheSuite) TestGetPut() {
	cache := newSigningKeyCache()

	_, ok := cache.get("20130524")
	k.False(ok, "empty cache misses")

	key := deriveKey("secret", "20130524", "us-east-1")
	cache.put("20130524", key)

	got, ok := cache.get("20130524")
	k.True(ok, "stored date hits")
	k.Equal(key, got, "hit returns the stored key bytes")
}

func (k *keyCacheSuite) TestRePutDoesNotDuplicate() {
	cache := newSigningKeyCache()
	cache.put("20130524", []byte("a"))
	cache.put("20130524", []byte("b"))

	k.Len(cache.keys, 1)
	k.Len(cache.order, 1)
	got, _ := cache.get("20130524")
	k.Equal([]byte("b"), got, "re-put replaces the value")
}

func (k *keyCacheSuite) TestEvictionByInsertionOrder() {
	cache := newSigningKeyCache()
	for i := 0; i < signingKeyCacheCap; i++ {
		cache.put(fmt.Sprintf("2013052%d", i), []byte{byte(i)})
	}

	// a read does not move the oldest entry in the eviction queue
	_, ok := cache.get("20130520")
	k.True(ok)

	cache.put("20130529", []byte{9})

	_, ok = cache.get("20130520")
	k.False(ok, "oldest-inserted entry is evicted even though it was just read")
	k.Len(cache.keys, signingKeyCacheCap, "cache never exceeds capacity")

	for i := 1; i < signingKeyCacheCap; i++ {
		_, ok := cache.get(fmt.Sprintf("2013052%d", i))
		k.True(ok, "later insertions survive")
	}
	_, ok = cache.get("20130529")
	k.True(ok, "newest insertion survives")
}

func (k *keyCacheSuite) TestCapacityHoldsUnderChurn() {
	cache := newSigningKeyCache()
	for i := 0; i < 50; i++ {
		cache.put(fmt.Sprintf("201305%02d", i), []byte{byte(i)})
		k.LessOrEqual(len(cache.keys), signingKeyCacheCap)
		k.Equal(len(cache.keys), len(cache.order))
	}
}

func TestKeyCache(t *testing.T) {
	suite.Run(t, new(keyCacheSuite))
}
