package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DocStoreCollectionKey returns the Redis hash holding every document of a collection.
func (r *CacheKeyStruct) DocStoreCollectionKey(collection string) string {
	return fmt.Sprintf("docstore:%s", collection)
}

// BookingFeedChannel returns the Redis PubSub channel carrying newly persisted demo bookings.
func (r *CacheKeyStruct) BookingFeedChannel() string {
	return "demo_bookings:feed"
}

var CacheKey = NewCacheKeyStruct()
