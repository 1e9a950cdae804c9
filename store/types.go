package store

import "github.com/covenant-labs/covenant"

// Move references for all storage types into this package for shorter names
// everywhere.

type ReadOnlyKVStore = covenant.ReadOnlyKVStore
type KVStore = covenant.KVStore
type SetDeleter = covenant.SetDeleter
type Batch = covenant.Batch
type CacheableKVStore = covenant.CacheableKVStore
type KVCacheWrap = covenant.KVCacheWrap
