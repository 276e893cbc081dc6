package memcache_fx

import (
	"go.uber.org/fx"
	"nistq/pkg/memcache"
)

var Module = fx.Provide(
	memcache.NewSessionLocks)
