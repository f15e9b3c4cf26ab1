// Package redis bootstraps a go-redis client for the engine.
//
// The engine uses Redis optionally, as a shared backend for the usage
// cache so multiple instances see the same cached counts:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil { ... }
//	gov, err := usage.NewGovernor(ctx, src, subs, counter,
//	    usage.WithCache(usage.NewRedisCache(client, "", 0)))
package redis
