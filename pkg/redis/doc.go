// Package redis connects to redis with retries and exposes a readiness
// check. The workspace store uses the client to keep visitor state.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
package redis
