// Package cache provides a generic, thread-safe LRU cache with optional
// per-entry expiry. The dashboard keeps visitor workspaces in it when no
// redis is configured.
//
//	c := cache.New[string, Workspace](1000, cache.WithTTL[string, Workspace](24*time.Hour))
//	c.Put(id, ws)
//	ws, ok := c.Get(id)
package cache
