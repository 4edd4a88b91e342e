// Package revalidate signals cached read paths after successful mutations.
// It is best effort: a Redis hiccup is logged and never fails the mutation
// that triggered it.
package revalidate

import (
	"context"
	"time"

	pkgredis "github.com/onetree-africa/core/internal/pkg/redis"
	"go.uber.org/zap"
)

// Surface names a downstream view that renders repository data.
type Surface string

const (
	SurfaceHome    Surface = "home"
	SurfaceGallery Surface = "gallery"
	SurfaceAdmin   Surface = "admin-dashboard"
)

const (
	// Channel carries revalidation events; a rendering frontend subscribes
	// here to refresh its pages.
	Channel = "onetree:revalidate"

	keyPrefix = "onetree:cache:"

	// DefaultTTL bounds staleness if an invalidation is lost.
	DefaultTTL = 5 * time.Minute
)

// surfaceKeys maps a surface onto the cache keys of the collections it shows.
var surfaceKeys = map[Surface][]string{
	SurfaceHome:    {keyPrefix + "projects", keyPrefix + "news"},
	SurfaceGallery: {keyPrefix + "gallery"},
	SurfaceAdmin:   nil, // dashboards read live data; pub/sub only
}

// Notifier invalidates cached collection lists and fans surface names out
// over pub/sub.
type Notifier struct {
	rc  *pkgredis.Client
	log *zap.Logger
}

func NewNotifier(rc *pkgredis.Client, log *zap.Logger) *Notifier {
	return &Notifier{rc: rc, log: log}
}

// Notify is called after every successful mutation with the affected surfaces.
func (n *Notifier) Notify(ctx context.Context, surfaces ...Surface) {
	if n == nil || n.rc == nil {
		return
	}
	for _, s := range surfaces {
		if keys := surfaceKeys[s]; len(keys) > 0 {
			if err := n.rc.Del(ctx, keys...); err != nil {
				n.log.Warn("cache invalidation failed", zap.String("surface", string(s)), zap.Error(err))
			}
		}
		if err := n.rc.Publish(ctx, Channel, string(s)); err != nil {
			n.log.Warn("revalidation publish failed", zap.String("surface", string(s)), zap.Error(err))
		}
	}
}

// GetCached returns the cached JSON for a collection, or "" on miss/error.
func (n *Notifier) GetCached(ctx context.Context, collection string) string {
	if n == nil || n.rc == nil {
		return ""
	}
	val, err := n.rc.Get(ctx, keyPrefix+collection)
	if err != nil {
		n.log.Warn("cache read failed", zap.String("collection", collection), zap.Error(err))
		return ""
	}
	return val
}

// SetCached stores the rendered JSON for a collection with the default TTL.
func (n *Notifier) SetCached(ctx context.Context, collection, payload string) {
	if n == nil || n.rc == nil {
		return
	}
	if err := n.rc.Set(ctx, keyPrefix+collection, payload, DefaultTTL); err != nil {
		n.log.Warn("cache write failed", zap.String("collection", collection), zap.Error(err))
	}
}
