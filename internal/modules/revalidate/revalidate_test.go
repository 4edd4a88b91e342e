package revalidate

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	pkgredis "github.com/onetree-africa/core/internal/pkg/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testNotifier(t *testing.T) (*Notifier, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := pkgredis.Wrap(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	return NewNotifier(rc, zap.NewNop()), mr
}

func TestCachedRoundTrip(t *testing.T) {
	n, _ := testNotifier(t)
	ctx := context.Background()

	assert.Empty(t, n.GetCached(ctx, "projects"))

	n.SetCached(ctx, "projects", `{"data":[]}`)
	assert.Equal(t, `{"data":[]}`, n.GetCached(ctx, "projects"))
}

func TestNotifyInvalidatesSurfaceKeys(t *testing.T) {
	n, mr := testNotifier(t)
	ctx := context.Background()

	n.SetCached(ctx, "projects", "p")
	n.SetCached(ctx, "news", "n")
	n.SetCached(ctx, "gallery", "g")

	n.Notify(ctx, SurfaceHome)

	assert.Empty(t, n.GetCached(ctx, "projects"))
	assert.Empty(t, n.GetCached(ctx, "news"))
	assert.Equal(t, "g", n.GetCached(ctx, "gallery"))
	assert.False(t, mr.Exists(keyPrefix+"projects"))
}

func TestNotifyGalleryLeavesHomeAlone(t *testing.T) {
	n, _ := testNotifier(t)
	ctx := context.Background()

	n.SetCached(ctx, "projects", "p")
	n.SetCached(ctx, "gallery", "g")

	n.Notify(ctx, SurfaceGallery)

	assert.Equal(t, "p", n.GetCached(ctx, "projects"))
	assert.Empty(t, n.GetCached(ctx, "gallery"))
}

func TestNotifyPublishesSurfaceNames(t *testing.T) {
	n, mr := testNotifier(t)
	ctx := context.Background()

	sub := goredis.NewClient(&goredis.Options{Addr: mr.Addr()}).Subscribe(ctx, Channel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	n.Notify(ctx, SurfaceHome, SurfaceAdmin)

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(SurfaceHome), msg.Payload)

	msg, err = sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(SurfaceAdmin), msg.Payload)
}

func TestNotifySurvivesRedisOutage(t *testing.T) {
	n, mr := testNotifier(t)
	mr.Close()

	// Must not panic or block the mutation path.
	n.Notify(context.Background(), SurfaceHome)
}

func TestSetCachedExpires(t *testing.T) {
	n, mr := testNotifier(t)
	ctx := context.Background()

	n.SetCached(ctx, "news", "n")
	mr.FastForward(DefaultTTL + 1)
	assert.Empty(t, n.GetCached(ctx, "news"))
}
