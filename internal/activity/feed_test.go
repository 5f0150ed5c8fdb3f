package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sproutapp/carbon-coach/internal/types"
)

func TestCategoryEmoji(t *testing.T) {
	assert.Equal(t, "🚌", CategoryEmoji(types.CategoryTransportation))
	assert.Equal(t, "🥗", CategoryEmoji(types.CategoryFood))
	assert.Equal(t, defaultEmoji, CategoryEmoji(types.Category("other")))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "Just now"},
		{time.Minute, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{time.Hour, "1 hour ago"},
		{3 * time.Hour, "3 hours ago"},
		{26 * time.Hour, "Yesterday"},
		{3 * 24 * time.Hour, "3 days ago"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeAgo(now.Add(-tc.ago), now), "%s", tc.ago)
	}
}

func TestTimeAgo_FutureClampsToNow(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Just now", TimeAgo(now.Add(time.Minute), now))
}
