package activity

import (
	"fmt"
	"time"

	"github.com/sproutapp/carbon-coach/internal/types"
)

// categoryEmojis decorates feed entries per category.
var categoryEmojis = map[types.Category]string{
	types.CategoryTransportation: "🚌",
	types.CategoryFood:           "🥗",
	types.CategoryEnergy:         "⚡",
	types.CategoryShopping:       "🛍️",
}

// defaultEmoji is used for unknown categories.
const defaultEmoji = "🌱"

// CategoryEmoji returns the feed emoji for a category.
func CategoryEmoji(category types.Category) string {
	if emoji, ok := categoryEmojis[category]; ok {
		return emoji
	}
	return defaultEmoji
}

// TimeAgo renders a timestamp as a short relative label for the feed.
func TimeAgo(t, now time.Time) string {
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	days := int(diff.Hours() / 24)
	switch {
	case days > 1:
		return fmt.Sprintf("%d days ago", days)
	case days == 1:
		return "Yesterday"
	case diff >= time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d hour%s ago", hours, plural(hours))
	case diff >= time.Minute:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d minute%s ago", minutes, plural(minutes))
	default:
		return "Just now"
	}
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
