package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded cursor from the creation time and id of the last item on a page.
func EncodeToken(createdAt time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", createdAt.Format(timeFormat), id)
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded cursor back into creation time and id.
func DecodeToken(token string) (time.Time, string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (split)")
	}

	createdAt, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return createdAt, parts[1], nil
}

// Page returns up to limit items following the cursor, plus the cursor for the next page
// (nil when there are no more items). items must be ordered newest first with strictly
// decreasing creation times; key extracts the creation time and id used to build cursors.
// If the item named by the cursor no longer exists, the page resumes at the first item
// created before it. Ties or out-of-order times would make that fallback skip or repeat items.
func Page[T any](items []T, token string, limit int, key func(T) (time.Time, string)) ([]T, *string, error) {
	start := 0
	if token != "" {
		createdAt, id, err := DecodeToken(token)
		if err != nil {
			return nil, nil, err
		}
		start = len(items)
		for i, item := range items {
			itemTime, itemID := key(item)
			if itemID == id {
				start = i + 1
				break
			}
			if itemTime.Before(createdAt) {
				start = i
				break
			}
		}
	}

	end := min(start+limit, len(items))
	page := items[start:end]
	if end >= len(items) || len(page) == 0 {
		return page, nil, nil
	}
	createdAt, id := key(page[len(page)-1])
	next := EncodeToken(createdAt, id)
	return page, &next, nil
}

