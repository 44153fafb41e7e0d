// Package service implements the application's business logic on top of the
// repository layer.
package service

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"

	"github.com/google/uuid"
)

// FeedCursor is the opaque continuation token used by feed pagination.
// It is a distinct type from SearchCursor so the two pagination schemes
// cannot be mixed up at compile time.
type FeedCursor string

const (
	cursorKindMix    = "mix"
	cursorKindKeyset = "key"
)

// NewMixCursor returns the sentinel cursor handed out by mixed-mode feed
// pages. It marks "more content exists" but does not encode a resumable
// position: a repeated call produces a fresh mixed page.
func NewMixCursor() FeedCursor {
	return encodeFeedCursor(cursorKindMix + ":" + uuid.NewString())
}

// NewKeysetCursor returns a resumable cursor pointing after the given row.
func NewKeysetCursor(ks repository.Keyset) FeedCursor {
	return encodeFeedCursor(fmt.Sprintf("%s:%d:%d", cursorKindKeyset, ks.CreatedAt.UnixNano(), ks.ID))
}

func encodeFeedCursor(payload string) FeedCursor {
	return FeedCursor(base64.RawURLEncoding.EncodeToString([]byte(payload)))
}

// Keyset decodes the cursor into a keyset position. It returns nil for an
// empty cursor, a mix sentinel, or anything malformed: all of those resume
// from the top rather than failing.
func (c FeedCursor) Keyset() *repository.Keyset {
	if c == "" {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(string(c))
	if err != nil {
		return nil
	}
	parts := strings.SplitN(string(raw), ":", 3)
	if len(parts) != 3 || parts[0] != cursorKindKeyset {
		return nil
	}
	nanos, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil
	}
	id, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return nil
	}
	return &repository.Keyset{CreatedAt: time.Unix(0, nanos), ID: uint(id)}
}

// SearchCursor is the numeric-offset-as-string cursor used by search
// pagination. It is intentionally incompatible with FeedCursor.
type SearchCursor string

// SearchCursorFrom builds a cursor for the given offset.
func SearchCursorFrom(offset int) SearchCursor {
	return SearchCursor(strconv.Itoa(offset))
}

// Offset parses the cursor. Malformed or negative values default to 0
// instead of failing.
func (c SearchCursor) Offset() int {
	if c == "" {
		return 0
	}
	n, err := strconv.Atoi(string(c))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
