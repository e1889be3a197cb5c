package domain

import "sort"

// SessionBucketMillis is the wall-clock window that groups interaction
// records written by one recommendation batch into a single session.
const SessionBucketMillis int64 = 60_000

// Session is a derived grouping of interaction records; it is never
// persisted and is recomputed on every history read.
type Session struct {
	Timestamp int64                  `json:"timestamp"`
	Context   ContextSnapshot        `json:"context"`
	Records   []InteractionWithDrink `json:"recommendations"`
}

// GroupSessions buckets records into sessions by truncating each timestamp to
// its enclosing 60-second window. The session context is taken from the first
// record seen in its bucket; records written by one batch share an identical
// snapshot, so any of them is representative. Sessions are returned sorted by
// bucket timestamp descending regardless of input order.
func GroupSessions(records []InteractionWithDrink) []Session {
	buckets := make(map[int64]*Session)
	keys := make([]int64, 0)

	for _, rec := range records {
		key := rec.Timestamp / SessionBucketMillis * SessionBucketMillis

		s, ok := buckets[key]
		if !ok {
			s = &Session{Timestamp: key, Context: rec.Context}
			buckets[key] = s
			keys = append(keys, key)
		}
		s.Records = append(s.Records, rec)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] > keys[j] })

	sessions := make([]Session, 0, len(keys))
	for _, key := range keys {
		sessions = append(sessions, *buckets[key])
	}
	return sessions
}
