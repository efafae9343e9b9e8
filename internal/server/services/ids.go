// Package services contains server-side business logic: content CRUD with
// validation and id assignment, personal-info upserts, admin authentication,
// and the destructive reseed.
package services

import (
	"fmt"
	"time"
)

// nowMillis is a seam for tests that need deterministic ids.
var nowMillis = func() int64 { return time.Now().UnixMilli() }

// newContentID builds an id from the entity prefix and the current unix
// millisecond timestamp, matching the format of the seed fixtures.
func newContentID(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, nowMillis())
}
