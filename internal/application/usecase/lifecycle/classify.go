// Package lifecycle partitions subscriptions into lifecycle buckets.
package lifecycle

import (
	"time"

	"github.com/subtracker/backend/internal/domain/entity"
)

// EndingSoonWindowDays is the inclusive look-ahead window for the ending-soon
// bucket, counted from today.
const EndingSoonWindowDays = 7

// Classification is the result of partitioning subscriptions by lifecycle.
// Active and History partition the input; EndingSoon is a subset of Active.
type Classification struct {
	Active     []*entity.Subscription
	EndingSoon []*entity.Subscription
	History    []*entity.Subscription
}

// Classify partitions subscriptions into active, ending-soon and history
// relative to the given day. Input order is preserved within each bucket.
//
// Archived records are history regardless of dates. Records whose end date has
// passed are history. Everything else is active, including records whose end
// date does not parse. Ending-soon holds active records ending within the next
// EndingSoonWindowDays days, today included; an unparsable end date never
// qualifies.
// Lifecycle bucket names as exposed on the wire.
const (
	BucketActive     = "active"
	BucketEndingSoon = "ending-soon"
	BucketHistory    = "history"
)

// Bucket returns the single active/history bucket a subscription belongs to.
func Bucket(sub *entity.Subscription, today time.Time) string {
	if sub.IsArchived {
		return BucketHistory
	}
	if endsAt, ok := sub.EndsAt(); ok && entity.DayOf(endsAt).Before(entity.DayOf(today)) {
		return BucketHistory
	}
	return BucketActive
}

func Classify(subscriptions []*entity.Subscription, today time.Time) Classification {
	day := entity.DayOf(today)
	horizon := day.AddDate(0, 0, EndingSoonWindowDays)

	var result Classification
	for _, sub := range subscriptions {
		if sub.IsArchived {
			result.History = append(result.History, sub)
			continue
		}

		endsAt, ok := sub.EndsAt()
		if ok && entity.DayOf(endsAt).Before(day) {
			result.History = append(result.History, sub)
			continue
		}

		result.Active = append(result.Active, sub)

		if ok {
			endDay := entity.DayOf(endsAt)
			if !endDay.Before(day) && !endDay.After(horizon) {
				result.EndingSoon = append(result.EndingSoon, sub)
			}
		}
	}
	return result
}
