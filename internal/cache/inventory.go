package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	JobKeyPrefix  = "job:%d"
	UserKeyPrefix = "user:%d"
	// JobsFirstPageKey caches only the unfiltered first page of listings,
	// which is what the landing page and default browse hit hardest.
	JobsFirstPageKey = "jobs:firstpage"
)

const (
	JobTTL          = 30 * time.Minute
	UserTTL         = 5 * time.Minute
	JobsFirstPageTTL = 2 * time.Minute
)

func JobKey(jobID uint) string {
	return fmt.Sprintf(JobKeyPrefix, jobID)
}

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateJob(ctx context.Context, jobID uint) {
	Invalidate(ctx, JobKey(jobID))
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateJobsList(ctx context.Context) {
	Invalidate(ctx, JobsFirstPageKey)
}
