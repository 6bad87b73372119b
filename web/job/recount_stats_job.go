// Package job contains scheduled maintenance jobs run by the web server's
// cron scheduler.
package job

import (
	"github.com/fabre752/multidiary/database"
	"github.com/fabre752/multidiary/logger"
)

// RecountStatsJob reconciles the denormalized activity counters
// (users.num_posts, users.num_comments, posts.num_comments) with the base
// tables. The services increment the counters on each write; this job
// repairs any drift from failed increments or external edits.
type RecountStatsJob struct{}

func NewRecountStatsJob() *RecountStatsJob {
	return new(RecountStatsJob)
}

// Run recounts all three counters in place.
func (j *RecountStatsJob) Run() {
	db := database.GetDB()

	err := db.Exec(`UPDATE users SET
		num_posts = (SELECT COUNT(*) FROM posts WHERE posts.author_id = users.id),
		num_comments = (SELECT COUNT(*) FROM comments WHERE comments.author_id = users.id)`).Error
	if err != nil {
		logger.Warning("recount user stats err:", err)
		return
	}

	err = db.Exec(`UPDATE posts SET
		num_comments = (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id)`).Error
	if err != nil {
		logger.Warning("recount post stats err:", err)
		return
	}

	logger.Debug("recount stats job completed")
}
