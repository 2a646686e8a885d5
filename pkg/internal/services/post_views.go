package services

import (
	"sync"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm/clause"
)

var (
	postViewQueue   []models.PostView
	postViewQueueMu sync.Mutex
)

func AddPostView(post models.Post, accountId uint) {
	postViewQueueMu.Lock()
	defer postViewQueueMu.Unlock()
	postViewQueue = append(postViewQueue, models.PostView{
		AccountID: accountId,
		PostID:    post.ID,
	})
}

func AddPostViews(posts []models.Post, accountId uint) {
	postViewQueueMu.Lock()
	defer postViewQueueMu.Unlock()
	for _, post := range posts {
		postViewQueue = append(postViewQueue, models.PostView{
			AccountID: accountId,
			PostID:    post.ID,
		})
	}
}

// FlushPostViews drains the in-memory view queue into the database and
// refreshes the per-post totals. Runs on a timer.
func FlushPostViews() {
	postViewQueueMu.Lock()
	if len(postViewQueue) == 0 {
		postViewQueueMu.Unlock()
		return
	}
	workingQueue := postViewQueue
	postViewQueue = nil
	postViewQueueMu.Unlock()

	updateRequiredPost := make(map[uint]bool)
	for _, item := range workingQueue {
		updateRequiredPost[item.PostID] = true
	}

	_ = database.C.Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(workingQueue, 1000).Error

	for id := range updateRequiredPost {
		var count int64
		if err := database.C.Model(&models.PostView{}).Where("post_id = ?", id).Count(&count).Error; err != nil {
			continue
		}
		database.C.Model(&models.Post{}).Where("id = ?", id).Update("total_views", count)
	}
}
