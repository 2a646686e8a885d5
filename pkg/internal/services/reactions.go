package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	localCache "github.com/th41ng/SocialNetwork/pkg/internal/cache"
	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
	"gorm.io/gorm"
)

func getReactionSummaryCacheKey(targetType string, targetId uint) string {
	return fmt.Sprintf("reaction-summary#%s-%d", targetType, targetId)
}

// GetReactionSummary tallies reactions per symbol for one target. Results
// are cached for a short while since the summary rides along every post in
// a feed page.
func GetReactionSummary(targetType string, targetId uint) map[string]int64 {
	marshal := marshaler.New(cache.New[any](localCache.S))
	ctx := context.Background()

	cacheKey := getReactionSummaryCacheKey(targetType, targetId)
	if cached, err := marshal.Get(ctx, cacheKey, new(map[string]int64)); err == nil {
		return *cached.(*map[string]int64)
	}

	var rows []struct {
		Symbol string
		Total  int64
	}
	summary := make(map[string]int64)
	if err := database.C.Model(&models.Reaction{}).
		Select("symbol, COUNT(*) AS total").
		Where("target_type = ? AND target_id = ?", targetType, targetId).
		Group("symbol").
		Scan(&rows).Error; err != nil {
		return summary
	}
	for _, row := range rows {
		summary[row.Symbol] = row.Total
	}

	_ = marshal.Set(
		ctx,
		cacheKey,
		summary,
		store.WithExpiration(5*time.Minute),
	)

	return summary
}

func invalidateReactionSummary(targetType string, targetId uint) {
	marshal := marshaler.New(cache.New[any](localCache.S))
	_ = marshal.Delete(context.Background(), getReactionSummaryCacheKey(targetType, targetId))
}

// ReactTo toggles a reaction. Reacting again with the same symbol removes
// it; a different symbol replaces the old one. The boolean reports whether
// the reaction exists afterwards.
func ReactTo(user models.Account, targetType string, targetId uint, symbol string) (bool, models.Reaction, error) {
	var reaction models.Reaction

	switch symbol {
	case models.ReactionSymbolLike, models.ReactionSymbolHaha, models.ReactionSymbolLove:
	default:
		return false, reaction, fault.Newf(fault.KindInvalid, "unknown reaction symbol: %s", symbol)
	}

	switch targetType {
	case models.ReactionTargetPost:
		if _, err := GetPost(database.C, targetId); err != nil {
			return false, reaction, err
		}
	case models.ReactionTargetComment:
		if _, err := GetComment(targetId); err != nil {
			return false, reaction, err
		}
	default:
		return false, reaction, fault.Newf(fault.KindInvalid, "unknown reaction target type: %s", targetType)
	}

	defer invalidateReactionSummary(targetType, targetId)

	if err := database.C.
		Where("target_type = ? AND target_id = ? AND account_id = ?", targetType, targetId, user.ID).
		First(&reaction).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, reaction, fault.Internal("unable to get reaction", err)
		}

		reaction = models.Reaction{
			TargetType: targetType,
			TargetID:   targetId,
			Symbol:     symbol,
			AccountID:  user.ID,
		}
		if err := database.C.Create(&reaction).Error; err != nil {
			return false, reaction, fault.Internal("unable to create reaction", err)
		}
		return true, reaction, nil
	}

	if reaction.Symbol == symbol {
		if err := database.C.Delete(&reaction).Error; err != nil {
			return true, reaction, fault.Internal("unable to remove reaction", err)
		}
		return false, reaction, nil
	}

	reaction.Symbol = symbol
	if err := database.C.Save(&reaction).Error; err != nil {
		return true, reaction, fault.Internal("unable to update reaction", err)
	}
	return true, reaction, nil
}
