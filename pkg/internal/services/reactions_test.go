package services

import (
	"fmt"
	"testing"

	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
)

func createTestPost(t *testing.T, author models.Account) models.Post {
	t.Helper()

	staff := createTestAccount(t, true)
	category, err := NewCategory(staff, fmt.Sprintf("category%d", testAccountSeq.Add(1)))
	if err != nil {
		t.Fatalf("unable to create category: %v", err)
	}

	post, err := NewPost(author, models.Post{
		Content:    "A post to react on",
		Visibility: models.PostVisibilityPublic,
		CategoryID: category.ID,
	})
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	return post
}

func TestReactToToggles(t *testing.T) {
	author := createTestAccount(t, false)
	reactor := createTestAccount(t, false)
	post := createTestPost(t, author)

	attached, _, err := ReactTo(reactor, models.ReactionTargetPost, post.ID, models.ReactionSymbolLike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !attached {
		t.Errorf("expected the reaction to attach")
	}

	// A different symbol replaces the previous one.
	attached, reaction, err := ReactTo(reactor, models.ReactionTargetPost, post.ID, models.ReactionSymbolLove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !attached || reaction.Symbol != models.ReactionSymbolLove {
		t.Errorf("expected the reaction to switch symbol, got %+v", reaction)
	}

	// Reacting again with the same symbol removes it.
	attached, _, err = ReactTo(reactor, models.ReactionTargetPost, post.ID, models.ReactionSymbolLove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attached {
		t.Errorf("expected the reaction to detach")
	}

	summary := GetReactionSummary(models.ReactionTargetPost, post.ID)
	if summary[models.ReactionSymbolLove] != 0 {
		t.Errorf("expected no remaining reactions, got %v", summary)
	}
}

func TestReactToValidation(t *testing.T) {
	author := createTestAccount(t, false)
	reactor := createTestAccount(t, false)
	post := createTestPost(t, author)

	if _, _, err := ReactTo(reactor, models.ReactionTargetPost, post.ID, "angry"); !fault.IsKind(err, fault.KindInvalid) {
		t.Errorf("expected invalid symbol, got %v", err)
	}
	if _, _, err := ReactTo(reactor, "survey", post.ID, models.ReactionSymbolLike); !fault.IsKind(err, fault.KindInvalid) {
		t.Errorf("expected invalid target type, got %v", err)
	}
	if _, _, err := ReactTo(reactor, models.ReactionTargetPost, 99999, models.ReactionSymbolLike); !fault.IsKind(err, fault.KindNotFound) {
		t.Errorf("expected missing target, got %v", err)
	}
}

func TestGetReactionSummary(t *testing.T) {
	author := createTestAccount(t, false)
	post := createTestPost(t, author)

	for i := 0; i < 2; i++ {
		reactor := createTestAccount(t, false)
		if _, _, err := ReactTo(reactor, models.ReactionTargetPost, post.ID, models.ReactionSymbolHaha); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summary := GetReactionSummary(models.ReactionTargetPost, post.ID)
	if summary[models.ReactionSymbolHaha] != 2 {
		t.Errorf("expected 2 haha reactions, got %v", summary)
	}
}
