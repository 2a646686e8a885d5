package services

import (
	"testing"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
)

func TestNewCommentOnLockedPost(t *testing.T) {
	author := createTestAccount(t, false)
	commenter := createTestAccount(t, false)
	post := createTestPost(t, author)

	post.IsCommentLocked = true
	if _, err := EditPost(author, post); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	locked, err := GetPost(database.C, post.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = NewComment(commenter, locked, "hello?")
	if !fault.IsKind(err, fault.KindClosed) {
		t.Errorf("expected locked post to reject comments, got %v", err)
	}
}

func TestCommentLifecycle(t *testing.T) {
	author := createTestAccount(t, false)
	commenter := createTestAccount(t, false)
	stranger := createTestAccount(t, false)
	post := createTestPost(t, author)

	comment, err := NewComment(commenter, post, "first!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := EditComment(stranger, comment, "hijacked"); !fault.IsKind(err, fault.KindUnauthorized) {
		t.Errorf("expected edit by a stranger to fail, got %v", err)
	}

	edited, err := EditComment(commenter, comment, "first, actually")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !edited.IsEdited {
		t.Errorf("expected the edit flag to flip")
	}

	if err := DeleteComment(stranger, comment); !fault.IsKind(err, fault.KindUnauthorized) {
		t.Errorf("expected delete by a stranger to fail, got %v", err)
	}

	if err := DeleteComment(commenter, comment); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var deleted models.Comment
	if err := database.C.Where("id = ?", comment.ID).First(&deleted).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted.IsDeleted || !deleted.UserDeleted {
		t.Errorf("expected self deletion flags, got %+v", deleted)
	}

	comments, count, err := ListComment(post.ID, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 || len(comments) != 0 {
		t.Errorf("deleted comments must not be listed, got %d", count)
	}
}
