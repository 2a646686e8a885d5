package services

import (
	"fmt"
	"testing"

	"github.com/th41ng/SocialNetwork/pkg/internal/database"
	"github.com/th41ng/SocialNetwork/pkg/internal/fault"
	"github.com/th41ng/SocialNetwork/pkg/internal/models"
)

func TestNewAccountAndAuth(t *testing.T) {
	seq := testAccountSeq.Add(1)
	account, err := NewAccount(models.Account{
		Name:  fmt.Sprintf("signup%d", seq),
		Email: fmt.Sprintf("signup%d@example.com", seq),
		Role:  models.RoleLecturer,
	}, "correct horse")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !account.IsStaff {
		t.Errorf("lecturers should be staff")
	}

	if _, err := AuthAccount(account.Name, "correct horse"); err != nil {
		t.Errorf("expected credentials to match, got %v", err)
	}
	if _, err := AuthAccount(account.Name, "wrong"); !fault.IsKind(err, fault.KindUnauthorized) {
		t.Errorf("expected bad password to fail, got %v", err)
	}
	if _, err := AuthAccount("nobody", "correct horse"); !fault.IsKind(err, fault.KindUnauthorized) {
		t.Errorf("expected unknown account to fail, got %v", err)
	}
}

func TestNewAccountValidation(t *testing.T) {
	if _, err := NewAccount(models.Account{Name: "short", Email: "short@example.com"}, "2short"); !fault.IsKind(err, fault.KindInvalid) {
		t.Errorf("expected short password to fail, got %v", err)
	}

	seq := testAccountSeq.Add(1)
	taken := models.Account{
		Name:  fmt.Sprintf("taken%d", seq),
		Email: fmt.Sprintf("taken%d@example.com", seq),
		Role:  models.RoleAlumni,
	}
	if _, err := NewAccount(taken, "long enough"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := NewAccount(taken, "long enough"); !fault.IsKind(err, fault.KindDuplicate) {
		t.Errorf("expected duplicate name to fail, got %v", err)
	}
}

func TestAuthAccountSuspended(t *testing.T) {
	seq := testAccountSeq.Add(1)
	account, err := NewAccount(models.Account{
		Name:  fmt.Sprintf("frozen%d", seq),
		Email: fmt.Sprintf("frozen%d@example.com", seq),
		Role:  models.RoleAlumni,
	}, "long enough")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := database.C.Model(&models.Account{}).
		Where("id = ?", account.ID).
		Update("suspended", true).Error; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := AuthAccount(account.Name, "long enough"); !fault.IsKind(err, fault.KindUnauthorized) {
		t.Errorf("expected suspended account to be rejected, got %v", err)
	}
}

func TestUpdateAccountPassword(t *testing.T) {
	seq := testAccountSeq.Add(1)
	account, err := NewAccount(models.Account{
		Name:  fmt.Sprintf("rotate%d", seq),
		Email: fmt.Sprintf("rotate%d@example.com", seq),
		Role:  models.RoleAlumni,
	}, "old password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := UpdateAccountPassword(account, "new password"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := AuthAccount(account.Name, "old password"); !fault.IsKind(err, fault.KindUnauthorized) {
		t.Errorf("expected the old password to stop working, got %v", err)
	}
	if _, err := AuthAccount(account.Name, "new password"); err != nil {
		t.Errorf("expected the new password to work, got %v", err)
	}
}
