package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	tycoon "github.com/xraph/tycoon"
	"github.com/xraph/tycoon/account"
	"github.com/xraph/tycoon/store"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newAccount(owner string, created time.Time) *account.Account {
	return account.New(owner, created, 12345, account.DefaultConfig())
}

func TestCreateAndGet(t *testing.T) {
	s := New()
	ctx := context.Background()

	a := newAccount("owner-1", t0)
	if err := s.CreateAccount(ctx, a); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	got, err := s.GetAccount(ctx, "owner-1")
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if got.Owner != "owner-1" {
		t.Errorf("Owner = %q, want owner-1", got.Owner)
	}
	if len(got.Slots) != len(a.Slots) {
		t.Errorf("Slots = %d, want %d", len(got.Slots), len(a.Slots))
	}
}

func TestCreateDuplicate(t *testing.T) {
	s := New()
	ctx := context.Background()

	if err := s.CreateAccount(ctx, newAccount("owner-1", t0)); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}
	err := s.CreateAccount(ctx, newAccount("owner-1", t0))
	if !errors.Is(err, tycoon.ErrAccountExists) {
		t.Errorf("err = %v, want ErrAccountExists", err)
	}
}

func TestGetMissing(t *testing.T) {
	s := New()

	_, err := s.GetAccount(context.Background(), "nobody")
	if !errors.Is(err, tycoon.ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestRecordIsolation(t *testing.T) {
	s := New()
	ctx := context.Background()

	a := newAccount("owner-1", t0)
	if err := s.CreateAccount(ctx, a); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	// Mutating the caller's copy must not leak into the stored record.
	a.MarkEntryPaid()

	got, err := s.GetAccount(ctx, "owner-1")
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if got.HasPaidEntry {
		t.Error("stored record mutated through caller's pointer")
	}

	// And mutating a returned record must not leak back either.
	got.MarkEntryPaid()
	again, err := s.GetAccount(ctx, "owner-1")
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if again.HasPaidEntry {
		t.Error("stored record mutated through returned pointer")
	}
}

func TestUpdateAccount(t *testing.T) {
	s := New()
	ctx := context.Background()

	a := newAccount("owner-1", t0)
	if err := s.CreateAccount(ctx, a); err != nil {
		t.Fatalf("CreateAccount: %v", err)
	}

	a.MarkEntryPaid()
	if err := s.UpdateAccount(ctx, a); err != nil {
		t.Fatalf("UpdateAccount: %v", err)
	}

	got, err := s.GetAccount(ctx, "owner-1")
	if err != nil {
		t.Fatalf("GetAccount: %v", err)
	}
	if !got.HasPaidEntry {
		t.Error("update not persisted")
	}
}

func TestUpdateMissing(t *testing.T) {
	s := New()

	err := s.UpdateAccount(context.Background(), newAccount("ghost", t0))
	if !errors.Is(err, tycoon.ErrAccountNotFound) {
		t.Errorf("err = %v, want ErrAccountNotFound", err)
	}
}

func TestListAccountsOrderAndPaging(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i, owner := range []string{"charlie", "alice", "bob"} {
		a := newAccount(owner, t0.Add(time.Duration(i)*time.Hour))
		if err := s.CreateAccount(ctx, a); err != nil {
			t.Fatalf("CreateAccount(%s): %v", owner, err)
		}
	}

	all, err := s.ListAccounts(ctx, store.ListOpts{})
	if err != nil {
		t.Fatalf("ListAccounts: %v", err)
	}
	want := []string{"charlie", "alice", "bob"} // creation order
	if len(all) != len(want) {
		t.Fatalf("len = %d, want %d", len(all), len(want))
	}
	for i, a := range all {
		if a.Owner != want[i] {
			t.Errorf("all[%d].Owner = %q, want %q", i, a.Owner, want[i])
		}
	}

	page, err := s.ListAccounts(ctx, store.ListOpts{Limit: 1, Offset: 1})
	if err != nil {
		t.Fatalf("ListAccounts paged: %v", err)
	}
	if len(page) != 1 || page[0].Owner != "alice" {
		t.Errorf("page = %v, want [alice]", owners(page))
	}
}

func TestListDueAccounts(t *testing.T) {
	s := New()
	ctx := context.Background()

	// earlier-due accounts must come first
	due := map[string]time.Time{
		"late":  t0.Add(2 * time.Hour),
		"early": t0.Add(30 * time.Minute),
		"never": {},
	}
	for owner, at := range due {
		a := newAccount(owner, t0)
		a.NextEarningsAt = at
		if err := s.CreateAccount(ctx, a); err != nil {
			t.Fatalf("CreateAccount(%s): %v", owner, err)
		}
	}

	got, err := s.ListDueAccounts(ctx, t0.Add(3*time.Hour), 0)
	if err != nil {
		t.Fatalf("ListDueAccounts: %v", err)
	}
	want := []string{"early", "late"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// limit caps the sweep
	capped, err := s.ListDueAccounts(ctx, t0.Add(3*time.Hour), 1)
	if err != nil {
		t.Fatalf("ListDueAccounts limited: %v", err)
	}
	if len(capped) != 1 || capped[0] != "early" {
		t.Errorf("capped = %v, want [early]", capped)
	}

	// nothing due before the first deadline
	none, err := s.ListDueAccounts(ctx, t0, 0)
	if err != nil {
		t.Fatalf("ListDueAccounts early: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("none = %v, want empty", none)
	}
}

func owners(accts []*account.Account) []string {
	out := make([]string, len(accts))
	for i, a := range accts {
		out[i] = a.Owner
	}
	return out
}
