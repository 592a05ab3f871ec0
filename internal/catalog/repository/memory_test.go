package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

func newSeller(t *testing.T) *userdomain.User {
	t.Helper()
	u, err := userdomain.NewUser("USR-000001", "Seller", "3520212345671", "seller@uni.pk", "pw", "", "", time.Now())
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return u
}

func newBook(t *testing.T, id, title, category string, price float64, uploader *userdomain.User) *domain.Book {
	t.Helper()
	book, err := domain.NewBook(domain.BookParams{
		ListingParams: domain.ListingParams{
			ID:       id,
			Title:    title,
			Uploader: uploader,
			Category: category,
			Grade:    "A-Level",
			Subject:  "Mathematics",
		},
		SaleParams: domain.SaleParams{
			Price:       price,
			MarketPrice: price * 2,
			Condition:   "good",
		},
		Author: "Author",
		Pages:  100,
	}, time.Now())
	if err != nil {
		t.Fatalf("NewBook: %v", err)
	}
	return book
}

func newResource(t *testing.T, id, title string, uploader *userdomain.User) *domain.FreeResource {
	t.Helper()
	res, err := domain.NewFreeResource(domain.FreeResourceParams{
		ListingParams: domain.ListingParams{
			ID:       id,
			Title:    title,
			Uploader: uploader,
			Category: "Mathematics",
			Subject:  "Mathematics",
		},
		FileURL:    "https://files.studex.pk/res.pdf",
		FileSizeMB: 1,
		FileFormat: "pdf",
	}, time.Now())
	if err != nil {
		t.Fatalf("NewFreeResource: %v", err)
	}
	return res
}

func TestAddItemRejectsDuplicatesAndBadItems(t *testing.T) {
	catalog := NewMemoryCatalog()
	seller := newSeller(t)
	book := newBook(t, "ITM-000001", "Calculus", "Mathematics", 500, seller)

	if err := catalog.AddItem(nil); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("nil item: expected validation error, got %v", err)
	}
	if err := catalog.AddItem(book); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := catalog.AddItem(book); !errors.Is(err, errs.ErrConflict) {
		t.Errorf("duplicate id: expected conflict, got %v", err)
	}
	if got := catalog.Count(); got != 1 {
		t.Errorf("expected 1 item after rejected duplicate, got %d", got)
	}
}

func TestSearchBlankAndOrder(t *testing.T) {
	catalog := NewMemoryCatalog()
	seller := newSeller(t)
	catalog.AddItem(newBook(t, "ITM-000001", "Calculus Volume One", "Mathematics", 500, seller))
	catalog.AddItem(newBook(t, "ITM-000002", "Statistics Basics", "Mathematics", 300, seller))
	catalog.AddItem(newBook(t, "ITM-000003", "Calculus Volume Two", "Mathematics", 600, seller))

	if got := catalog.Search(""); len(got) != 0 {
		t.Errorf("blank keyword must return no items, got %d", len(got))
	}
	if got := catalog.Search("   "); len(got) != 0 {
		t.Errorf("whitespace keyword must return no items, got %d", len(got))
	}

	hits := catalog.Search("calculus")
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].ID() != "ITM-000001" || hits[1].ID() != "ITM-000003" {
		t.Errorf("hits must preserve insertion order, got %s then %s", hits[0].ID(), hits[1].ID())
	}
}

// faultyItem panics inside MatchesSearch, standing in for a record
// whose matcher hits unexpected state.
type faultyItem struct {
	domain.Item
}

func (f faultyItem) MatchesSearch(string) bool { panic("corrupt record") }

func TestSearchSkipsPanickingItem(t *testing.T) {
	catalog := NewMemoryCatalog()
	seller := newSeller(t)
	catalog.AddItem(newBook(t, "ITM-000001", "Calculus", "Mathematics", 500, seller))
	catalog.AddItem(faultyItem{Item: newBook(t, "ITM-000002", "Calculus Faulty", "Mathematics", 500, seller)})
	catalog.AddItem(newBook(t, "ITM-000003", "Calculus Again", "Mathematics", 500, seller))

	hits := catalog.Search("calculus")
	if len(hits) != 2 {
		t.Fatalf("expected the panicking item to be skipped, got %d hits", len(hits))
	}
	if hits[0].ID() != "ITM-000001" || hits[1].ID() != "ITM-000003" {
		t.Errorf("wrong survivors: %s, %s", hits[0].ID(), hits[1].ID())
	}
}

func TestFilterItems(t *testing.T) {
	catalog := NewMemoryCatalog()
	seller := newSeller(t)
	catalog.AddItem(newBook(t, "ITM-000001", "Calculus", "Mathematics", 500, seller))
	catalog.AddItem(newBook(t, "ITM-000002", "Biology", "Science", 800, seller))
	catalog.AddItem(newResource(t, "ITM-000003", "Free Slides", seller))

	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }

	t.Run("category is case-insensitive", func(t *testing.T) {
		got, err := catalog.FilterItems(domain.Filter{Category: strPtr("mathematics")})
		if err != nil {
			t.Fatalf("FilterItems: %v", err)
		}
		// The free resource shares the category too.
		if len(got) != 2 {
			t.Errorf("expected 2 items, got %d", len(got))
		}
	})

	t.Run("price bound drops free resources", func(t *testing.T) {
		got, err := catalog.FilterItems(domain.Filter{MaxPrice: floatPtr(1000)})
		if err != nil {
			t.Fatalf("FilterItems: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected only the 2 for-sale items, got %d", len(got))
		}
		for _, item := range got {
			if _, ok := item.(domain.Purchasable); !ok {
				t.Errorf("item %s is not for sale", item.ID())
			}
		}
	})

	t.Run("price range", func(t *testing.T) {
		got, err := catalog.FilterItems(domain.Filter{MinPrice: floatPtr(600), MaxPrice: floatPtr(900)})
		if err != nil {
			t.Fatalf("FilterItems: %v", err)
		}
		if len(got) != 1 || got[0].ID() != "ITM-000002" {
			t.Errorf("expected only the Rs.800 book, got %d items", len(got))
		}
	})

	t.Run("inverted bounds rejected", func(t *testing.T) {
		_, err := catalog.FilterItems(domain.Filter{MinPrice: floatPtr(900), MaxPrice: floatPtr(600)})
		if !errors.Is(err, errs.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("negative bound rejected", func(t *testing.T) {
		_, err := catalog.FilterItems(domain.Filter{MinPrice: floatPtr(-1)})
		if !errors.Is(err, errs.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("empty filter returns everything", func(t *testing.T) {
		got, err := catalog.FilterItems(domain.Filter{})
		if err != nil {
			t.Fatalf("FilterItems: %v", err)
		}
		if len(got) != 3 {
			t.Errorf("expected all 3 items, got %d", len(got))
		}
	})
}

func TestCategoryCountsAndSellerItems(t *testing.T) {
	catalog := NewMemoryCatalog()
	seller := newSeller(t)
	other, err := userdomain.NewUser("USR-000002", "Other", "3520298765432", "other@uni.pk", "pw", "", "", time.Now())
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}

	catalog.AddItem(newBook(t, "ITM-000001", "Calculus", "Mathematics", 500, seller))
	catalog.AddItem(newBook(t, "ITM-000002", "Biology", "Science", 800, seller))
	catalog.AddItem(newBook(t, "ITM-000003", "Algebra", "Mathematics", 400, other))

	counts := catalog.CategoryCounts()
	if counts["Mathematics"] != 2 || counts["Science"] != 1 {
		t.Errorf("wrong category counts: %v", counts)
	}

	mine := catalog.ItemsBySeller(seller)
	if len(mine) != 2 {
		t.Errorf("expected 2 items for seller, got %d", len(mine))
	}
	if got := catalog.ItemsBySeller(nil); len(got) != 0 {
		t.Errorf("nil seller must return no items, got %d", len(got))
	}

	if catalog.UpdatedAt().IsZero() {
		t.Error("UpdatedAt must be set after mutations")
	}
}

func TestFindByID(t *testing.T) {
	catalog := NewMemoryCatalog()
	seller := newSeller(t)
	book := newBook(t, "ITM-000001", "Calculus", "Mathematics", 500, seller)
	catalog.AddItem(book)

	got, err := catalog.FindByID("ITM-000001")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != domain.Item(book) {
		t.Error("FindByID returned a different item")
	}
	if _, err := catalog.FindByID("ITM-999999"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}
