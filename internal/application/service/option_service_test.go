package service

import (
	"context"
	"strings"
	"testing"

	"github.com/StephenEkwedike/FunRobin/internal/domain/entity"
	"github.com/StephenEkwedike/FunRobin/internal/domain/enum"
	"github.com/StephenEkwedike/FunRobin/internal/domain/repository"
)

type fakeOptionRepo struct {
	listings []entity.OptionListing
}

func (f *fakeOptionRepo) List(_ context.Context, filter *repository.OptionFilter) ([]entity.OptionListing, error) {
	var out []entity.OptionListing
	for _, l := range f.listings {
		if filter != nil {
			if filter.Search != "" &&
				!strings.Contains(strings.ToLower(l.Symbol), strings.ToLower(filter.Search)) &&
				!strings.Contains(strings.ToLower(l.Company), strings.ToLower(filter.Search)) {
				continue
			}
			if filter.Type != nil && l.Type != *filter.Type {
				continue
			}
			if filter.HotOnly && !l.IsHot {
				continue
			}
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeOptionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.listings)), nil
}

func (f *fakeOptionRepo) CreateBatch(_ context.Context, listings []entity.OptionListing) error {
	f.listings = append(f.listings, listings...)
	return nil
}

func gridFixture() *fakeOptionRepo {
	return &fakeOptionRepo{listings: []entity.OptionListing{
		{Symbol: "TSLA", Company: "Tesla Inc.", Type: enum.OptionTypePut, Multiplier: 22, CurrentPrice: 433.73, Premium: 12.25, IsHot: true},
		{Symbol: "AAPL", Company: "Apple Inc.", Type: enum.OptionTypeCall, Multiplier: 9, CurrentPrice: 236.18, Premium: 4.20, IsHot: false},
		{Symbol: "GME", Company: "GameStop Corp.", Type: enum.OptionTypeCall, Multiplier: 48, CurrentPrice: 26.47, Premium: 1.85, IsHot: true},
	}}
}

func TestListGridCapsFreeUsers(t *testing.T) {
	svc := NewOptionService(gridFixture())

	listings, err := svc.ListGrid(context.Background(), &repository.OptionFilter{}, enum.PlanFree)
	if err != nil {
		t.Fatalf("ListGrid failed: %v", err)
	}

	for _, l := range listings {
		if l.Multiplier > freePlanMaxMultiplier {
			t.Errorf("%s multiplier = %v, free users capped at %v", l.Symbol, l.Multiplier, freePlanMaxMultiplier)
		}
		if l.IsHot {
			t.Errorf("%s still flagged hot for a free user", l.Symbol)
		}
	}
}

func TestListGridUncappedForPro(t *testing.T) {
	svc := NewOptionService(gridFixture())

	listings, err := svc.ListGrid(context.Background(), &repository.OptionFilter{}, enum.PlanPro)
	if err != nil {
		t.Fatalf("ListGrid failed: %v", err)
	}

	var sawHighMultiplier, sawHot bool
	for _, l := range listings {
		if l.Multiplier > freePlanMaxMultiplier {
			sawHighMultiplier = true
		}
		if l.IsHot {
			sawHot = true
		}
	}
	if !sawHighMultiplier {
		t.Error("pro user should see uncapped multipliers")
	}
	if !sawHot {
		t.Error("pro user should see hot flags")
	}
}

func TestListGridHotFilterDisabledForFree(t *testing.T) {
	svc := NewOptionService(gridFixture())

	// A free user requesting hot-only gets the full capped grid instead of an
	// empty list, since hot flags are hidden at their plan.
	listings, err := svc.ListGrid(context.Background(), &repository.OptionFilter{HotOnly: true}, enum.PlanFree)
	if err != nil {
		t.Fatalf("ListGrid failed: %v", err)
	}
	if len(listings) != 3 {
		t.Errorf("got %d listings, want all 3", len(listings))
	}
}

func TestListGridTypeFilter(t *testing.T) {
	svc := NewOptionService(gridFixture())

	callType := enum.OptionTypeCall
	listings, err := svc.ListGrid(context.Background(), &repository.OptionFilter{Type: &callType}, enum.PlanPro)
	if err != nil {
		t.Fatalf("ListGrid failed: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("got %d call listings, want 2", len(listings))
	}
	for _, l := range listings {
		if l.Type != enum.OptionTypeCall {
			t.Errorf("%s type = %q, want call", l.Symbol, l.Type)
		}
	}
}

func TestLiveQuotesJitterStaysBounded(t *testing.T) {
	repo := gridFixture()
	svc := NewOptionService(repo)

	listings, err := svc.LiveQuotes(context.Background(), &repository.OptionFilter{})
	if err != nil {
		t.Fatalf("LiveQuotes failed: %v", err)
	}

	by := map[string]entity.OptionListing{}
	for _, l := range repo.listings {
		by[l.Symbol] = l
	}

	for _, l := range listings {
		base := by[l.Symbol]
		low, high := base.CurrentPrice*0.98, base.CurrentPrice*1.02
		if l.CurrentPrice < low || l.CurrentPrice > high {
			t.Errorf("%s price %v drifted outside [%v, %v]", l.Symbol, l.CurrentPrice, low, high)
		}
	}
}
