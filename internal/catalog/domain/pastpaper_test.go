package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

func validPastPaperParams(uploader *userdomain.User) PastPaperParams {
	return PastPaperParams{
		ListingParams: ListingParams{
			ID:       "ITM-000003",
			Title:    "Physics Past Papers 2020-2023",
			Uploader: uploader,
			Category: "Science",
			Grade:    "A-Level",
			Subject:  "Physics",
		},
		SaleParams: SaleParams{
			Price:       400,
			MarketPrice: 600,
			Condition:   "new",
		},
		ExamBoard:     "Cambridge",
		Year:          2023,
		HasAnswers:    true,
		TotalPapers:   8,
		IsCompilation: true,
		SubjectCode:   "9702",
	}
}

func TestNewPastPaperValidation(t *testing.T) {
	uploader := testUploader(t)
	now := time.Now()

	tests := []struct {
		name   string
		mutate func(*PastPaperParams)
	}{
		{"missing exam board", func(p *PastPaperParams) { p.ExamBoard = " " }},
		{"year too old", func(p *PastPaperParams) { p.Year = 1899 }},
		{"year too far ahead", func(p *PastPaperParams) { p.Year = now.Year() + 2 }},
		{"zero papers", func(p *PastPaperParams) { p.TotalPapers = 0 }},
		{"too many papers", func(p *PastPaperParams) { p.TotalPapers = 51 }},
		{"compilation of one", func(p *PastPaperParams) { p.IsCompilation = true; p.TotalPapers = 1 }},
		{"subject code too short", func(p *PastPaperParams) { p.SubjectCode = "9" }},
		{"subject code too long", func(p *PastPaperParams) { p.SubjectCode = "97029702970" }},
		{"subject code not alphanumeric", func(p *PastPaperParams) { p.SubjectCode = "97-02" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPastPaperParams(uploader)
			tt.mutate(&p)
			if _, err := NewPastPaper(p, now); !errors.Is(err, errs.ErrValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}

	// Next year's papers are allowed; exam boards publish ahead.
	p := validPastPaperParams(uploader)
	p.Year = now.Year() + 1
	if _, err := NewPastPaper(p, now); err != nil {
		t.Errorf("next year must be allowed, got %v", err)
	}
}

func TestPastPaperIsCompilationDerived(t *testing.T) {
	uploader := testUploader(t)

	p := validPastPaperParams(uploader)
	p.TotalPapers = 1
	p.IsCompilation = false
	single, err := NewPastPaper(p, time.Now())
	if err != nil {
		t.Fatalf("NewPastPaper: %v", err)
	}
	if single.IsCompilation() {
		t.Error("a single paper is not a compilation")
	}

	multi, err := NewPastPaper(validPastPaperParams(uploader), time.Now())
	if err != nil {
		t.Fatalf("NewPastPaper: %v", err)
	}
	if !multi.IsCompilation() {
		t.Error("eight papers must count as a compilation")
	}
}

func TestPastPaperMatchesSearch(t *testing.T) {
	paper, err := NewPastPaper(validPastPaperParams(testUploader(t)), time.Now())
	if err != nil {
		t.Fatalf("NewPastPaper: %v", err)
	}

	tests := []struct {
		keyword string
		want    bool
	}{
		{"physics", true},
		{"cambridge", true}, // exam board
		{"9702", true},      // subject code
		{"2023", true},      // year
		{"edexcel", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := paper.MatchesSearch(tt.keyword); got != tt.want {
			t.Errorf("MatchesSearch(%q) = %v, want %v", tt.keyword, got, tt.want)
		}
	}
}
