package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/studex/marketplace/internal/errs"
)

const (
	minPaperYear   = 1900
	maxTotalPapers = 50
)

// PastPaper is a for-sale listing of past exam papers.
type PastPaper struct {
	listing
	saleInfo

	examBoard   string
	year        int
	hasAnswers  bool
	hasModel    bool
	solved      bool
	totalPapers int
	subjectCode string
}

// PastPaperParams are the constructor inputs for a past paper.
type PastPaperParams struct {
	ListingParams
	SaleParams

	ExamBoard     string
	Year          int
	HasAnswers    bool
	HasModelPaper bool
	Solved        bool
	TotalPapers   int
	IsCompilation bool
	SubjectCode   string
}

func isAlnum(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// NewPastPaper validates and creates a past-paper listing.
func NewPastPaper(p PastPaperParams, now time.Time) (*PastPaper, error) {
	base, err := newListing(p.ListingParams, now)
	if err != nil {
		return nil, fmt.Errorf("past paper: %w", err)
	}
	sale, err := newSaleInfo(p.SaleParams)
	if err != nil {
		return nil, fmt.Errorf("past paper: %w", err)
	}
	if strings.TrimSpace(p.ExamBoard) == "" {
		return nil, errs.Validationf("past paper: exam board is required")
	}
	maxYear := now.Year() + 1
	if p.Year < minPaperYear || p.Year > maxYear {
		return nil, errs.Validationf("past paper: year must be between %d and %d", minPaperYear, maxYear)
	}
	if p.TotalPapers < 1 || p.TotalPapers > maxTotalPapers {
		return nil, errs.Validationf("past paper: total papers must be between 1 and %d", maxTotalPapers)
	}
	if p.IsCompilation && p.TotalPapers < 2 {
		return nil, errs.Validationf("past paper: a compilation needs more than one paper")
	}
	code := strings.TrimSpace(p.SubjectCode)
	if len(code) < 2 || len(code) > 10 || !isAlnum(code) {
		return nil, errs.Validationf("past paper: subject code must be 2-10 alphanumeric characters")
	}
	return &PastPaper{
		listing:     base,
		saleInfo:    sale,
		examBoard:   strings.TrimSpace(p.ExamBoard),
		year:        p.Year,
		hasAnswers:  p.HasAnswers,
		hasModel:    p.HasModelPaper,
		solved:      p.Solved,
		totalPapers: p.TotalPapers,
		subjectCode: code,
	}, nil
}

func (p *PastPaper) ExamBoard() string   { return p.examBoard }
func (p *PastPaper) Year() int           { return p.year }
func (p *PastPaper) HasAnswers() bool    { return p.hasAnswers }
func (p *PastPaper) HasModelPaper() bool { return p.hasModel }
func (p *PastPaper) IsSolved() bool      { return p.solved }
func (p *PastPaper) TotalPapers() int    { return p.totalPapers }
func (p *PastPaper) SubjectCode() string { return p.subjectCode }

// IsCompilation reports whether this listing bundles multiple papers.
func (p *PastPaper) IsCompilation() bool { return p.totalPapers > 1 }

// Details returns a human-readable summary of the past paper.
func (p *PastPaper) Details() string {
	if !p.valid() {
		return p.invalidDetails()
	}
	extras := make([]string, 0, 3)
	if p.hasAnswers {
		extras = append(extras, "answers")
	}
	if p.hasModel {
		extras = append(extras, "model paper")
	}
	if p.solved {
		extras = append(extras, "solved")
	}
	extra := "unsolved"
	if len(extras) > 0 {
		extra = strings.Join(extras, ", ")
	}
	return fmt.Sprintf("%s %d %s (%s, %d papers, %s) - Rs.%.2f [%s]",
		p.examBoard, p.year, p.subjectCode, extra, p.totalPapers, p.title, p.price, p.availability())
}

// MatchesSearch checks the common fields first, then exam board,
// subject code and year.
func (p *PastPaper) MatchesSearch(keyword string) bool {
	if p.matchesSearch(keyword) {
		return true
	}
	kw := strings.ToLower(strings.TrimSpace(keyword))
	if kw == "" {
		return false
	}
	return strings.Contains(strings.ToLower(p.examBoard), kw) ||
		strings.Contains(strings.ToLower(p.subjectCode), kw) ||
		strings.Contains(strconv.Itoa(p.year), kw)
}
