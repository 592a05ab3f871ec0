package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/studex/marketplace/internal/errs"
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

const maxReviewComment = 1000

// Review is an immutable rating one party of a transaction leaves for
// the other.
type Review struct {
	id        string
	rating    int
	comment   string
	reviewer  *userdomain.User
	reviewed  *userdomain.User
	createdAt time.Time
}

// NewReview validates and creates a review. Whether reviewer and
// reviewed actually belong to a transaction is checked when the review
// is attached.
func NewReview(id string, rating int, comment string, reviewer, reviewed *userdomain.User, now time.Time) (*Review, error) {
	if id == "" {
		return nil, errs.Validationf("review id is required")
	}
	if rating < 1 || rating > 5 {
		return nil, errs.Validationf("rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if utf8.RuneCountInString(comment) > maxReviewComment {
		return nil, errs.Validationf("comment must not exceed %d characters", maxReviewComment)
	}
	if reviewer == nil || reviewed == nil {
		return nil, errs.Validationf("reviewer and reviewed are required")
	}
	if reviewer == reviewed {
		return nil, errs.Validationf("users cannot review themselves")
	}
	return &Review{
		id:        id,
		rating:    rating,
		comment:   comment,
		reviewer:  reviewer,
		reviewed:  reviewed,
		createdAt: now,
	}, nil
}

func (r *Review) ReviewID() string           { return r.id }
func (r *Review) Rating() int                { return r.rating }
func (r *Review) Comment() string            { return r.comment }
func (r *Review) Reviewer() *userdomain.User { return r.reviewer }
func (r *Review) Reviewed() *userdomain.User { return r.reviewed }
func (r *Review) CreatedAt() time.Time       { return r.createdAt }
