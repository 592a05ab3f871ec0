package command

import (
	userdomain "github.com/studex/marketplace/internal/user/domain"
)

// Credit points earned for contributing to the marketplace.
const (
	UploadCreditAward = 5
	ReviewCreditAward = 2
)

func awardUploadCredits(uploader *userdomain.User) {
	// AddCreditPoints only fails on non-positive amounts.
	_ = uploader.AddCreditPoints(UploadCreditAward)
}

func awardReviewCredits(reviewer *userdomain.User) {
	_ = reviewer.AddCreditPoints(ReviewCreditAward)
}
