package util

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

func GenerateUserID() string {
	return shortuuid.New()
}

func GenerateItemID() string {
	return shortuuid.New()
}

func GenerateBidID() string {
	return shortuuid.New()
}

func GenerateOrderID() string {
	return shortuuid.New()
}

// GenerateListingSlug builds a URL slug from a listing title with a short
// random suffix so that two listings with the same title never collide.
func GenerateListingSlug(title string) string {
	baseSlug := slug.Make(title)
	shortID := shortuuid.New()[:8]

	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}
