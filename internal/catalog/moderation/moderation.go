// Package moderation decides the initial publication status of a product
// from its textual content. The rule is a pure function so it can be tested
// exhaustively without a database.
package moderation

import (
	"strings"

	"github.com/ispanshop/catalog-service/internal/catalog/domain"
)

// bannedKeywords are prohibited-goods terms. A match anywhere in the
// normalized name+description rejects the product outright.
var bannedKeywords = []string{
	"高仿", "原單", "槍械", "毒品", "贗品", "假貨", "冒牌", "盜版",
	"走私", "非法", "詐騙", "傳銷", "洗錢", "賭博", "色情",
	"暴力", "恐怖", "炸藥", "刀具", "槍", "彈藥",
}

// minDescriptionLen is the trimmed description length below which a product
// cannot be auto-published.
const minDescriptionLen = 10

// Evaluate computes the initial status for a product. The banned-keyword
// check always takes precedence over the description-length check.
func Evaluate(name string, description *string) domain.ProductStatus {
	desc := ""
	if description != nil {
		desc = *description
	}

	combined := strings.ToLower(name + " " + desc)
	for _, keyword := range bannedKeywords {
		if strings.Contains(combined, strings.ToLower(keyword)) {
			return domain.StatusRejected
		}
	}

	if len([]rune(strings.TrimSpace(desc))) < minDescriptionLen {
		// Not enough information to auto-publish
		return domain.StatusPendingReview
	}

	return domain.StatusPublished
}

// AllowedBatchTarget reports whether status is a permitted bulk target.
// Bulk updates may only publish or unlist.
func AllowedBatchTarget(status domain.ProductStatus) bool {
	return status == domain.StatusPublished || status == domain.StatusUnlisted
}
