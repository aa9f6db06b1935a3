package webpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutedParamWins(t *testing.T) {
	id := Resolve(
		FromParam("baan-01"),
		FromPathRegex("/houses/other-id", "houses"),
		FromPathSplit("/houses/other-id", "houses"),
	)
	assert.Equal(t, "baan-01", id)
}

func TestRegexFallbackWhenParamMissing(t *testing.T) {
	id := Resolve(
		FromParam(""),
		FromPathRegex("/houses/baan-02/", "houses"),
		FromPathSplit("/houses/baan-02/", "houses"),
	)
	assert.Equal(t, "baan-02", id)
}

func TestRawSplitFallback(t *testing.T) {
	// a path the regex does not match: section not directly before the id
	id := Resolve(
		FromParam(""),
		FromPathRegex("/th/gallery/sub/work-3", "gallery"),
		FromPathSplit("/th/gallery/sub/work-3", "gallery"),
	)
	assert.Equal(t, "work-3", id)
}

func TestResolveEmptyWhenNothingMatches(t *testing.T) {
	id := Resolve(
		FromParam("  "),
		FromPathRegex("/about", "houses"),
		FromPathSplit("/houses/", "houses"),
	)
	assert.Equal(t, "", id)
}

func TestFromPathRegexIgnoresTrailingSlash(t *testing.T) {
	assert.Equal(t, "work-9", FromPathRegex("/gallery/work-9/", "gallery")())
	assert.Equal(t, "work-9", FromPathRegex("/gallery/work-9", "gallery")())
	assert.Equal(t, "", FromPathRegex("/gallery/", "gallery")())
}
