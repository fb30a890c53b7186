package domain_test

import (
	"testing"

	"conversation-funnel-service/internal/funnel/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf(t *testing.T) {
	assert.Equal(t, domain.CategoryStart, domain.CategoryOf("startMessage_C"))
	assert.Equal(t, domain.CategorySecond, domain.CategoryOf("secondMessageFollowUp"))
	assert.Equal(t, domain.CategoryFinal, domain.CategoryOf("finalMessage_D"))
	assert.Equal(t, domain.CategoryClosing, domain.CategoryOf("goodByeMessage_afterNotInterested"))
	assert.Equal(t, domain.CategoryNone, domain.CategoryOf("phoneFollowUp"))
	assert.Equal(t, domain.CategoryNone, domain.CategoryOf("somethingElse"))
	assert.Equal(t, domain.CategoryNone, domain.CategoryOf(""))
}

func TestEveryTagHasExactlyOneCategory(t *testing.T) {
	seen := map[string]int{}
	for _, cat := range []domain.Category{domain.CategoryStart, domain.CategorySecond, domain.CategoryFinal, domain.CategoryClosing} {
		for _, tag := range domain.CategoryTags(cat) {
			seen[tag]++
			assert.Equal(t, cat, domain.CategoryOf(tag), tag)
		}
	}
	for tag, n := range seen {
		assert.Equal(t, 1, n, tag)
	}
	assert.Len(t, domain.AllTags(), len(seen)+1)
}

func TestConversionTags_ExcludeFollowUps(t *testing.T) {
	assert.Equal(t, []string{"secondMessage_A", "secondMessage_B", "secondMessage_C", "secondMessage_D"},
		domain.ConversionTags(domain.CategorySecond))
	assert.NotContains(t, domain.ConversionTags(domain.CategoryFinal), domain.TagFinalFollowUp)
	assert.Len(t, domain.ConversionTags(domain.CategoryStart), 5)
	assert.Empty(t, domain.ConversionTags(domain.CategoryClosing))
}

func TestConversionTags_ReturnsCopy(t *testing.T) {
	tags := domain.ConversionTags(domain.CategoryStart)
	tags[0] = "mutated"
	assert.Equal(t, domain.TagStartA, domain.ConversionTags(domain.CategoryStart)[0])
}

func TestParseCategory(t *testing.T) {
	c, ok := domain.ParseCategory("final")
	assert.True(t, ok)
	assert.Equal(t, domain.CategoryFinal, c)

	_, ok = domain.ParseCategory("closing")
	assert.False(t, ok)
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Lead Creado", domain.TagLabel(domain.TagLeadCreated))
	assert.Equal(t, "unknownTag", domain.TagLabel("unknownTag"))
	assert.Equal(t, "Second Messages", domain.CategoryLabel(domain.CategorySecond))
	assert.True(t, domain.IsKnownTag(domain.TagPhoneFollowUp))
	assert.False(t, domain.IsKnownTag("startMessage_Z"))
}
