package domain

type Category string

const (
	CategoryNone    Category = ""
	CategoryStart   Category = "start"
	CategorySecond  Category = "second"
	CategoryFinal   Category = "final"
	CategoryClosing Category = "closing"
)

const (
	TagStartA = "startMessage_A"
	TagStartB = "startMessage_B"
	TagStartC = "startMessage_C"
	TagStartD = "startMessage_D"
	TagStartE = "startMessage_E"

	TagSecondA        = "secondMessage_A"
	TagSecondB        = "secondMessage_B"
	TagSecondC        = "secondMessage_C"
	TagSecondD        = "secondMessage_D"
	TagSecondFollowUp = "secondMessageFollowUp"

	TagFinalA        = "finalMessage_A"
	TagFinalB        = "finalMessage_B"
	TagFinalC        = "finalMessage_C"
	TagFinalD        = "finalMessage_D"
	TagFinalFollowUp = "finalMessageFollowUp"

	TagLeadCreated   = "goodByeMessage_afterLeadCreated"
	TagJustContent   = "goodByeMessage_afterJustContent"
	TagNotInterested = "goodByeMessage_afterNotInterested"
	TagPhoneFollowUp = "phoneFollowUp"
)

// FunnelCategories are the categories a conversion analysis can be run on, in funnel order.
var FunnelCategories = []Category{CategoryStart, CategorySecond, CategoryFinal}

var categoryTags = map[Category][]string{
	CategoryStart:   {TagStartA, TagStartB, TagStartC, TagStartD, TagStartE},
	CategorySecond:  {TagSecondA, TagSecondB, TagSecondC, TagSecondD, TagSecondFollowUp},
	CategoryFinal:   {TagFinalA, TagFinalB, TagFinalC, TagFinalD, TagFinalFollowUp},
	CategoryClosing: {TagLeadCreated, TagJustContent, TagNotInterested},
}

// follow-ups are excluded from rate comparison
var conversionTags = map[Category][]string{
	CategoryStart:  {TagStartA, TagStartB, TagStartC, TagStartD, TagStartE},
	CategorySecond: {TagSecondA, TagSecondB, TagSecondC, TagSecondD},
	CategoryFinal:  {TagFinalA, TagFinalB, TagFinalC, TagFinalD},
}

var tagCategory = buildTagCategory()

func buildTagCategory() map[string]Category {
	m := make(map[string]Category, 20)
	for cat, tags := range categoryTags {
		for _, t := range tags {
			m[t] = cat
		}
	}
	m[TagPhoneFollowUp] = CategoryNone
	return m
}

// CategoryOf returns the category of tag, CategoryNone for untagged,
// uncategorised or unknown tags.
func CategoryOf(tag string) Category {
	return tagCategory[tag]
}

// IsKnownTag reports whether tag is part of the taxonomy.
func IsKnownTag(tag string) bool {
	_, ok := tagCategory[tag]
	return ok
}

// CategoryTags returns a copy of every tag in cat.
func CategoryTags(cat Category) []string {
	return append([]string(nil), categoryTags[cat]...)
}

// ConversionTags returns a copy of the tags of cat used for rate comparison.
func ConversionTags(cat Category) []string {
	return append([]string(nil), conversionTags[cat]...)
}

// ParseCategory maps s to a funnel category. ok is false for anything else.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryStart, CategorySecond, CategoryFinal:
		return Category(s), true
	}
	return CategoryNone, false
}

var tagLabels = map[string]string{
	TagStartA:         "Start A",
	TagStartB:         "Start B",
	TagStartC:         "Start C",
	TagStartD:         "Start D",
	TagStartE:         "Start E",
	TagSecondA:        "Second A",
	TagSecondB:        "Second B",
	TagSecondC:        "Second C",
	TagSecondD:        "Second D",
	TagSecondFollowUp: "Second Follow-up",
	TagFinalA:         "Final A",
	TagFinalB:         "Final B",
	TagFinalC:         "Final C",
	TagFinalD:         "Final D",
	TagFinalFollowUp:  "Final Follow-up",
	TagLeadCreated:    "Lead Creado",
	TagJustContent:    "Solo Contenido",
	TagNotInterested:  "No Interesado",
	TagPhoneFollowUp:  "Pedir Teléfono",
}

var categoryLabels = map[Category]string{
	CategoryStart:   "Start Messages",
	CategorySecond:  "Second Messages",
	CategoryFinal:   "Final Messages",
	CategoryClosing: "Closing Messages",
}

// TagLabel returns the display label of tag, or tag itself when it has none.
func TagLabel(tag string) string {
	if l, ok := tagLabels[tag]; ok {
		return l
	}
	return tag
}

func CategoryLabel(cat Category) string {
	if l, ok := categoryLabels[cat]; ok {
		return l
	}
	return string(cat)
}

// AllTags lists the taxonomy in funnel order.
func AllTags() []string {
	var out []string
	for _, cat := range []Category{CategoryStart, CategorySecond, CategoryFinal, CategoryClosing} {
		out = append(out, categoryTags[cat]...)
	}
	return append(out, TagPhoneFollowUp)
}
