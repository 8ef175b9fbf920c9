package seo

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationLD(t *testing.T) {
	b := testBuilder()

	org := b.OrganizationLD("hello@praisepoint.com", "2021", []string{"https://www.linkedin.com/company/praisepoint"})

	assert.Equal(t, "https://schema.org", org.Context)
	assert.Equal(t, "Organization", org.Type)
	assert.Equal(t, "PraisePoint", org.Name)
	assert.Equal(t, "https://www.praisepoint.com", org.URL)
	assert.Equal(t, "https://www.praisepoint.com/images/logo.png", org.Logo)
}

func TestFAQLD(t *testing.T) {
	b := testBuilder()

	faq := b.FAQLD([]QA{
		{Question: "Is there a free plan?", Answer: "Yes, up to 25 teammates."},
		{Question: "Can I cancel anytime?", Answer: "Yes, no long-term contracts."},
	})

	require.Len(t, faq.MainEntity, 2)
	assert.Equal(t, "FAQPage", faq.Type)
	assert.Equal(t, "Question", faq.MainEntity[0].Type)
	assert.Equal(t, "Is there a free plan?", faq.MainEntity[0].Name)
	assert.Equal(t, "Answer", faq.MainEntity[0].AcceptedAnswer.Type)
	assert.Equal(t, "Yes, up to 25 teammates.", faq.MainEntity[0].AcceptedAnswer.Text)
}

func TestBreadcrumbLD(t *testing.T) {
	b := testBuilder()

	trail := b.BreadcrumbLD([]Crumb{
		{Name: "Home", Path: "/en"},
		{Name: "Pricing", Path: "/en/pricing"},
	})

	require.Len(t, trail.ItemListElement, 2)
	assert.Equal(t, 1, trail.ItemListElement[0].Position)
	assert.Equal(t, 2, trail.ItemListElement[1].Position)
	assert.Equal(t, "https://www.praisepoint.com/en/pricing", trail.ItemListElement[1].Item)
}

// Struct-based builders keep the emitted field order stable
func TestJSONLD_StableFieldOrdering(t *testing.T) {
	b := testBuilder()

	raw, err := json.Marshal(b.ProductLD("Recognition platform."))
	require.NoError(t, err)

	s := string(raw)
	assert.True(t, strings.Index(s, "@context") < strings.Index(s, "@type"))
	assert.True(t, strings.Index(s, "@type") < strings.Index(s, "name"))
}
