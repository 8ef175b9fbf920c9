package seo

// JSON-LD structured data builders. Structs rather than maps keep the
// emitted field order stable across runs.

// Organization is the schema.org Organization record for the company
type Organization struct {
	Context      string   `json:"@context"`
	Type         string   `json:"@type"`
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Logo         string   `json:"logo"`
	Email        string   `json:"email,omitempty"`
	FoundingDate string   `json:"foundingDate,omitempty"`
	SameAs       []string `json:"sameAs,omitempty"`
}

// WebSite is the schema.org WebSite record
type WebSite struct {
	Context string `json:"@context"`
	Type    string `json:"@type"`
	Name    string `json:"name"`
	URL     string `json:"url"`
	InLang  string `json:"inLanguage"`
}

// Offer is a schema.org Offer nested inside Product
type Offer struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Category      string `json:"category"`
}

// Product is the schema.org SoftwareApplication record for the SaaS product
type Product struct {
	Context             string `json:"@context"`
	Type                string `json:"@type"`
	Name                string `json:"name"`
	ApplicationCategory string `json:"applicationCategory"`
	OperatingSystem     string `json:"operatingSystem"`
	URL                 string `json:"url"`
	Description         string `json:"description"`
	Offers              Offer  `json:"offers"`
}

// QA is a question/answer pair for FAQ structured data
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQQuestion is a schema.org Question inside an FAQPage
type FAQQuestion struct {
	Type           string    `json:"@type"`
	Name           string    `json:"name"`
	AcceptedAnswer FAQAnswer `json:"acceptedAnswer"`
}

// FAQAnswer is a schema.org Answer
type FAQAnswer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// FAQPage is a schema.org FAQPage record
type FAQPage struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	MainEntity []FAQQuestion `json:"mainEntity"`
}

// Crumb is one entry of a breadcrumb trail
type Crumb struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// BreadcrumbItem is a schema.org ListItem inside a BreadcrumbList
type BreadcrumbItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

// BreadcrumbList is a schema.org BreadcrumbList record
type BreadcrumbList struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []BreadcrumbItem `json:"itemListElement"`
}

const schemaContext = "https://schema.org"

// OrganizationLD returns the fixed Organization structured data
func (b *Builder) OrganizationLD(contactEmail string, foundingYear string, profiles []string) Organization {
	return Organization{
		Context:      schemaContext,
		Type:         "Organization",
		Name:         b.siteName,
		URL:          b.origin,
		Logo:         b.Absolutize("/images/logo.png"),
		Email:        contactEmail,
		FoundingDate: foundingYear,
		SameAs:       profiles,
	}
}

// WebSiteLD returns the fixed WebSite structured data for a locale
func (b *Builder) WebSiteLD(lang string) WebSite {
	return WebSite{
		Context: schemaContext,
		Type:    "WebSite",
		Name:    b.siteName,
		URL:     b.origin,
		InLang:  lang,
	}
}

// ProductLD returns the fixed product structured data
func (b *Builder) ProductLD(description string) Product {
	return Product{
		Context:             schemaContext,
		Type:                "SoftwareApplication",
		Name:                b.siteName,
		ApplicationCategory: "BusinessApplication",
		OperatingSystem:     "Web",
		URL:                 b.origin,
		Description:         description,
		Offers: Offer{
			Type:          "Offer",
			Price:         "0",
			PriceCurrency: "USD",
			Category:      "SaaS",
		},
	}
}

// FAQLD transforms question/answer pairs into FAQPage structured data
func (b *Builder) FAQLD(items []QA) FAQPage {
	questions := make([]FAQQuestion, 0, len(items))
	for _, item := range items {
		questions = append(questions, FAQQuestion{
			Type: "Question",
			Name: item.Question,
			AcceptedAnswer: FAQAnswer{
				Type: "Answer",
				Text: item.Answer,
			},
		})
	}
	return FAQPage{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: questions,
	}
}

// BreadcrumbLD transforms a breadcrumb trail into BreadcrumbList
// structured data with absolute item URLs
func (b *Builder) BreadcrumbLD(crumbs []Crumb) BreadcrumbList {
	items := make([]BreadcrumbItem, 0, len(crumbs))
	for i, crumb := range crumbs {
		items = append(items, BreadcrumbItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     crumb.Name,
			Item:     b.Absolutize(crumb.Path),
		})
	}
	return BreadcrumbList{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}
