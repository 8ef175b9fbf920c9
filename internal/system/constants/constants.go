package constants

const (
	CacheControlHeaderName = "Cache-Control"
	ContentTypeJSON        = "application/json"
	ContentTypeXML         = "application/xml"
	ContentTypePlainText   = "text/plain"

	// Cache policy shared by the sitemap and robots endpoints
	SitemapCacheControl = "public, s-maxage=86400, stale-while-revalidate"
)
