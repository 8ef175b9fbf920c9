package sitemap

import "strings"

// blockedBots are crawlers excluded site-wide
var blockedBots = []string{
	"AhrefsBot",
	"SemrushBot",
	"MJ12bot",
	"DotBot",
	"PetalBot",
}

// GenerateRobotsTxt returns the fixed robots policy: allow-all with a
// small disallow list and a curated bot blocklist. No per-request
// computation happens here.
func (g *Generator) GenerateRobotsTxt() string {
	var b strings.Builder

	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Allow: /api/sitemap\n")
	b.WriteString("Allow: /api/robots\n")
	b.WriteString("\n")

	for _, bot := range blockedBots {
		b.WriteString("User-agent: " + bot + "\n")
		b.WriteString("Disallow: /\n")
		b.WriteString("\n")
	}

	b.WriteString("Sitemap: " + g.builder.Absolutize("/api/sitemap") + "\n")

	return b.String()
}
