package assistant

import (
	"fmt"
	"strings"

	"github.com/praisepoint/site-api/internal/locale"
)

// Reply is the canned assistant response
type Reply struct {
	Reply  string        `json:"reply"`
	Locale locale.Locale `json:"locale"`
}

// replyTemplates holds the per-locale canned response. This is a stub, not
// a model integration: the prompt is echoed into a fixed template.
var replyTemplates = map[locale.Locale]string{
	locale.English: "Thanks for your question about %q! Our team typically answers within one business day. In the meantime, the pricing and features pages cover most common questions.",
	locale.Turkish: "%q hakkındaki sorunuz için teşekkürler! Ekibimiz genellikle bir iş günü içinde yanıt verir. Bu arada fiyatlandırma ve özellikler sayfaları en sık sorulan soruları yanıtlıyor.",
}

// BuildReply produces the templated reply for a prompt and locale
func BuildReply(prompt string, l locale.Locale) Reply {
	if !locale.IsSupported(l) {
		l = locale.Default
	}

	prompt = strings.TrimSpace(prompt)
	if runes := []rune(prompt); len(runes) > 200 {
		prompt = string(runes[:200]) + "…"
	}

	return Reply{
		Reply:  fmt.Sprintf(replyTemplates[l], prompt),
		Locale: l,
	}
}
