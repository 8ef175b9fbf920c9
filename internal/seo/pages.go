package seo

import "github.com/praisepoint/site-api/internal/locale"

// PageCopy holds the localized title/description/keywords of a static page
type PageCopy struct {
	Title       string
	Description string
	Keywords    []string
}

// pageCopy is the static per-page, per-locale copy table. Keys are internal
// canonical paths; every entry carries both supported locales.
var pageCopy = map[string]map[locale.Locale]PageCopy{
	"/": {
		locale.English: {
			Title:       "Employee Recognition Platform",
			Description: "PraisePoint helps teams celebrate wins, recognize peers and build a culture people want to stay in.",
			Keywords:    []string{"employee recognition", "peer recognition", "company culture", "employee engagement"},
		},
		locale.Turkish: {
			Title:       "Çalışan Takdir Platformu",
			Description: "PraisePoint, ekiplerin başarıları kutlamasına, çalışanların birbirini takdir etmesine ve kalıcı bir şirket kültürü kurmasına yardımcı olur.",
			Keywords:    []string{"çalışan takdiri", "çalışan bağlılığı", "şirket kültürü"},
		},
	},
	"/pricing": {
		locale.English: {
			Title:       "Pricing",
			Description: "Simple per-seat pricing that scales with your team. Start free, upgrade when you grow.",
			Keywords:    []string{"pricing", "employee recognition pricing", "per-seat plans"},
		},
		locale.Turkish: {
			Title:       "Fiyatlandırma",
			Description: "Ekibinizle birlikte büyüyen, kullanıcı başına basit fiyatlandırma. Ücretsiz başlayın, büyüdükçe yükseltin.",
			Keywords:    []string{"fiyatlandırma", "çalışan takdir fiyatları"},
		},
	},
	"/about": {
		locale.English: {
			Title:       "About Us",
			Description: "We build tools that make appreciation a daily habit, not an annual review checkbox.",
			Keywords:    []string{"about", "company", "team"},
		},
		locale.Turkish: {
			Title:       "Hakkımızda",
			Description: "Takdiri yıllık değerlendirme formu değil, günlük bir alışkanlık haline getiren araçlar geliştiriyoruz.",
			Keywords:    []string{"hakkımızda", "şirket", "ekip"},
		},
	},
	"/contact": {
		locale.English: {
			Title:       "Contact",
			Description: "Talk to our team about rolling out recognition across your company.",
			Keywords:    []string{"contact", "demo", "sales"},
		},
		locale.Turkish: {
			Title:       "İletişim",
			Description: "Şirketinizde takdir kültürünü hayata geçirmek için ekibimizle görüşün.",
			Keywords:    []string{"iletişim", "demo", "satış"},
		},
	},
	"/features": {
		locale.English: {
			Title:       "Features",
			Description: "Peer-to-peer shoutouts, rewards, analytics and integrations that fit how your team already works.",
			Keywords:    []string{"features", "rewards", "analytics", "integrations"},
		},
		locale.Turkish: {
			Title:       "Özellikler",
			Description: "Ekibinizin çalışma şekline uyan takdir mesajları, ödüller, analizler ve entegrasyonlar.",
			Keywords:    []string{"özellikler", "ödüller", "analiz", "entegrasyonlar"},
		},
	},
	"/careers": {
		locale.English: {
			Title:       "Careers",
			Description: "Join a team that practices what it ships. See open roles at PraisePoint.",
			Keywords:    []string{"careers", "jobs", "hiring"},
		},
		locale.Turkish: {
			Title:       "Kariyer",
			Description: "Geliştirdiğini kendisi de yaşayan bir ekibe katılın. PraisePoint'teki açık pozisyonları görün.",
			Keywords:    []string{"kariyer", "iş ilanları"},
		},
	},
	"/privacy": {
		locale.English: {
			Title:       "Privacy Policy",
			Description: "How PraisePoint collects, uses and protects your personal information.",
			Keywords:    []string{"privacy policy", "data protection"},
		},
		locale.Turkish: {
			Title:       "Gizlilik Politikası",
			Description: "PraisePoint'in kişisel verilerinizi nasıl topladığı, kullandığı ve koruduğu.",
			Keywords:    []string{"gizlilik politikası", "veri koruma"},
		},
	},
	"/terms": {
		locale.English: {
			Title:       "Terms of Service",
			Description: "The terms and conditions governing your use of PraisePoint.",
			Keywords:    []string{"terms of service", "user agreement"},
		},
		locale.Turkish: {
			Title:       "Kullanım Koşulları",
			Description: "PraisePoint kullanımınızı düzenleyen şartlar ve koşullar.",
			Keywords:    []string{"kullanım koşulları", "kullanıcı sözleşmesi"},
		},
	},
}

// notFoundCopy is the copy of the dedicated 404 view
var notFoundCopy = map[locale.Locale]PageCopy{
	locale.English: {
		Title:       "Page Not Found",
		Description: "The page you are looking for does not exist.",
	},
	locale.Turkish: {
		Title:       "Sayfa Bulunamadı",
		Description: "Aradığınız sayfa mevcut değil.",
	},
}

// CopyFor returns the localized copy of a canonical page.
// The second return value reports whether the page is known.
func CopyFor(canonical string, l locale.Locale) (PageCopy, bool) {
	locales, ok := pageCopy[canonical]
	if !ok {
		return PageCopy{}, false
	}
	pc, ok := locales[l]
	if !ok {
		pc = locales[locale.Default]
	}
	return pc, true
}

// NotFoundCopy returns the localized copy of the 404 view
func NotFoundCopy(l locale.Locale) PageCopy {
	if pc, ok := notFoundCopy[l]; ok {
		return pc
	}
	return notFoundCopy[locale.Default]
}
