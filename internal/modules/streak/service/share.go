package service

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	ShareWhatsApp = "whatsapp"
	ShareFacebook = "facebook"
	ShareX        = "x"
	ShareCopy     = "copy"
)

// ShareTarget is one button of the "Comparte tu racha" grid. Exactly one of
// URL (opened in a new tab) and Clipboard (written to the clipboard) is set.
type ShareTarget struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	URL       string `json:"url,omitempty"`
	Clipboard string `json:"clipboard,omitempty"`
}

// ShareText is the message posted when a learner shares their streak.
func ShareText(appName string, days int, badge Badge) string {
	return fmt.Sprintf("🔥 ¡Llevo %d días seguidos aprendiendo español con %s! %s Badge: %s. ¿Te animas?",
		days, appName, badge.Emoji, badge.Label)
}

// ShareTargets builds the messaging and social links for text and shareURL.
func ShareTargets(text, shareURL string) []ShareTarget {
	withURL := text + " " + shareURL
	return []ShareTarget{
		{
			ID:   ShareWhatsApp,
			Name: "WhatsApp",
			Icon: "💬",
			URL:  "https://wa.me/?text=" + encodeURIComponent(withURL),
		},
		{
			ID:   ShareFacebook,
			Name: "Facebook",
			Icon: "📘",
			URL:  "https://www.facebook.com/sharer/sharer.php?u=" + encodeURIComponent(shareURL) + "&quote=" + encodeURIComponent(text),
		},
		{
			ID:   ShareX,
			Name: "X",
			Icon: "𝕏",
			URL:  "https://twitter.com/intent/tweet?text=" + encodeURIComponent(text) + "&url=" + encodeURIComponent(shareURL),
		},
		{
			ID:        ShareCopy,
			Name:      "Copiar",
			Icon:      "📋",
			Clipboard: withURL,
		},
	}
}

// encodeURIComponent escapes like the browser function of the same name:
// spaces become %20 and !'()* stay literal.
func encodeURIComponent(s string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
	return componentUnescaper.Replace(escaped)
}

var componentUnescaper = strings.NewReplacer(
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
