package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShareText(t *testing.T) {
	text := ShareText("SpanischMitBelu", 30, ResolveBadge(30))

	assert.Equal(t, "🔥 ¡Llevo 30 días seguidos aprendiendo español con SpanischMitBelu! ⚡ Badge: Rayo. ¿Te animas?", text)
}

func TestShareTargets(t *testing.T) {
	targets := ShareTargets("¡Hola amigo!", "https://app.spanischmitbelu.com")
	require.Len(t, targets, 4)

	assert.Equal(t, "https://wa.me/?text=%C2%A1Hola%20amigo!%20https%3A%2F%2Fapp.spanischmitbelu.com", targets[0].URL)
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u=https%3A%2F%2Fapp.spanischmitbelu.com&quote=%C2%A1Hola%20amigo!", targets[1].URL)
	assert.Equal(t, "https://twitter.com/intent/tweet?text=%C2%A1Hola%20amigo!&url=https%3A%2F%2Fapp.spanischmitbelu.com", targets[2].URL)

	assert.Equal(t, ShareCopy, targets[3].ID)
	assert.Empty(t, targets[3].URL)
	assert.Equal(t, "¡Hola amigo! https://app.spanischmitbelu.com", targets[3].Clipboard)
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "a%20b%26c%3Dd", encodeURIComponent("a b&c=d"))
	assert.Equal(t, "(ok)*'!", encodeURIComponent("(ok)*'!"))
}
