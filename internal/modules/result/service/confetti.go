package service

import (
	"math/rand/v2"

	"spanischmitbelu.com/gamification/internal/modules/result/dto"
)

const confettiCount = 20

var confettiEmojis = []string{"🎉", "⭐", "✨", "🌟"}

// Confetti scatters n particles over the screen: a random horizontal
// position, up to 20px above the top edge, up to 1.5s delay and a 12-24px
// glyph.
func Confetti(n int, rng *rand.Rand) []dto.ConfettiParticle {
	particles := make([]dto.ConfettiParticle, n)
	for i := range particles {
		particles[i] = dto.ConfettiParticle{
			LeftPct:    rng.Float64() * 100,
			TopPx:      -rng.Float64() * 20,
			DelaySec:   rng.Float64() * 1.5,
			FontSizePx: 12 + rng.Float64()*12,
			Emoji:      confettiEmojis[rng.IntN(len(confettiEmojis))],
		}
	}
	return particles
}
