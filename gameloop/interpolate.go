package gameloop

// Lerp linearly interpolates between the previous and current value of a
// simulated quantity. With the alpha passed to Game.Render it reconstructs
// where the quantity is "now", between the last two completed steps:
//
//	drawX := gameloop.Lerp(prev.X, curr.X, alpha)
//
// Callers keep prev and curr as two independent snapshots swapped each step,
// never aliased, so a step can overwrite curr without corrupting prev.
func Lerp(prev, curr, alpha float64) float64 {
	return prev + (curr-prev)*alpha
}
