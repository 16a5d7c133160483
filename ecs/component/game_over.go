package component

// GameOver is spawned when the round is lost. It carries the final score
// so the game-over screen can be built without reaching into the session.
type GameOver struct {
	Score uint64
}

var GameOverComponent = NewComponent[GameOver]()
