package game

// Logical resolution of the playfield. The window is an integer upscale of
// this; all simulation coordinates live in this space.
const (
	logicalWidth  = 512
	logicalHeight = 256
	windowScale   = 2
)

// Court layout. The court rectangle is what the ball and paddles bounce
// inside; the goal strips overlap its left and right margins.
const (
	courtX = 20.0
	courtY = 15.0
	courtW = 482.0
	courtH = 221.0

	outerMargin   = 20.0 // despawn bound margin around the court
	wallThickness = 10.0

	goalWidth = 10.0
)

// Paddle and ball placement.
const (
	paddleW = 10.0
	paddleH = 50.0
	ballW   = 10.0
	ballH   = 10.0

	playerStartX = 30.0
	botStartX    = 472.0
	paddleStartY = 128.0

	ballSpawnX = 256.0
	ballSpawnY = 128.0
)

func courtRect() Rect {
	return NewRect(courtX, courtY, courtW, courtH)
}

// outerRect is the despawn bound. The origin moves out by the margin but
// the size only grows by the same margin, so the slack sits entirely on the
// left and top; the right and bottom edges coincide with the court's own.
// The ball clamp parks right- and bottom-escapes just past the court, which
// is what makes those two edges respawn and the other two not.
func outerRect() Rect {
	return NewRect(courtX-outerMargin, courtY-outerMargin, courtW+outerMargin, courtH+outerMargin)
}

// Goal strips span the full logical height so a ball escaping above or
// below the court mouth still registers once it drifts sideways.
func leftGoalRect() Rect {
	return NewRect(courtX, 0, goalWidth, logicalHeight)
}

func rightGoalRect() Rect {
	return NewRect(courtX+courtW-goalWidth, 0, goalWidth, logicalHeight)
}

// courtWallRects returns the static white geometry drawn behind the match:
// four border strips and the centre line.
func courtWallRects() []Rect {
	w := float64(logicalWidth)
	h := float64(logicalHeight)
	t := wallThickness
	return []Rect{
		NewRect(t, t, t, h-2*t),       // left border
		NewRect(t, t, w-2*t, t),       // top border
		NewRect(w-2*t, t, t, h-2*t),   // right border
		NewRect(t, h-2*t, w-2*t, t),   // bottom border
		NewRect(w/2-t/2, t, t, h-2*t), // centre line
	}
}
