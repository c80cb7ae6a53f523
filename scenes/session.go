package scenes

// Session carries results from one scene to the next.
type Session struct {
	LastScore int
	LastLevel int
	Best      int
}
