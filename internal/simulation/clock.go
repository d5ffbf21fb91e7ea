package simulation

// Clock is a discrete period counter owned by one driver.
type Clock struct {
	now uint64
}

// Now returns the current period.
func (c *Clock) Now() uint64 {
	return c.now
}

// Advance moves to the next period and returns it.
func (c *Clock) Advance() uint64 {
	c.now++
	return c.now
}

// Reset rewinds the clock to period zero.
func (c *Clock) Reset() {
	c.now = 0
}
