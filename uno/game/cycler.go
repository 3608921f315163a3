package game

const (
	left  = -1
	right = 1
)

// Cycler tracks whose turn it is and which way play goes.
type Cycler struct {
	count     int
	current   int
	direction int
}

func NewCycler(count int) *Cycler {
	return &Cycler{
		count:     count,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Count() int {
	return c.count
}

// Peek returns the seat that Next would move to without moving.
func (c *Cycler) Peek(skip int) int {
	return PickNextPlayer(c.current, c.direction, c.count, skip)
}

func (c *Cycler) Next(skip int) int {
	c.current = c.Peek(skip)
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

func (c *Cycler) ForEach(function func(index int)) {
	for index := 0; index < c.count; index++ {
		function(index)
	}
}
