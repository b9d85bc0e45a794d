package listview

import (
	"context"
	"sync"

	logrus "github.com/sirupsen/logrus"
)

// Option is one dropdown entry.
type Option struct {
	ID    int
	Label string
}

// LoaderFunc fetches the option list of a level scoped to its parent's id.
type LoaderFunc func(ctx context.Context, parentID int) ([]Option, error)

// Level is one dropdown in a dependent chain, e.g. organization → site →
// department. The top level has no loader parent; its options are loaded
// with parentID 0.
type Level struct {
	Name    string
	loader  LoaderFunc
	value   int
	options []Option
}

// Cascade chains 2–3 dependent dropdowns. Selecting a value at one level
// clears every deeper level's value and options before the immediate child
// list is refetched; deeper levels stay empty until their own parent is
// selected.
type Cascade struct {
	mu     sync.Mutex
	levels []*Level
}

// NewCascade builds a chain from ordered (name, loader) pairs.
func NewCascade(levels ...*Level) *Cascade {
	return &Cascade{levels: levels}
}

// NewLevel declares one dropdown of the chain.
func NewLevel(name string, loader LoaderFunc) *Level {
	return &Level{Name: name, loader: loader}
}

// LoadRoot populates the top level's options.
func (c *Cascade) LoadRoot(ctx context.Context) error {
	if len(c.levels) == 0 {
		return nil
	}
	opts, err := c.levels[0].loader(ctx, 0)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.levels[0].options = opts
	c.mu.Unlock()
	return nil
}

// Select records a value at the given level. Children are cleared
// synchronously with the selection; the immediate child's options are then
// refetched, unless the selection was unset (id 0), in which case the child
// list stays empty.
func (c *Cascade) Select(ctx context.Context, level int, id int) error {
	if level < 0 || level >= len(c.levels) {
		return nil
	}

	c.mu.Lock()
	c.levels[level].value = id
	for i := level + 1; i < len(c.levels); i++ {
		c.levels[i].value = 0
		c.levels[i].options = nil
	}
	c.mu.Unlock()

	if id == 0 || level+1 >= len(c.levels) {
		return nil
	}

	child := c.levels[level+1]
	opts, err := child.loader(ctx, id)
	if err != nil {
		// Cascade sub-fetches fail silently on screen; the child list just
		// stays empty.
		logrus.WithError(err).WithField("level", child.Name).Warn("cascade option fetch failed")
		return err
	}

	c.mu.Lock()
	child.options = opts
	c.mu.Unlock()
	return nil
}

// Value returns the selected id at a level, 0 when unset.
func (c *Cascade) Value(level int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level < 0 || level >= len(c.levels) {
		return 0
	}
	return c.levels[level].value
}

// Options returns the option list currently loaded for a level.
func (c *Cascade) Options(level int) []Option {
	c.mu.Lock()
	defer c.mu.Unlock()
	if level < 0 || level >= len(c.levels) {
		return nil
	}
	out := make([]Option, len(c.levels[level].options))
	copy(out, c.levels[level].options)
	return out
}
