package item

import "slices"

// Controllers records which writer last set each field. It exists to
// diagnose subsystems fighting over one setting; nothing depends on it for
// correctness.
type Controllers struct {
	writers map[string]string
}

// Set records writer as the controller of field.
func (c *Controllers) Set(field, writer string) {
	if c.writers == nil {
		c.writers = make(map[string]string)
	}
	c.writers[field] = writer
}

// Unset releases field if writer currently controls it.
func (c *Controllers) Unset(field, writer string) {
	if c.writers[field] == writer {
		delete(c.writers, field)
	}
}

// Writer returns the controller of field.
func (c *Controllers) Writer(field string) (string, bool) {
	w, ok := c.writers[field]
	return w, ok
}

// IsControlled reports whether any writer controls field.
func (c *Controllers) IsControlled(field string) bool {
	_, ok := c.writers[field]
	return ok
}

// Fields returns the controlled field names, sorted.
func (c *Controllers) Fields() []string {
	out := make([]string, 0, len(c.writers))
	for f := range c.writers {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}
