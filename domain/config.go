package domain

import "sort"

// DefaultCategory is assigned to bindings that appear before any section marker
const DefaultCategory = "Uncategorized"

// Category groups bindings for organization and display
type Category struct {
	Name     string
	Bindings []Binding
}

// Config is the aggregate root for a keybinding configuration. Mutate it only
// through the manager façade, which keeps the conflict index, the category
// lists, and the submap view synchronized.
type Config struct {
	Categories map[string]*Category
	Variables  map[string]string
	Submaps    map[string][]Binding
	FilePath   string
	// OriginalContent retains the raw source text for diffing; the writer
	// regenerates content from the model rather than patching this
	OriginalContent string

	index map[ConflictKey]Binding
}

// NewConfig creates an empty Config with all maps initialized
func NewConfig() *Config {
	return &Config{
		Categories: make(map[string]*Category),
		Variables:  make(map[string]string),
		Submaps:    make(map[string][]Binding),
		index:      make(map[ConflictKey]Binding),
	}
}

// AddBinding inserts b into its category (created lazily) and the conflict
// index. Callers must check FindConflict first; inserting into an occupied
// slot overwrites the index entry and desynchronizes state.
func (c *Config) AddBinding(b Binding) {
	if b.Category == "" {
		b.Category = DefaultCategory
	}
	cat, ok := c.Categories[b.Category]
	if !ok {
		cat = &Category{Name: b.Category}
		c.Categories[b.Category] = cat
	}
	cat.Bindings = append(cat.Bindings, b)
	if b.Submap != "" {
		c.Submaps[b.Submap] = append(c.Submaps[b.Submap], b)
	}
	c.index[b.ConflictKey()] = b
}

// RemoveBinding removes the binding occupying b's slot from its category, the
// submap view, and the conflict index. Returns false if no binding occupies
// that slot.
func (c *Config) RemoveBinding(b Binding) bool {
	key := b.ConflictKey()
	existing, ok := c.index[key]
	if !ok {
		return false
	}
	if cat, ok := c.Categories[existing.Category]; ok {
		for i := range cat.Bindings {
			if cat.Bindings[i].ConflictKey() == key {
				cat.Bindings = append(cat.Bindings[:i], cat.Bindings[i+1:]...)
				break
			}
		}
	}
	if existing.Submap != "" {
		bindings := c.Submaps[existing.Submap]
		for i := range bindings {
			if bindings[i].ConflictKey() == key {
				c.Submaps[existing.Submap] = append(bindings[:i], bindings[i+1:]...)
				break
			}
		}
		if len(c.Submaps[existing.Submap]) == 0 {
			delete(c.Submaps, existing.Submap)
		}
	}
	delete(c.index, key)
	return true
}

// FindConflict returns the binding occupying b's slot, if any. Lookup is a
// single hash probe; bulk imports stay linear in the number of bindings
// instead of quadratic.
func (c *Config) FindConflict(b Binding) (Binding, bool) {
	existing, ok := c.index[b.ConflictKey()]
	return existing, ok
}

// AllBindings returns a flat list of every binding, category order unspecified
func (c *Config) AllBindings() []Binding {
	var all []Binding
	for _, cat := range c.Categories {
		all = append(all, cat.Bindings...)
	}
	return all
}

// CategoryNames returns category names in sorted order
func (c *Config) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SubmapNames returns submap names in sorted order
func (c *Config) SubmapNames() []string {
	names := make([]string, 0, len(c.Submaps))
	for name := range c.Submaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BindingCount returns the total number of bindings
func (c *Config) BindingCount() int {
	return len(c.index)
}

// NextLineNumber returns an advisory line number for appending a new binding.
// It is one past the highest line number seen; it does not track physical
// file positions across edits.
func (c *Config) NextLineNumber() int {
	max := 0
	for _, b := range c.index {
		if b.LineNumber > max {
			max = b.LineNumber
		}
	}
	return max + 1
}

// RebuildIndex reconstructs the conflict index and submap view from category
// membership. Only needed if bindings were added outside AddBinding.
func (c *Config) RebuildIndex() {
	c.index = make(map[ConflictKey]Binding)
	c.Submaps = make(map[string][]Binding)
	for _, cat := range c.Categories {
		for _, b := range cat.Bindings {
			if b.Submap != "" {
				c.Submaps[b.Submap] = append(c.Submaps[b.Submap], b)
			}
			c.index[b.ConflictKey()] = b
		}
	}
}
