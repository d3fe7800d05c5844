package generator

// Catalog is the document written by the generator
type Catalog struct {
	Topics  []Topic       `json:"topics" yaml:"topics" validate:"dive"`
	Version FormatVersion `json:"version" yaml:"version" validate:"required"`
}

// Topic is one numbered entry of the outline
type Topic struct {
	ID            string   `json:"id" yaml:"id" validate:"required"`
	Name          string   `json:"name" yaml:"name" validate:"required"`
	Numbering     string   `json:"numbering" yaml:"numbering" validate:"required,numbering"`
	Level         int      `json:"level" yaml:"level" validate:"min=1"`
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites"`
	FolderPath    string   `json:"folderPath" yaml:"folderPath" validate:"required,startswith=plans/"`
	Lessons       []Lesson `json:"lessons" yaml:"lessons" validate:"len=3,dive"`
}

// Lesson is a placeholder sub-unit of a topic
type Lesson struct {
	ID        string `json:"id" yaml:"id" validate:"required"`
	Number    int    `json:"number" yaml:"number" validate:"min=1,max=3"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// Index maps each topic numbering to its id. When a numbering repeats,
// the first topic wins.
func (c *Catalog) Index() map[string]string {
	index := make(map[string]string, len(c.Topics))
	for _, t := range c.Topics {
		if _, exists := index[t.Numbering]; !exists {
			index[t.Numbering] = t.ID
		}
	}
	return index
}

// DuplicateIDs returns topic ids that occur more than once, in order of
// their second occurrence.
func (c *Catalog) DuplicateIDs() []string {
	seen := make(map[string]int, len(c.Topics))
	var dups []string
	for _, t := range c.Topics {
		seen[t.ID]++
		if seen[t.ID] == 2 {
			dups = append(dups, t.ID)
		}
	}
	return dups
}
