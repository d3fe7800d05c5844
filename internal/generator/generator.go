package generator

import (
	"fmt"
	"io"

	"github.com/example/curriculum-gen/internal/logger"
)

// FolderRoot prefixes every topic folder path.
const FolderRoot = "plans/"

// LessonsPerTopic is the number of placeholder lessons attached to a topic.
const LessonsPerTopic = 3

// Generator turns an outline document into a Catalog
type Generator struct {
	log     *logger.Logger
	catalog *Catalog
}

// New creates a new generator. A nil logger discards output.
func New(log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{
		log: log,
		catalog: &Catalog{
			Topics:  []Topic{},
			Version: CurrentVersion,
		},
	}
}

// ParseDocument reads the whole document from r and appends its topics.
func (g *Generator) ParseDocument(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read document: %w", err)
	}
	g.ParseLines(SplitLines(string(data)))
	return nil
}

// ParseLines appends the topics found in lines, in document order.
func (g *Generator) ParseLines(lines []string) {
	candidates := scanLines(lines)
	g.log.Debug("scanned document", "lines", len(lines), "candidates", len(candidates))

	for _, c := range candidates {
		outline, ok := matchOutline(c.text)
		if !ok {
			g.log.Debug("skipping non-outline line", "line", c.pos+1, "text", c.text)
			continue
		}

		prerequisites := []string{}
		if next, ok := followingLine(lines, c.pos); ok {
			prerequisites = parsePrerequisites(next)
		}

		topic, err := buildTopic(outline, prerequisites)
		if err != nil {
			g.log.Debug("skipping outline line with bad numbering", "line", c.pos+1, "numbering", outline.Numbering, "error", err)
			continue
		}
		g.catalog.Topics = append(g.catalog.Topics, topic)
	}
}

// Generate returns the catalog built so far.
func (g *Generator) Generate() *Catalog {
	if dups := g.catalog.DuplicateIDs(); len(dups) > 0 {
		g.log.Warn("duplicate topic ids", "ids", dups)
	}
	g.log.Info("catalog generated", "topics", len(g.catalog.Topics), "version", g.catalog.Version)
	return g.catalog
}

// Build is the pure form of the pipeline: lines in, catalog out.
func Build(lines []string) *Catalog {
	g := New(nil)
	g.ParseLines(lines)
	return g.catalog
}

// buildTopic derives id, level, folder path and lessons for one outline line.
func buildTopic(outline OutlineLine, prerequisites []string) (Topic, error) {
	id := topicID(outline.Name)
	path, err := folderPath(outline.Numbering, id)
	if err != nil {
		return Topic{}, fmt.Errorf("invalid numbering %q: %w", outline.Numbering, err)
	}
	return Topic{
		ID:            id,
		Name:          outline.Name,
		Numbering:     outline.Numbering,
		Level:         len(segments(outline.Numbering)),
		Prerequisites: prerequisites,
		FolderPath:    path,
		Lessons:       placeholderLessons(id),
	}, nil
}

func placeholderLessons(id string) []Lesson {
	lessons := make([]Lesson, LessonsPerTopic)
	for i := range lessons {
		n := i + 1
		lessons[i] = Lesson{
			ID:     fmt.Sprintf("%s-part-%d", id, n),
			Number: n,
		}
	}
	return lessons
}
