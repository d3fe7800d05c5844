package generator

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/example/curriculum-gen/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func buildText(text string) *Catalog {
	return Build(SplitLines(text))
}

func TestBuildScenarios(t *testing.T) {
	t.Run("two top-level topics", func(t *testing.T) {
		c := buildText("1. Intro\nPrerequisites: None\n2. Advanced\nPrerequisites: Intro")
		require.Len(t, c.Topics, 2)

		intro := c.Topics[0]
		assert.Equal(t, "Intro", intro.ID)
		assert.Equal(t, 1, intro.Level)
		assert.Equal(t, []string{}, intro.Prerequisites)
		assert.Equal(t, "plans/01-Intro", intro.FolderPath)

		adv := c.Topics[1]
		assert.Equal(t, "Advanced", adv.ID)
		assert.Equal(t, 1, adv.Level)
		assert.Equal(t, []string{"Intro"}, adv.Prerequisites)
		assert.Equal(t, "plans/02-Advanced", adv.FolderPath)
	})

	t.Run("nested numbering", func(t *testing.T) {
		c := buildText("1.1. Sub Topic\nPrerequisites: None")
		require.Len(t, c.Topics, 1)

		sub := c.Topics[0]
		assert.Equal(t, "1.1", sub.Numbering)
		assert.Equal(t, 2, sub.Level)
		assert.Equal(t, "Sub-Topic", sub.ID)
		assert.Equal(t, "Sub Topic", sub.Name)
		assert.Equal(t, "plans/01-1-Sub-Topic", sub.FolderPath)
	})

	t.Run("topic on last line", func(t *testing.T) {
		c := buildText("1. Intro")
		require.Len(t, c.Topics, 1)
		assert.Equal(t, []string{}, c.Topics[0].Prerequisites)
	})

	t.Run("free-text header ignored", func(t *testing.T) {
		c := buildText("Overview\n1. Intro\nPrerequisites: None")
		require.Len(t, c.Topics, 1)
		assert.Equal(t, "Intro", c.Topics[0].ID)
	})
}

func TestBuildLessons(t *testing.T) {
	c := buildText("3.2. Hash Maps")
	require.Len(t, c.Topics, 1)
	assert.Equal(t, []Lesson{
		{ID: "Hash-Maps-part-1", Number: 1},
		{ID: "Hash-Maps-part-2", Number: 2},
		{ID: "Hash-Maps-part-3", Number: 3},
	}, c.Topics[0].Lessons)
}

func TestBuildEmptyDocument(t *testing.T) {
	c := buildText("")
	assert.Equal(t, CurrentVersion, c.Version)
	assert.NotNil(t, c.Topics)
	assert.Empty(t, c.Topics)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"topics":[],"version":"1.0"}`, string(data))
}

func TestBuildPrerequisiteOnlyFromImmediateNextLine(t *testing.T) {
	// A blank line between the topic and its annotation detaches it.
	c := buildText("1. Intro\n\nPrerequisites: Basics\n2. Next\nPrerequisites: Intro")
	require.Len(t, c.Topics, 2)
	assert.Equal(t, []string{}, c.Topics[0].Prerequisites)
	assert.Equal(t, []string{"Intro"}, c.Topics[1].Prerequisites)
}

func TestBuildNextTopicIsNotAnAnnotation(t *testing.T) {
	c := buildText("1. Intro\n2. Next")
	require.Len(t, c.Topics, 2)
	assert.Equal(t, []string{}, c.Topics[0].Prerequisites)
}

func TestBuildDuplicateLinesResolveByPosition(t *testing.T) {
	// Identical topic lines each read their own annotation.
	doc := strings.Join([]string{
		"1. Review",
		"Prerequisites: None",
		"2. Middle",
		"Prerequisites: Review",
		"1. Review",
		"Prerequisites: Middle",
	}, "\n")

	c := buildText(doc)
	require.Len(t, c.Topics, 3)
	assert.Equal(t, []string{}, c.Topics[0].Prerequisites)
	assert.Equal(t, []string{"Middle"}, c.Topics[2].Prerequisites)
	assert.Equal(t, []string{"Review"}, c.DuplicateIDs())
}

func TestBuildIndentedAndCRLFLines(t *testing.T) {
	c := buildText("  1. Intro  \r\n\tPrerequisites: A, B\r\n")
	require.Len(t, c.Topics, 1)
	assert.Equal(t, "Intro", c.Topics[0].Name)
	assert.Equal(t, []string{"A", "B"}, c.Topics[0].Prerequisites)
}

func TestBuildSkipsUnrenderableNumbering(t *testing.T) {
	c := buildText(".1. Dotted\n1. Intro")
	require.Len(t, c.Topics, 1)
	assert.Equal(t, "Intro", c.Topics[0].ID)
}

func TestBuildProperties(t *testing.T) {
	doc := strings.Join([]string{
		"Curriculum",
		"",
		"1. Foundations",
		"Prerequisites: None",
		"1.1. Big O",
		"Prerequisites: Foundations",
		"1.1.1. Amortized Analysis",
		"Prerequisites: Big O, Foundations",
		"Section two",
		"2. Data Structures",
		"2.1. Arrays",
		"Prerequisites: None",
		"2.10. Skip Lists",
		"Prerequisites: Arrays, Linked Lists",
		"10. Capstone Project",
		"Prerequisites: Data Structures",
	}, "\n")

	c := buildText(doc)
	require.Len(t, c.Topics, 7)

	wantOrder := []string{"1", "1.1", "1.1.1", "2", "2.1", "2.10", "10"}
	for i, topic := range c.Topics {
		assert.Equal(t, wantOrder[i], topic.Numbering)
		assert.Equal(t, len(strings.Split(topic.Numbering, ".")), topic.Level)
		assert.True(t, strings.HasPrefix(topic.FolderPath, FolderRoot))

		rest := strings.TrimPrefix(topic.FolderPath, FolderRoot)
		assert.Regexp(t, `^\d\d`, rest)
		assert.Equal(t, topic.Level, strings.Count(strings.TrimSuffix(rest, "-"+topic.ID), "-")+1)

		require.Len(t, topic.Lessons, 3)
		for j, l := range topic.Lessons {
			assert.Equal(t, j+1, l.Number)
			assert.False(t, l.Completed)
		}
	}
	assert.Equal(t, "plans/10-Capstone-Project", c.Topics[6].FolderPath)
	assert.Equal(t, []string{"Arrays", "Linked Lists"}, c.Topics[5].Prerequisites)
	assert.NoError(t, Validate(c))
}

func TestBuildIsDeterministic(t *testing.T) {
	doc := "1. Intro\nPrerequisites: None\n1.1. A <b> & C\nPrerequisites: Intro"

	first, err := json.MarshalIndent(buildText(doc), "", "  ")
	require.NoError(t, err)
	second, err := json.MarshalIndent(buildText(doc), "", "  ")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestParseDocument(t *testing.T) {
	g := New(nil)
	require.NoError(t, g.ParseDocument(strings.NewReader("1. Intro\nPrerequisites: None\n")))
	c := g.Generate()
	require.Len(t, c.Topics, 1)

	err := New(nil).ParseDocument(failingReader{})
	assert.ErrorContains(t, err, "failed to read document")
}

func TestGenerateLogsDuplicatesAndSkips(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	g := New(logger.FromZap(zap.New(core)))

	g.ParseLines(SplitLines("Header\n1. Same\n2. Same"))
	c := g.Generate()
	require.Len(t, c.Topics, 2)

	assert.Equal(t, 1, logs.FilterMessage("skipping non-outline line").Len())
	dups := logs.FilterMessage("duplicate topic ids").All()
	require.Len(t, dups, 1)
	assert.Equal(t, zap.WarnLevel, dups[0].Level)
}

func TestBuildKeepsWideAndUnicodeSpacedTopics(t *testing.T) {
	c := buildText("1. Intro\n2.\u2003 Spaced Name\n99999999999999999999. Big\n3.\u00a0Non Breaking")
	require.Len(t, c.Topics, 4)

	assert.Equal(t, "Spaced Name", c.Topics[1].Name)
	assert.Equal(t, "Spaced-Name", c.Topics[1].ID)
	assert.Equal(t, "plans/02-Spaced-Name", c.Topics[1].FolderPath)

	assert.Equal(t, "99999999999999999999", c.Topics[2].Numbering)
	assert.Equal(t, "plans/99999999999999999999-Big", c.Topics[2].FolderPath)

	assert.Equal(t, "Non-Breaking", c.Topics[3].ID)
	assert.NoError(t, Validate(c))
}
