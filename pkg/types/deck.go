// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockKind classifies a content block within a slide.
type BlockKind string

const (
	// BlockSubtitle is a section heading nested under the slide title.
	BlockSubtitle BlockKind = "subtitle"
	// BlockBullet is a bulleted list item.
	BlockBullet BlockKind = "bullet"
	// BlockBold is a standalone emphasized line.
	BlockBold BlockKind = "bold"
	// BlockText is a plain text line, including flattened table rows.
	BlockText BlockKind = "text"
)

// Block is one typed unit of slide content. Order within a slide is
// significant and follows source document order.
type Block struct {
	Kind BlockKind `json:"kind" yaml:"kind"`
	Text string    `json:"text" yaml:"text"`
}

// Slide holds one slide's title and its ordered content blocks. The title
// is already sanitized by the parser: every rune outside letters, digits,
// underscore, whitespace, and hyphen has been removed.
type Slide struct {
	Title  string  `json:"title" yaml:"title"`
	Blocks []Block `json:"blocks" yaml:"blocks"`
}

// DeckMeta carries the document metadata embedded in the generated
// presentation's meta.xml.
type DeckMeta struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Creator     string `json:"creator" yaml:"creator"`
}

// Default metadata used when the caller supplies none.
const (
	DefaultDeckTitle       = "Converted Presentation"
	DefaultDeckDescription = "Presentation generated from a markdown document"
	DefaultDeckCreator     = "docpress"
)

// WithDefaults fills empty metadata fields with the fixed defaults.
func (m DeckMeta) WithDefaults() DeckMeta {
	if m.Title == "" {
		m.Title = DefaultDeckTitle
	}
	if m.Description == "" {
		m.Description = DefaultDeckDescription
	}
	if m.Creator == "" {
		m.Creator = DefaultDeckCreator
	}
	return m
}
