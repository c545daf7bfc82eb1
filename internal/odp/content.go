// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package odp generates OASIS OpenDocument Presentation packages from a
// parsed slide deck and assembles them into a .odp archive.
package odp

import (
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/docpress/pkg/types"
)

// maxBlocksPerSlide caps the content shapes emitted per page. The cap counts
// emitted shapes only; blocks skipped for empty text do not consume slots.
const maxBlocksPerSlide = 8

// titleY is where the title frame sits; contentStartY is the running offset
// content frames grow from.
const (
	titleY        = 0.3
	contentStartY = 4.0
)

// geometry describes the frame emitted for one block kind.
type geometry struct {
	yStep   float64 // vertical advance before the frame
	height  float64 // frame height in cm
	x       float64 // left offset in cm; bullets are indented further
	graphic string  // graphic style name
	para    string  // paragraph style name
	prefix  string  // literal glyph prepended to the text
}

// blockGeometry maps each block kind to its layout. Bold shares the plain
// text geometry.
var blockGeometry = map[types.BlockKind]geometry{
	types.BlockSubtitle: {yStep: 0.8, height: 0.6, x: 1.4, graphic: "gr2", para: "P2"},
	types.BlockBullet:   {yStep: 0.5, height: 0.5, x: 2.0, graphic: "gr3", para: "P3", prefix: "• "},
	types.BlockBold:     {yStep: 0.4, height: 0.4, x: 1.4, graphic: "gr3", para: "P3"},
	types.BlockText:     {yStep: 0.4, height: 0.4, x: 1.4, graphic: "gr3", para: "P3"},
}

// Package holds the generated text artifacts of one presentation. The
// mimetype is not stored here; it is the fixed Mimetype literal.
type Package struct {
	Manifest string
	Content  string
	Styles   string
	Meta     string
}

// BuildPackage generates the four XML parts for a deck. It is a total
// function: any deck, including an empty one, yields well-formed XML.
func BuildPackage(deck []types.Slide, meta types.DeckMeta, now time.Time) Package {
	return Package{
		Manifest: manifestXML,
		Content:  buildContent(deck),
		Styles:   stylesXML,
		Meta:     buildMeta(meta.WithDefaults(), now),
	}
}

func buildContent(deck []types.Slide) string {
	var b strings.Builder
	b.WriteString(contentHeader)
	b.WriteByte('\n')
	for i, slide := range deck {
		writePage(&b, slide, i+1)
	}
	b.WriteString(contentFooter)
	return b.String()
}

// writePage emits one draw:page. The page name Slide{n} is positional and
// regenerated every run; it is not a stable key.
func writePage(b *strings.Builder, slide types.Slide, n int) {
	fmt.Fprintf(b, "      <draw:page draw:name=\"Slide%d\" draw:style-name=\"dp1\" draw:master-page-name=\"Standard\">\n", n)

	// Title frame, always present, fixed geometry.
	fmt.Fprintf(b, "        <draw:frame draw:style-name=\"gr1\" draw:text-style-name=\"P1\" draw:layer=\"layout\" svg:width=\"25.199cm\" svg:height=\"3.506cm\" svg:x=\"1.4cm\" svg:y=\"%.1fcm\">\n", titleY)
	b.WriteString("          <draw:text-box>\n")
	fmt.Fprintf(b, "            <text:p text:style-name=\"P1\">%s</text:p>\n", EscapeText(slide.Title))
	b.WriteString("          </draw:text-box>\n")
	b.WriteString("        </draw:frame>\n")

	y := contentStartY
	emitted := 0
	for _, block := range slide.Blocks {
		if emitted >= maxBlocksPerSlide {
			break
		}
		if block.Text == "" {
			continue
		}
		g, ok := blockGeometry[block.Kind]
		if !ok {
			continue
		}
		y += g.yStep
		fmt.Fprintf(b, "        <draw:frame draw:style-name=%q draw:text-style-name=%q draw:layer=\"layout\" svg:width=\"25.199cm\" svg:height=\"%.1fcm\" svg:x=\"%.1fcm\" svg:y=\"%.1fcm\">\n",
			g.graphic, g.para, g.height, g.x, y)
		b.WriteString("          <draw:text-box>\n")
		fmt.Fprintf(b, "            <text:p text:style-name=%q>%s%s</text:p>\n", g.para, g.prefix, EscapeText(block.Text))
		b.WriteString("          </draw:text-box>\n")
		b.WriteString("        </draw:frame>\n")
		emitted++
	}

	b.WriteString("      </draw:page>\n")
}

func buildMeta(meta types.DeckMeta, now time.Time) string {
	return fmt.Sprintf(metaXMLFormat,
		EscapeText(meta.Title),
		EscapeText(meta.Description),
		EscapeText(meta.Creator),
		now.Format(time.RFC3339))
}
