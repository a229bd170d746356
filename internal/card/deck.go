package card

import "strings"

// line is one physical line of the input file: the card text plus an
// optional trailing comment.
type line struct {
	text    string
	comment string
}

// Deck is an ordered, append-only buffer of input-file lines. It is built
// line by line by the formatter and finalized to text exactly once;
// nothing is ever inserted, reordered or removed.
type Deck struct {
	lines []line
}

// add appends one card line with an optional comment. An empty comment
// emits the bare text.
func (d *Deck) add(text, comment string) {
	d.lines = append(d.lines, line{text: text, comment: comment})
}

// Len returns the number of lines in the deck, excluding the trailing
// blank line added by String.
func (d *Deck) Len() int {
	return len(d.lines)
}

// Line returns the text of line i without its comment. It is primarily
// useful in tests asserting on individual cards.
func (d *Deck) Line(i int) string {
	return d.lines[i].text
}

// String renders the deck verbatim as the solver input file: one line per
// card, comments separated by a tab and "!", and a single blank trailing
// line, which the SMARTS reader expects.
func (d *Deck) String() string {
	var b strings.Builder
	for _, l := range d.lines {
		b.WriteString(l.text)
		if l.comment != "" {
			b.WriteString(" \t\t\t! ")
			b.WriteString(l.comment)
		}
		b.WriteByte('\n')
	}
	// Trailing blank line.
	b.WriteByte('\n')
	return b.String()
}
