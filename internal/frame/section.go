package frame

import "fmt"

// SectionSchema describes frames whose rows delimit regions of a text file
// to be parsed: the parser responsible for a region, its starting line, and
// its (non-inclusive) ending line.
var SectionSchema = Schema{
	"parser": {Description: "Name of the parser for this section"},
	"start":  {Description: "Section starting line number", Kinds: []Kind{KindInt}},
	"end":    {Description: "Section ending (non-inclusive) line number", Kinds: []Kind{KindInt}},
}

// CompositionSchema describes frames used to compose text from templates:
// the number of lines each piece occupies, the string used to join it, and
// the template name it fills.
var CompositionSchema = Schema{
	"length": {Description: "Number of lines", Kinds: []Kind{KindInt}},
	"joiner": {Description: "String joiner, as used by strings.Join"},
	"name":   {Description: "Attribute/template format name"},
}

const sectionNamePrefix = "section"

// NewSectionFrame builds a frame validated against SectionSchema and adds
// an "attribute" column naming each section (section00, section01, ...),
// zero-padded to the width of the row count.
func NewSectionFrame(cols []Column, opts ...Option) (*Frame, error) {
	f, err := New(cols, opts...)
	if err != nil {
		return nil, err
	}
	if err := SectionSchema.Validate(f); err != nil {
		return nil, err
	}

	n := f.NumRows()
	width := len(fmt.Sprint(n))
	attrs := make([]any, n)
	for i := range attrs {
		attrs[i] = fmt.Sprintf("%s%0*d", sectionNamePrefix, width, i)
	}
	if err := f.AddColumn("attribute", attrs); err != nil {
		return nil, err
	}
	return f, nil
}

// NewCompositionFrame builds a frame validated against CompositionSchema.
func NewCompositionFrame(cols []Column, opts ...Option) (*Frame, error) {
	f, err := New(cols, opts...)
	if err != nil {
		return nil, err
	}
	if err := CompositionSchema.Validate(f); err != nil {
		return nil, err
	}
	return f, nil
}
