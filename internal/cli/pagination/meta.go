package pagination

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Meta describes the page returned for a given total.
type Meta struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	HasPrevious bool
	HasNext     bool
}

// NewMeta computes the page metadata of p over total rows.
func NewMeta(p Params, total int) Meta {
	from, to := p.Bounds(total)
	size := total
	switch {
	case p.IsPageBased():
		size = p.PageSize
	case p.Limit > 0:
		size = p.Limit
	}

	meta := Meta{TotalItems: total, CurrentPage: 1}
	if size > 0 {
		meta.CurrentPage = from/size + 1
		meta.TotalPages = (total + size - 1) / size
	}
	meta.HasPrevious = from > 0
	meta.HasNext = to < total
	return meta
}

// String renders the metadata as a one-line footer.
func (m Meta) String() string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("page %d of %d (%d options)", m.CurrentPage, m.TotalPages, m.TotalItems)
}
