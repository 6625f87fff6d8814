package pagination

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Flag names.
const (
	FlagLimit    = "limit"
	FlagOffset   = "offset"
	FlagPage     = "page"
	FlagPageSize = "page-size"
)

// Validation errors.
var (
	ErrNegative             = errors.New("pagination values cannot be negative")
	ErrMixedPaginationModes = errors.New("cannot use both offset-based (--offset) and page-based (--page) pagination")
	ErrPageSizeWithoutPage  = errors.New("--page-size requires --page to be set")
	ErrPageWithoutPageSize  = errors.New("--page requires --page-size to be set")
)

// Params holds the pagination flags. Zero values disable a limit.
type Params struct {
	// Limit is the maximum number of rows (offset-based mode), 0 for all.
	Limit int
	// Offset is the number of rows to skip (offset-based mode).
	Offset int
	// Page is the 1-based page number (page-based mode), 0 when inactive.
	Page int
	// PageSize is the number of rows per page (page-based mode).
	PageSize int
}

// AddFlags registers the pagination flags on cmd, bound to p.
func (p *Params) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&p.Limit, FlagLimit, 0, "maximum number of rows (0 = all)")
	cmd.Flags().IntVar(&p.Offset, FlagOffset, 0, "number of rows to skip")
	cmd.Flags().IntVar(&p.Page, FlagPage, 0, "page number, starting at 1")
	cmd.Flags().IntVar(&p.PageSize, FlagPageSize, 0, "rows per page")
}

// Validate checks that the parameters are consistent.
func (p Params) Validate() error {
	for name, v := range map[string]int{
		FlagLimit: p.Limit, FlagOffset: p.Offset, FlagPage: p.Page, FlagPageSize: p.PageSize,
	} {
		if v < 0 {
			return fmt.Errorf("%w: --%s=%d", ErrNegative, name, v)
		}
	}
	if p.Page > 0 && p.Offset > 0 {
		return ErrMixedPaginationModes
	}
	if p.Page == 0 && p.PageSize > 0 {
		return ErrPageSizeWithoutPage
	}
	if p.Page > 0 && p.PageSize == 0 {
		return ErrPageWithoutPageSize
	}
	return nil
}

// IsPageBased reports whether page-based pagination is active.
func (p Params) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled reports whether any pagination parameter is set.
func (p Params) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0 || p.Page > 0
}

// Bounds returns the row range [from, to) selected out of total rows.
func (p Params) Bounds(total int) (int, int) {
	offset, limit := p.Offset, p.Limit
	if p.IsPageBased() {
		offset = (p.Page - 1) * p.PageSize
		limit = p.PageSize
	}
	from := min(offset, total)
	to := total
	if limit > 0 {
		to = min(from+limit, total)
	}
	return from, to
}
