package usecase

import "shareit/internal/pkg/errs"

var ErrInvalidPage = errs.New("invalid pagination parameters")

// Page is offset/limit pagination. Validation happens here so bad input
// never reaches the store.
type Page struct {
	From int
	Size int
}

func NewPage(from, size int) (Page, error) {
	if from < 0 || size < 1 {
		return Page{}, errs.Mark(errs.Newf("from=%d size=%d", from, size), ErrInvalidPage)
	}
	return Page{From: from, Size: size}, nil
}

func (p Page) Offset() int32 { return int32(p.From) }
func (p Page) Limit() int32  { return int32(p.Size) }
