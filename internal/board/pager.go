package board

// DefaultPageSize is the number of notes shown per page.
const DefaultPageSize = 1

// Pager tracks the current page over a collection of n items. Pages are
// numbered from 1.
type Pager struct {
	size    int
	current int
}

func NewPager(size int) *Pager {
	if size < 1 {
		size = DefaultPageSize
	}
	return &Pager{size: size, current: 1}
}

func (p *Pager) Size() int    { return p.size }
func (p *Pager) Current() int { return p.current }

// TotalPages is ceil(n/size), never less than 1.
func (p *Pager) TotalPages(n int) int {
	total := (n + p.size - 1) / p.size
	if total < 1 {
		return 1
	}
	return total
}

// Window returns the [start, end) bounds of the current page.
func (p *Pager) Window(n int) (int, int) {
	start := (p.current - 1) * p.size
	end := start + p.size
	if end > n {
		end = n
	}
	if start > end {
		start = end
	}
	return start, end
}

func (p *Pager) HasPrev() bool {
	return p.current > 1
}

func (p *Pager) HasNext(n int) bool {
	return p.current < p.TotalPages(n)
}

// Next moves forward one page. It reports false and does nothing on the last page.
func (p *Pager) Next(n int) bool {
	if !p.HasNext(n) {
		return false
	}
	p.current++
	return true
}

// Prev moves back one page. It reports false and does nothing on page 1.
func (p *Pager) Prev() bool {
	if !p.HasPrev() {
		return false
	}
	p.current--
	return true
}

func (p *Pager) Reset() {
	p.current = 1
}
