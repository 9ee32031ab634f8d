package paging

import (
	"math"
	"strconv"
	"strings"
)

// DefaultSize es el tamaño de página de los listados HTML.
const DefaultSize = 5

// Request pide una página; Page empieza en 1.
type Request struct {
	Page int
	Size int
}

func NewRequest(page, size int) Request {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultSize
	}
	// Offset()+Size debe caber en un int; si no, primera página.
	if page-1 > (math.MaxInt-size)/size {
		page = 1
	}
	return Request{Page: page, Size: size}
}

func (r Request) Offset() int { return (r.Page - 1) * r.Size }
func (r Request) Limit() int  { return r.Size }

// Page es un resultado paginado.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalItems int
}

func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.TotalItems + p.Size - 1) / p.Size
}

func (p Page[T]) Empty() bool { return len(p.Items) == 0 }

// Slice pagina en memoria una lista ya ordenada.
func Slice[T any](all []T, r Request) Page[T] {
	r = NewRequest(r.Page, r.Size)

	start := r.Offset()
	if start > len(all) {
		start = len(all)
	}
	end := len(all)
	if r.Limit() < end-start {
		end = start + r.Limit()
	}

	items := make([]T, end-start)
	copy(items, all[start:end])

	return Page[T]{
		Items:      items,
		Number:     r.Page,
		Size:       r.Size,
		TotalItems: len(all),
	}
}

// ParsePage lee ?page=; cualquier valor inválido cae en 1.
func ParsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
