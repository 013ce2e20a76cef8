package handler

import (
	"errors"
	"strconv"
	"strings"
)

// PageSize is the number of assignments shown per list page.
const PageSize = 10

var errNoPage = errors.New("no such page")

type pageInfo struct {
	Number int
	Count  int
}

func (p pageInfo) HasPrev() bool { return p.Number > 1 }
func (p pageInfo) HasNext() bool { return p.Number < p.Count }
func (p pageInfo) Prev() int     { return p.Number - 1 }
func (p pageInfo) Next() int     { return p.Number + 1 }
func (p pageInfo) Offset() int   { return (p.Number - 1) * PageSize }

// resolvePage turns the page query value into a page of total items. Blank
// means the first page and "last" the final one. An empty list still has
// one page.
func resolvePage(raw string, total int) (pageInfo, error) {
	count := (total + PageSize - 1) / PageSize
	if count < 1 {
		count = 1
	}

	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return pageInfo{Number: 1, Count: count}, nil
	case "last":
		return pageInfo{Number: count, Count: count}, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > count {
		return pageInfo{}, errNoPage
	}
	return pageInfo{Number: n, Count: count}, nil
}
