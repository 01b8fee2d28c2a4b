package handler

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/fisherfans/api/internal/model"
)

// queryParams reads typed optional values from a query string. The first
// malformed value is kept in err and later reads become no-ops.
type queryParams struct {
	values url.Values
	err    error
}

func newQueryParams(values url.Values) *queryParams {
	return &queryParams{values: values}
}

func (q *queryParams) raw(key string) (string, bool) {
	if q.err != nil {
		return "", false
	}
	v := strings.TrimSpace(q.values.Get(key))
	return v, v != ""
}

func (q *queryParams) String(key string) string {
	v, _ := q.raw(key)
	return v
}

func (q *queryParams) Int(key string) *int {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		q.err = fmt.Errorf("%s must be an integer", key)
		return nil
	}
	return &n
}

func (q *queryParams) Float(key string) *float64 {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		q.err = fmt.Errorf("%s must be a number", key)
		return nil
	}
	return &f
}

func (q *queryParams) Money(key string) *model.Money {
	v, ok := q.raw(key)
	if !ok {
		return nil
	}
	m, err := model.ParseMoney(v)
	if err != nil {
		q.err = fmt.Errorf("%s must be a decimal amount", key)
		return nil
	}
	return &m
}

// Date accepts DateLayout or RFC 3339 and returns the DateLayout form
func (q *queryParams) Date(key string) string {
	v, ok := q.raw(key)
	if !ok {
		return ""
	}
	d, valid := model.NormalizeDate(v)
	if !valid {
		q.err = fmt.Errorf("%s must be a date (%s)", key, model.DateLayout)
		return ""
	}
	return d
}

func (q *queryParams) Err() error {
	return q.err
}
