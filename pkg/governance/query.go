package governance

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// QueryParams builds the query string for list endpoints.
type QueryParams struct {
	Limit   int
	Offset  int
	Count   bool
	Sorters []string
	Filters []string
	Extra   url.Values
}

// NewQueryParams creates empty query parameters.
func NewQueryParams() *QueryParams {
	return &QueryParams{
		Extra: url.Values{},
	}
}

// Clone returns a deep copy of p. A nil receiver yields empty parameters.
func (p *QueryParams) Clone() *QueryParams {
	if p == nil {
		return NewQueryParams()
	}

	clone := *p
	clone.Sorters = append([]string(nil), p.Sorters...)
	clone.Filters = append([]string(nil), p.Filters...)
	clone.Extra = url.Values{}

	for key, vals := range p.Extra {
		clone.Extra[key] = append([]string(nil), vals...)
	}

	return &clone
}

// WithFilter adds a filter expression such as `name eq "admins"`. Multiple
// filters are combined with "and".
func (p *QueryParams) WithFilter(field, operator, value string) *QueryParams {
	quoted := strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(value)
	p.Filters = append(p.Filters, fmt.Sprintf(`%s %s "%s"`, field, operator, quoted))

	return p
}

// WithSorter adds a sort field; prefix it with "-" for descending order.
func (p *QueryParams) WithSorter(field string) *QueryParams {
	p.Sorters = append(p.Sorters, field)

	return p
}

// Set adds an endpoint-specific parameter.
func (p *QueryParams) Set(key, value string) *QueryParams {
	if p.Extra == nil {
		p.Extra = url.Values{}
	}

	p.Extra.Set(key, value)

	return p
}

// ToValues converts the parameters to url.Values.
func (p *QueryParams) ToValues() url.Values {
	values := url.Values{}
	if p == nil {
		return values
	}

	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}

	if p.Offset > 0 {
		values.Set("offset", strconv.Itoa(p.Offset))
	}

	if p.Count {
		values.Set("count", "true")
	}

	if len(p.Sorters) > 0 {
		values.Set("sorters", strings.Join(p.Sorters, ","))
	}

	if len(p.Filters) > 0 {
		values.Set("filters", strings.Join(p.Filters, " and "))
	}

	for key, vals := range p.Extra {
		for _, v := range vals {
			values.Add(key, v)
		}
	}

	return values
}

// WithQuery appends the encoded parameters to path. The path is returned
// unchanged when there is nothing to encode.
func WithQuery(path string, params *QueryParams) string {
	encoded := params.ToValues().Encode()
	if encoded == "" {
		return path
	}

	return path + "?" + encoded
}
