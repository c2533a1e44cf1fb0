package marketplace

import (
	"errors"
	"fmt"

	"github.com/relevanceai/fetch-listings/constants"
	"github.com/tidwall/gjson"
)

// Listing is one marketplace entry as the adapter sees it. Absent and null
// upstream fields are empty strings.
type Listing struct {
	Name        string
	Description string
	DisplayID   string
	Image       string
}

var (
	// ErrInvalidJSON is returned when the upstream body is not JSON.
	ErrInvalidJSON = errors.New("marketplace response is not valid JSON")
	// ErrUnexpectedShape is returned when the body or its results field has the wrong type.
	ErrUnexpectedShape = errors.New("marketplace response has unexpected shape")
)

// ParseListings extracts the results array from an upstream body. A missing,
// null or otherwise falsy results field ("", 0, false) yields no listings.
func ParseListings(body []byte) ([]Listing, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidJSON
	}
	doc := gjson.ParseBytes(body)
	if !doc.IsObject() {
		return nil, fmt.Errorf("%w: top-level %s", ErrUnexpectedShape, doc.Type)
	}
	results := doc.Get(constants.FieldResults)
	if !truthy(results) {
		return []Listing{}, nil
	}
	if !results.IsArray() {
		return nil, fmt.Errorf("%w: %s is %s", ErrUnexpectedShape, constants.FieldResults, results.Type)
	}
	items := results.Array()
	listings := make([]Listing, 0, len(items))
	for _, item := range items {
		listings = append(listings, parseListing(item))
	}
	return listings, nil
}

// parseListing reads the four known fields. Non-object entries carry no fields.
func parseListing(item gjson.Result) Listing {
	if !item.IsObject() {
		return Listing{}
	}
	l := Listing{
		Name:        text(item.Get(constants.FieldName)),
		Description: text(item.Get(constants.FieldDescription)),
		Image:       text(item.Get(constants.FieldImage)),
	}
	if id := item.Get(constants.FieldDisplayID); truthy(id) {
		l.DisplayID = text(id)
	}
	return l
}

// text renders a field as a string. Strings are unquoted, other JSON values
// keep their literal form.
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return ""
	case gjson.String:
		return r.Str
	default:
		return r.Raw
	}
}

// truthy follows JSON-in-JavaScript truthiness, which decides whether a
// display_id produces a link.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	default:
		return r.Exists()
	}
}
