package marketplace

import (
	"fmt"

	pongo2 "github.com/flosch/pongo2/v6"
	"github.com/relevanceai/fetch-listings/constants"
)

// LinkTemplate renders public listing URLs from a display_id.
type LinkTemplate struct {
	tpl *pongo2.Template
}

// NewLinkTemplate compiles a pongo2 template that receives display_id.
func NewLinkTemplate(src string) (*LinkTemplate, error) {
	if src == "" {
		src = constants.ListingURLTemplate
	}
	tpl, err := pongo2.FromString(src)
	if err != nil {
		return nil, fmt.Errorf("invalid listing url template: %w", err)
	}
	return &LinkTemplate{tpl: tpl}, nil
}

// URL returns the listing link, or "" when there is no display_id.
func (t *LinkTemplate) URL(displayID string) (string, error) {
	if displayID == "" {
		return "", nil
	}
	out, err := t.tpl.Execute(pongo2.Context{constants.FieldDisplayID: displayID})
	if err != nil {
		return "", fmt.Errorf("render listing url: %w", err)
	}
	return out, nil
}
