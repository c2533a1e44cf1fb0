package listings

import (
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/marketplace"
)

// Response is the flattened payload returned to the messaging integration.
// Field order is fixed so identical upstream data encodes to identical bytes.
type Response struct {
	Listing1Name  string `json:"listing_1_name"`
	Listing1Desc  string `json:"listing_1_desc"`
	Listing1URL   string `json:"listing_1_url"`
	Listing1Image string `json:"listing_1_image"`

	Listing2Name  string `json:"listing_2_name"`
	Listing2Desc  string `json:"listing_2_desc"`
	Listing2URL   string `json:"listing_2_url"`
	Listing2Image string `json:"listing_2_image"`

	Listing3Name  string `json:"listing_3_name"`
	Listing3Desc  string `json:"listing_3_desc"`
	Listing3URL   string `json:"listing_3_url"`
	Listing3Image string `json:"listing_3_image"`
}

// Slot is one listing position in a Response.
type Slot struct {
	Name  string
	Desc  string
	URL   string
	Image string
}

// ErrorBody is the payload for every non-200 result.
type ErrorBody struct {
	Error string `json:"error"`
}

// LinkFunc renders the public URL for a display_id; "" means no link.
type LinkFunc func(displayID string) (string, error)

// Flatten maps the first three listings into slots 1..3. Listings beyond the
// third are ignored and missing slots stay empty.
func Flatten(listings []marketplace.Listing, link LinkFunc) (Response, error) {
	var slots [constants.ListingSlots]Slot
	for i := 0; i < len(slots) && i < len(listings); i++ {
		l := listings[i]
		url := ""
		if l.DisplayID != "" && link != nil {
			var err error
			if url, err = link(l.DisplayID); err != nil {
				return Response{}, err
			}
		}
		slots[i] = Slot{Name: l.Name, Desc: l.Description, URL: url, Image: l.Image}
	}
	return Response{
		Listing1Name:  slots[0].Name,
		Listing1Desc:  slots[0].Desc,
		Listing1URL:   slots[0].URL,
		Listing1Image: slots[0].Image,

		Listing2Name:  slots[1].Name,
		Listing2Desc:  slots[1].Desc,
		Listing2URL:   slots[1].URL,
		Listing2Image: slots[1].Image,

		Listing3Name:  slots[2].Name,
		Listing3Desc:  slots[2].Desc,
		Listing3URL:   slots[2].URL,
		Listing3Image: slots[2].Image,
	}, nil
}

// Filled counts the slots that carry at least one non-empty field.
func (r Response) Filled() int {
	n := 0
	for _, s := range r.Slots() {
		if s != (Slot{}) {
			n++
		}
	}
	return n
}

// Slots returns the response grouped by position.
func (r Response) Slots() [constants.ListingSlots]Slot {
	return [constants.ListingSlots]Slot{
		{Name: r.Listing1Name, Desc: r.Listing1Desc, URL: r.Listing1URL, Image: r.Listing1Image},
		{Name: r.Listing2Name, Desc: r.Listing2Desc, URL: r.Listing2URL, Image: r.Listing2Image},
		{Name: r.Listing3Name, Desc: r.Listing3Desc, URL: r.Listing3URL, Image: r.Listing3Image},
	}
}
