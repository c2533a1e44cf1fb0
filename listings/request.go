package listings

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/utils"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// RequestBody is the optional payload sent by the messaging integration.
type RequestBody struct {
	User *User `json:"user,omitempty"`
}

// User identifies the conversation's contact.
type User struct {
	Email   string `json:"email,omitempty"`
	Company string `json:"company,omitempty"`
}

const requestSchema = `{
  "type": "object",
  "properties": {
    "user": {
      "type": ["object", "null"],
      "properties": {
        "email": {"type": ["string", "null"]},
        "company": {"type": ["string", "null"]}
      }
    }
  }
}`

var bodySchema = jsonschema.MustCompileString("request.schema.json", requestSchema)

// ParseRequestBody decodes the inbound body leniently. An empty, malformed or
// oddly shaped body yields an empty RequestBody; it never fails the request.
func ParseRequestBody(ctx context.Context, body []byte) RequestBody {
	var out RequestBody
	if len(bytes.TrimSpace(body)) == 0 {
		return out
	}
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		utils.DebugCtx(ctx, constants.LogInvalidBody, "reason", err.Error())
		return out
	}
	if err := bodySchema.Validate(doc); err != nil {
		utils.DebugCtx(ctx, constants.LogInvalidBody, "reason", err.Error())
		return out
	}
	if err := json.Unmarshal(body, &out); err != nil {
		utils.DebugCtx(ctx, constants.LogInvalidBody, "reason", err.Error())
		return RequestBody{}
	}
	return out
}

// PersonalizationTag derives a marketplace tag from the contact: the company
// name, else the first label of the email domain. It is logged only and never
// applied to the listings query.
func (b RequestBody) PersonalizationTag() string {
	if b.User == nil {
		return ""
	}
	if b.User.Company != "" {
		return strings.ToLower(b.User.Company)
	}
	email := b.User.Email
	if !strings.Contains(email, "@") {
		return ""
	}
	domain := strings.Split(email, "@")[1]
	return strings.Split(domain, ".")[0]
}
