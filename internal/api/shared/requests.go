package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all handlers; validator.Validate is safe for
// concurrent use and caches struct metadata across requests.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// ValidateRequest checks a decoded request against its validate struct tags.
// Request types carrying their own Validate method are checked through that
// instead, so domain rules that tags cannot express still apply.
func ValidateRequest(v interface{}) error {
	if checker, ok := v.(interface{ Validate() error }); ok {
		return checker.Validate()
	}
	return validate.Struct(v)
}
