package shared

import (
	"github.com/go-playground/form"
)

// Decoder decodes URL query values and form bodies into tagged structs.
var Decoder = form.NewDecoder()

func init() {
	Decoder.SetTagName("form")
}
