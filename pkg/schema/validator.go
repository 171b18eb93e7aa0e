package schema

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/theapemachine/dispatch-go/pkg/errors"
)

/*
Validator checks positional parameter sequences against a single schema
document whose top-level properties are method names, each holding an
array-shaped schema for that method's params. Methods without an entry in
the document pass validation unconstrained.
*/
type Validator struct {
	schema *gojsonschema.Schema
}

/*
New compiles a schema document. The document is compiled once and the
resulting validator is safe for concurrent use.
*/
func New(document []byte) (*Validator, error) {
	sch, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(document))

	if err != nil {
		return nil, fmt.Errorf("failed to compile schema document: %w", err)
	}

	return &Validator{schema: sch}, nil
}

/*
Validate checks params against the schema registered for method. The params
are wrapped under a single-key object keyed by the method name, which is how
one shared document defines per-method array schemas. On violation it
returns a request-format error summarizing every violation, with the
method-scoped synthetic root in data paths rewritten to read "params".
*/
func (v *Validator) Validate(method string, params []any) error {
	payload := map[string]any{method: params}

	result, err := v.schema.Validate(gojsonschema.NewGoLoader(payload))

	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var summary strings.Builder

	summary.WriteString("Validation error:")

	for i, violation := range result.Errors() {
		if i > 0 {
			summary.WriteString(";")
		}

		fmt.Fprintf(
			&summary, " %s: %s",
			rewritePath(violation.Field(), method),
			violation.Description(),
		)
	}

	return errors.NewRequestError(errors.InvalidParamsCode, "%s", summary.String())
}

// rewritePath renames the method-scoped synthetic root so operator-facing
// messages read "params.0" rather than "add.0".
func rewritePath(field, method string) string {
	switch {
	case field == method || field == "(root)":
		return "params"
	case strings.HasPrefix(field, method+"."):
		return "params" + strings.TrimPrefix(field, method)
	default:
		return field
	}
}
