package atlas

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

// CheckSchema validates raw atlas JSON against the embedded CUE schema.
// JSON is a subset of CUE, so the document compiles directly and is unified
// with the #Atlas definition.
func CheckSchema(data []byte, filename string) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile atlas schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Atlas"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("lookup #Atlas: %w", err)
	}

	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return err
	}

	return def.Unify(doc).Validate(cue.Concrete(true))
}
