// Package vocabfile loads user-supplied vocabulary tables from YAML. Tables
// missing from the file are taken from the built-in vocabulary, so a file
// may override only the qualifiers, for example:
//
//	qualifiers:
//	  - hrůzy
//	  - krále goblinů
package vocabfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"
	"github.com/maelvls/dungeonname/errutil"
	"github.com/maelvls/dungeonname/namegen"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// Load reads and parses the vocabulary file at path. Errors the user can fix
// by editing the file are wrapped with errutil.Fixable.
func Load(path string) (namegen.Vocabulary, error) {
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return namegen.Vocabulary{}, errutil.Fixable(errutil.NotFound{Kind: "vocabulary file", Name: path})
	case err != nil:
		return namegen.Vocabulary{}, fmt.Errorf("while reading vocabulary file: %w", err)
	}

	v, err := Parse(data)
	if err != nil {
		return namegen.Vocabulary{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// Parse validates data against the vocabulary schema, decodes it strictly,
// fills the missing tables from namegen.DefaultVocabulary and checks the
// result with Vocabulary.Validate.
func Parse(data []byte) (namegen.Vocabulary, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}

	if err := validateSchema(data); err != nil {
		return namegen.Vocabulary{}, err
	}

	var v namegen.Vocabulary
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.Strict()); err != nil {
		return namegen.Vocabulary{}, errutil.Fixable(fmt.Errorf("while decoding vocabulary: %w", err))
	}

	if err := mergo.Merge(&v, namegen.DefaultVocabulary()); err != nil {
		return namegen.Vocabulary{}, fmt.Errorf("while merging with the built-in tables: %w", err)
	}

	if err := v.Validate(); err != nil {
		return namegen.Vocabulary{}, errutil.Fixable(err)
	}
	return v, nil
}

// Marshal renders v in the vocabulary file format.
func Marshal(v namegen.Vocabulary) ([]byte, error) {
	return yaml.Marshal(v)
}

func validateSchema(data []byte) error {
	compiled, err := compileSchema()
	if err != nil {
		return fmt.Errorf("programmer mistake: %w", err)
	}

	jsonBytes, err := yaml.YAMLToJSON(data)
	if err != nil {
		return errutil.Fixable(fmt.Errorf("while converting YAML to JSON: %w", err))
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(jsonBytes))
	if err != nil {
		return errutil.Fixable(fmt.Errorf("while decoding vocabulary as JSON: %w", err))
	}

	err = compiled.Validate(doc)
	if err == nil {
		return nil
	}

	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return errutil.Fixable(fmt.Errorf("while validating vocabulary: %w", err))
	}

	var messages []string
	for _, cause := range validationErr.Causes {
		messages = append(messages, cause.Error())
	}
	switch len(messages) {
	case 0:
		return errutil.Fixable(errors.New(validationErr.Error()))
	case 1:
		return errutil.Fixable(errors.New(messages[0]))
	default:
		return errutil.Fixable(fmt.Errorf("\n* %s", strings.Join(messages, "\n* ")))
	}
}

func compileSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			schemaErr = fmt.Errorf("unmarshalling JSON schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("mem://vocabulary-schema.json", parsed); err != nil {
			schemaErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}

		schema, schemaErr = c.Compile("mem://vocabulary-schema.json")
	})
	return schema, schemaErr
}
