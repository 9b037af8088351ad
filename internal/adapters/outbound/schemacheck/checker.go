package schemacheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/toolcheck/toolcheck/internal/domain"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var drafts = map[domain.Draft]*jsonschema.Draft{
	domain.Draft4:    jsonschema.Draft4,
	domain.Draft6:    jsonschema.Draft6,
	domain.Draft7:    jsonschema.Draft7,
	domain.Draft2019: jsonschema.Draft2019,
	domain.Draft2020: jsonschema.Draft2020,
}

// Checker implements domain.SchemaChecker with santhosh-tekuri/jsonschema.
type Checker struct{}

// New creates a Checker.
func New() *Checker { return &Checker{} }

// Check validates document against the bundled metaschema of draft. The
// document itself is never compiled, so its $ref targets are not resolved
// and its own $schema keyword does not change the draft.
func (c *Checker) Check(document []byte, draft domain.Draft) ([]domain.Issue, error) {
	d, ok := drafts[draft]
	if !ok {
		return nil, fmt.Errorf("unsupported draft %q", draft)
	}

	meta, err := metaschema(d)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(document))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}

	err = meta.Validate(doc)
	if err == nil {
		return nil, nil
	}
	var verr *jsonschema.ValidationError
	if errors.As(err, &verr) {
		return issuesFrom(verr), nil
	}
	return nil, fmt.Errorf("validating against %s metaschema: %w", d, err)
}

// metaschema returns the compiled metaschema shipped with the library for d.
func metaschema(d *jsonschema.Draft) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = d
	compiler.LoadURL = refuseRemote

	meta, err := compiler.Compile(d.URL())
	if err != nil {
		return nil, fmt.Errorf("loading %s metaschema: %w", d, err)
	}
	return meta, nil
}

func refuseRemote(url string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("refusing to load %s", url)
}

// issuesFrom flattens a validation error tree into its leaves, ordered by
// instance location.
func issuesFrom(verr *jsonschema.ValidationError) []domain.Issue {
	var leaves []*jsonschema.ValidationError
	collectLeaves(verr, &leaves)

	sort.SliceStable(leaves, func(i, j int) bool {
		return leaves[i].InstanceLocation < leaves[j].InstanceLocation
	})

	issues := make([]domain.Issue, 0, len(leaves))
	seen := make(map[string]bool)
	for _, leaf := range leaves {
		loc := leaf.InstanceLocation
		if loc == "" {
			loc = "#"
		} else {
			loc = "#" + loc
		}
		key := loc + "\x00" + leaf.Message
		if seen[key] {
			continue
		}
		seen[key] = true
		issues = append(issues, domain.Issue{
			Severity:   domain.SeverityError,
			Location:   loc,
			Message:    leaf.Message,
			Suggestion: keywordHint(leaf.KeywordLocation),
		})
	}
	return issues
}

func collectLeaves(verr *jsonschema.ValidationError, out *[]*jsonschema.ValidationError) {
	if len(verr.Causes) == 0 {
		*out = append(*out, verr)
		return
	}
	for _, c := range verr.Causes {
		collectLeaves(c, out)
	}
}

func keywordHint(keywordLocation string) string {
	if keywordLocation == "" {
		return ""
	}
	return "metaschema rule " + keywordLocation
}
