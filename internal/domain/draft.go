package domain

import "strings"

// Draft identifies a JSON Schema specification version.
type Draft string

const (
	Draft4    Draft = "Draft4"
	Draft6    Draft = "Draft6"
	Draft7    Draft = "Draft7"
	Draft2019 Draft = "Draft201909"
	Draft2020 Draft = "Draft202012"
)

// DefaultDraft is used when $schema is missing or unrecognized.
const DefaultDraft = Draft2020

// DefaultSchemaURI is the $schema value suggested to users whose document
// lacks one.
const DefaultSchemaURI = "https://json-schema.org/draft/2020-12/schema"

// draftMatchers are checked in order; the first substring hit wins.
var draftMatchers = []struct {
	substrings []string
	draft      Draft
}{
	{[]string{"draft/2020-12"}, Draft2020},
	{[]string{"draft/2019-09"}, Draft2019},
	{[]string{"draft-07", "draft/07"}, Draft7},
	{[]string{"draft-06", "draft/06"}, Draft6},
	{[]string{"draft-04", "draft/04"}, Draft4},
}

// DraftForURI picks the draft for a $schema URI by substring match.
func DraftForURI(uri string) Draft {
	for _, m := range draftMatchers {
		for _, sub := range m.substrings {
			if strings.Contains(uri, sub) {
				return m.draft
			}
		}
	}
	return DefaultDraft
}

// ValidDrafts enumerates every supported draft, oldest first.
var ValidDrafts = []Draft{Draft4, Draft6, Draft7, Draft2019, Draft2020}

// IsValid reports whether d is one of ValidDrafts.
func (d Draft) IsValid() bool {
	for _, v := range ValidDrafts {
		if d == v {
			return true
		}
	}
	return false
}
