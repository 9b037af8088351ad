package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toolcheck/toolcheck/internal/domain"
)

func TestDraftForURI(t *testing.T) {
	tests := []struct {
		uri  string
		want domain.Draft
	}{
		{"https://json-schema.org/draft/2020-12/schema", domain.Draft2020},
		{"https://json-schema.org/draft/2019-09/schema", domain.Draft2019},
		{"http://json-schema.org/draft-07/schema#", domain.Draft7},
		{"https://example.com/draft/07/schema", domain.Draft7},
		{"http://json-schema.org/draft-06/schema#", domain.Draft6},
		{"http://json-schema.org/draft-04/schema#", domain.Draft4},
		{"https://example.com/draft/04", domain.Draft4},
		{"https://example.com/custom-meta", domain.Draft2020},
		{"", domain.Draft2020},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.DraftForURI(tt.uri))
		})
	}
}

func TestDraftForURI_FirstMatchWins(t *testing.T) {
	// Contains both a 2020-12 and a draft-04 marker.
	uri := "https://json-schema.org/draft/2020-12/schema?compat=draft-04"
	assert.Equal(t, domain.Draft2020, domain.DraftForURI(uri))
}

func TestDraft_IsValid(t *testing.T) {
	for _, d := range domain.ValidDrafts {
		assert.True(t, d.IsValid(), "%s should be valid", d)
	}
	assert.False(t, domain.Draft("Draft3").IsValid())
}
