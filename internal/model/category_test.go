package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Industrial Acids":      "industrial-acids",
		"  Solvents & Thinners": "solvents-thinners",
		"UPPER case":            "upper-case",
		"multi   spaces":        "multi-spaces",
		"already-a-slug":        "already-a-slug",
	}

	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}
