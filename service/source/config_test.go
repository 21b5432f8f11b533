package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	var testCases = []struct {
		description string
		mutate      func(c *Config)
		expectErr   bool
	}{
		{description: "defaults", mutate: func(c *Config) {}},
		{description: "setup.py probed by default", mutate: func(c *Config) { assert.Equal(t, "setup.py", c.ProbeFile) }},
		{description: "empty dir", mutate: func(c *Config) { c.Dir = "" }, expectErr: true},
		{description: "empty probe file", mutate: func(c *Config) { c.ProbeFile = "" }, expectErr: true},
		{description: "malformed exclude", mutate: func(c *Config) { c.Excludes = append(c.Excludes, "[") }, expectErr: true},
		{description: "character class exclude", mutate: func(c *Config) { c.Excludes = []string{"*.py[co]"} }},
	}
	for _, testCase := range testCases {
		config := DefaultConfig("dfms")
		testCase.mutate(config)
		err := config.Validate()
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		assert.NoError(t, err, testCase.description)
	}
}
