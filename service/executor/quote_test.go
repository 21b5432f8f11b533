package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	var testCases = []struct {
		description string
		input       string
		expect      string
	}{
		{description: "plain path", input: "/home/u/projects/dfms", expect: "/home/u/projects/dfms"},
		{description: "path with space", input: "/home/u/my project", expect: "'/home/u/my project'"},
		{description: "empty word", input: "", expect: "''"},
		{description: "shell meta", input: "a;rm -rf /", expect: "'a;rm -rf /'"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, Quote(testCase.input), testCase.description)
	}
}

func TestInDir(t *testing.T) {
	assert.Equal(t, "cd /tmp && make", InDir("/tmp", "make"))
	assert.Equal(t, "cd '/tmp/a b' && ls", InDir("/tmp/a b", "ls"))
	assert.Equal(t, "-i '/data/in put' -o /data/out", QuoteAll("-i", "/data/in put", "-o", "/data/out"))
}
