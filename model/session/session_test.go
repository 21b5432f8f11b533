package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_With(t *testing.T) {
	base := New("r1", "/home/u", "/home/u/projects/dfms", "dfms", "/tmp")
	withPython := base.WithPython("/usr/bin/python2.7")
	withSource := withPython.WithSource("/tmp/dfms", true)

	assert.False(t, base.HasPython())
	assert.True(t, withPython.HasPython())
	assert.False(t, withPython.HasSource())
	assert.True(t, withSource.HasSource())
	assert.True(t, withSource.Shipped)
	assert.Equal(t, "/usr/bin/python2.7", withSource.Python)
	assert.Equal(t, "", base.Python)
}

func TestSession_PythonRoot(t *testing.T) {
	var testCases = []struct {
		description string
		appDir      string
		expect      string
	}{
		{description: "default layout", appDir: "/home/u/projects/dfms", expect: "/home/u/projects/python"},
		{description: "trailing slash", appDir: "/opt/envs/app/", expect: "/opt/envs/python"},
	}
	for _, testCase := range testCases {
		sess := &Session{AppDir: testCase.appDir}
		assert.Equal(t, testCase.expect, sess.PythonRoot(), testCase.description)
	}
}
