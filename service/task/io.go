package task

import "github.com/viant/pydeploy/model/session"

// Input represents task input
type Input struct {
	Args []string `json:"args,omitempty"` //positional arguments, used by install_extras and run_script
}

// Output represents task output
type Output struct {
	Session *session.Session `json:"session,omitempty"`
	Steps   []string         `json:"steps,omitempty"`   //completed steps in execution order
	Skipped []string         `json:"skipped,omitempty"` //steps found already satisfied
}
