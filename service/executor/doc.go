// Package executor runs shell commands on the deployment target and uploads
// files to it. Local targets use a bash session, remote ones an SSH session;
// both go through github.com/viant/gosh, uploads through github.com/viant/afs.
package executor
