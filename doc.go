// Package pydeploy deploys a python project to a remote (or local) host.
//
// A deployment resolves the remote home and application directory, makes sure
// a pinned python interpreter is available (building it from source when
// needed), provisions a virtual environment, ships the source tree when the
// host cannot reach it in place, and finally runs setup.py install, bdist_egg
// or test inside the virtual environment.
//
// Tasks are exposed through the root Service:
//
//	srv, _ := pydeploy.New(config)
//	out, err := srv.Run(ctx, "build_install")
//
// Every task opens a single shell session on the target host; see the
// service/task package for the task catalogue and step names.
package pydeploy
