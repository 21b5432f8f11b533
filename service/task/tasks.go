package task

import (
	"context"
	"fmt"
	"path"

	"github.com/viant/pydeploy/service/environ"
	"github.com/viant/pydeploy/service/setuptools"
)

func (s *Service) tasks() map[string]taskFunc {
	return map[string]taskFunc{
		PythonSetup:     s.pythonSetup,
		VirtualenvSetup: s.virtualenvSetup,
		Build:           s.build,
		BuildInstall:    s.buildInstall,
		Uninstall:       s.uninstall,
		RunTests:        s.runTests,
		InstallExtras:   s.installExtras,
		RunScript:       s.runScript,
		VirtualenvClean: s.virtualenvClean,
	}
}

func (s *Service) pythonSetup(ctx context.Context, r *run, _ []string) error {
	if err := s.resolveEnv(ctx, r); err != nil {
		return err
	}
	return s.installPython(ctx, r)
}

func (s *Service) virtualenvSetup(ctx context.Context, r *run, _ []string) error {
	if err := s.resolveEnv(ctx, r); err != nil {
		return err
	}
	found := false
	err := s.step(ctx, r, "python.check", func(ctx context.Context) (bool, error) {
		location, ok, err := s.python.Check(ctx, r.exec, r.sess)
		if ok {
			r.sess = r.sess.WithPython(location)
		}
		found = ok
		return false, err
	})
	if err != nil {
		return err
	}
	if !found {
		if err = s.installPython(ctx, r); err != nil {
			return err
		}
	}
	return s.step(ctx, r, "venv.create", func(ctx context.Context) (bool, error) {
		created, err := s.venv.Provision(ctx, r.exec, r.sess)
		return !created, err
	})
}

func (s *Service) build(ctx context.Context, r *run, args []string) error {
	if err := s.virtualenvSetup(ctx, r, args); err != nil {
		return err
	}
	if err := s.resolveSource(ctx, r); err != nil {
		return err
	}
	return s.setup(ctx, r, setuptools.BdistEgg)
}

func (s *Service) buildInstall(ctx context.Context, r *run, args []string) error {
	if err := s.build(ctx, r, args); err != nil {
		return err
	}
	return s.setup(ctx, r, setuptools.Install)
}

func (s *Service) uninstall(ctx context.Context, r *run, args []string) error {
	if err := s.virtualenvSetup(ctx, r, args); err != nil {
		return err
	}
	return s.step(ctx, r, "setup.uninstall", func(ctx context.Context) (bool, error) {
		return false, setuptools.Uninstall(ctx, r.exec, r.sess)
	})
}

func (s *Service) runTests(ctx context.Context, r *run, args []string) error {
	if err := s.buildInstall(ctx, r, args); err != nil {
		return err
	}
	return s.setup(ctx, r, setuptools.Test)
}

func (s *Service) installExtras(ctx context.Context, r *run, args []string) error {
	packages := args
	if len(packages) == 0 {
		packages = s.config.Extras
	}
	if len(packages) == 0 {
		return fmt.Errorf("%v: no packages given and no extras configured", InstallExtras)
	}
	if err := s.buildInstall(ctx, r, nil); err != nil {
		return err
	}
	return s.step(ctx, r, "pip.install", func(ctx context.Context) (bool, error) {
		return false, setuptools.PipInstall(ctx, r.exec, r.sess, r.sess.SourceDir, packages...)
	})
}

func (s *Service) runScript(ctx context.Context, r *run, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%v: script name or path was empty", RunScript)
	}
	dir, script, scriptArgs := "", args[0], args[1:]
	if configured, ok := s.config.Scripts[args[0]]; ok && configured != nil {
		dir, script = configured.Dir, configured.Path
		scriptArgs = append(append([]string{}, configured.Args...), scriptArgs...)
	}
	if err := s.buildInstall(ctx, r, nil); err != nil {
		return err
	}
	return s.step(ctx, r, "script.run", func(ctx context.Context) (bool, error) {
		return false, setuptools.RunScript(ctx, r.exec, r.sess, path.Join(r.sess.SourceDir, dir), script, scriptArgs...)
	})
}

func (s *Service) virtualenvClean(ctx context.Context, r *run, _ []string) error {
	if err := s.resolveEnv(ctx, r); err != nil {
		return err
	}
	return s.step(ctx, r, "venv.clean", func(ctx context.Context) (bool, error) {
		return false, s.venv.Clean(ctx, r.exec, r.sess)
	})
}

func (s *Service) resolveEnv(ctx context.Context, r *run) error {
	if r.sess != nil {
		return nil
	}
	return s.step(ctx, r, "env.resolve", func(ctx context.Context) (bool, error) {
		sess, err := environ.Resolve(ctx, r.exec, r.id, s.config.Layout)
		if err == nil {
			r.sess = sess
		}
		return false, err
	})
}

func (s *Service) installPython(ctx context.Context, r *run) error {
	return s.step(ctx, r, "python.install", func(ctx context.Context) (bool, error) {
		location, err := s.python.Install(ctx, r.exec, r.sess)
		if err == nil {
			r.sess = r.sess.WithPython(location)
		}
		return false, err
	})
}

func (s *Service) resolveSource(ctx context.Context, r *run) error {
	if r.sess.HasSource() {
		return nil
	}
	return s.step(ctx, r, "source.resolve", func(ctx context.Context) (bool, error) {
		sess, err := s.source.Resolve(ctx, r.exec, r.sess)
		if err == nil {
			r.sess = sess
		}
		return false, err
	})
}

func (s *Service) setup(ctx context.Context, r *run, subcommand string) error {
	return s.step(ctx, r, "setup."+subcommand, func(ctx context.Context) (bool, error) {
		return false, setuptools.Run(ctx, r.exec, r.sess, subcommand)
	})
}
