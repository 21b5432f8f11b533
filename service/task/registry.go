package task

import (
	"context"
	"reflect"
	"strings"

	"github.com/viant/pydeploy/model/types"
)

const Name = "deploy"

// Task names
const (
	PythonSetup     = "python_setup"
	VirtualenvSetup = "virtualenv_setup"
	Build           = "build"
	BuildInstall    = "build_install"
	Uninstall       = "uninstall"
	RunTests        = "run_tests"
	InstallExtras   = "install_extras"
	RunScript       = "run_script"
	VirtualenvClean = "virtualenv_clean"
)

var descriptions = []struct {
	name        string
	description string
}{
	{PythonSetup, "Build the pinned python from source in the remote scratch directory."},
	{VirtualenvSetup, "Set up virtualenv with the detected or newly installed python."},
	{Build, "Build package binary as an egg."},
	{BuildInstall, "Build package binary as an egg and install it within the virtual environment."},
	{Uninstall, "Uninstall package egg from the virtual environment."},
	{RunTests, "Build, install and run tests within the virtual environment."},
	{InstallExtras, "Build, install and pip install extra packages (arguments or configured extras)."},
	{RunScript, "Build, install and run a configured or given python script with positional arguments."},
	{VirtualenvClean, "Remove the virtual environment."},
}

func (s *Service) Name() string {
	return Name
}

func (s *Service) Methods() types.Signatures {
	var result = make(types.Signatures, 0, len(descriptions))
	for _, item := range descriptions {
		result = append(result, types.Signature{
			Name:        item.name,
			Description: item.description,
			Input:       reflect.TypeOf(&Input{}),
			Output:      reflect.TypeOf(&Output{}),
		})
	}
	return result
}

// Method returns method by name
func (s *Service) Method(name string) (types.Executable, error) {
	name = strings.ToLower(name)
	if _, ok := s.tasks()[name]; !ok {
		return nil, types.NewMethodNotFoundError(name)
	}
	return func(ctx context.Context, in, out interface{}) error {
		input, ok := in.(*Input)
		if !ok {
			return types.NewInvalidInputError(in)
		}
		if input == nil {
			input = &Input{}
		}
		output, ok := out.(*Output)
		if !ok || output == nil {
			return types.NewInvalidOutputError(out)
		}
		return s.Execute(ctx, name, input, output)
	}, nil
}
