package extension

import (
	"sort"
	"strings"
	"sync"

	"github.com/viant/pydeploy/model/types"
)

// Actions provides action service
type Actions struct {
	services map[string]types.Service
	mux      sync.RWMutex
}

// Lookup returns a service by name
func (s *Actions) Lookup(name string) types.Service {
	s.mux.RLock()
	defer s.mux.RUnlock()
	return s.services[name]
}

// Register registers a service
func (s *Actions) Register(service types.Service) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.services[service.Name()] = service
}

// Names returns sorted registered service names
func (s *Actions) Names() []string {
	s.mux.RLock()
	defer s.mux.RUnlock()
	var result = make([]string, 0, len(s.services))
	for name := range s.services {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// Method resolves "service.method" or bare method name against defaultService
func (s *Actions) Method(ref, defaultService string) (types.Service, *types.Signature, types.Executable, error) {
	serviceName, methodName := defaultService, ref
	if idx := strings.LastIndex(ref, "."); idx != -1 {
		serviceName, methodName = ref[:idx], ref[idx+1:]
	}
	service := s.Lookup(serviceName)
	if service == nil {
		return nil, nil, nil, types.NewServiceNotFoundError(serviceName)
	}
	signature := service.Methods().Lookup(strings.ToLower(methodName))
	if signature == nil {
		return nil, nil, nil, types.NewMethodNotFoundError(ref)
	}
	executable, err := service.Method(signature.Name)
	if err != nil {
		return nil, nil, nil, err
	}
	return service, signature, executable, nil
}

// NewActions creates a new action service
func NewActions(services ...types.Service) *Actions {
	ret := &Actions{
		services: make(map[string]types.Service),
	}
	for _, service := range services {
		ret.Register(service)
	}
	return ret
}
