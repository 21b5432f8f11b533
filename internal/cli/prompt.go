package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/viant/pydeploy/policy"
)

// ask prompts for step approval; "all" switches the policy to automatic mode
func (a *App) ask(ctx context.Context, step string, p *policy.Policy) bool {
	if a.reader == nil {
		a.reader = bufio.NewReader(a.in)
	}
	fmt.Fprintf(a.out, "run step %v? [y/N/all]: ", step)
	answer, err := a.reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	if strings.EqualFold(strings.TrimSpace(answer), "all") {
		p.Mode = policy.ModeAuto
		return true
	}
	return policy.ParseBool(answer, false)
}
