package model

import (
	"fmt"

	"github.com/conn-castle/install-layer/internal/logging"
	"github.com/conn-castle/install-layer/internal/messages"
)

// Validate runs every enabled parameter's validation rule and reports whether
// all passed. Rules run independently with no short-circuit so the caller
// gets the complete failure set in one pass; each failure produces exactly
// one log entry naming the parameter. Parameters of disabled modules are
// excluded. A parameter with no rule is always valid.
func Validate(set *ModuleSet) bool {
	valid := true
	for _, m := range set.Modules() {
		if !m.Enabled {
			continue
		}
		for _, p := range m.Parameters() {
			if reason := checkParameter(p); reason != "" {
				logging.Error(logging.ChannelInstaller, nil, messages.ValidationFailedFmt, p.Name, m.Name, reason)
				valid = false
			}
		}
	}
	return valid
}

// checkParameter returns a failure description, or empty when the parameter
// passes its rules.
func checkParameter(p *Parameter) string {
	values, set := p.Values()
	if !set || len(values) == 0 {
		if p.Required {
			return messages.ValidationRequired
		}
		return ""
	}
	if p.Pattern == nil {
		return ""
	}
	for _, v := range values {
		if !p.Pattern.MatchString(v) {
			return fmt.Sprintf(messages.ValidationPatternFmt, v, p.Pattern)
		}
	}
	return ""
}
