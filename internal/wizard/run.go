package wizard

import (
	"fmt"
	"strings"

	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/model"
)

// Run walks the module set interactively and returns a resolution layer
// equivalent to CLI overrides: an enable decision per module and a value per
// parameter of each enabled module. Current resolved values (defaults and
// prior answers) are prefilled so pressing through keeps them.
func Run(set *model.ModuleSet, ui UI) (model.Layer, error) {
	layer := model.Layer{}
	for _, m := range set.Modules() {
		enabled := m.Enabled
		if err := ui.Confirm(fmt.Sprintf(messages.WizardEnableModuleFmt, m.Name), &enabled); err != nil {
			return nil, err
		}
		settings := model.ModuleSettings{Enabled: &enabled, Params: map[string]model.Setting{}}
		if enabled {
			for _, p := range m.Parameters() {
				setting, err := promptParameter(ui, m, p)
				if err != nil {
					return nil, err
				}
				settings.Params[p.Name] = setting
			}
		}
		layer[m.Name] = settings
	}
	return layer, nil
}

func promptParameter(ui UI, m *model.Module, p *model.Parameter) (model.Setting, error) {
	value := currentValue(p)
	title := fmt.Sprintf(messages.WizardParamTitleFmt, m.Name, p.Name)
	description := p.Doc
	if p.Multivalued {
		if description != "" {
			description += ". "
		}
		description += messages.WizardListHint
	}
	if err := ui.Input(title, description, &value); err != nil {
		return model.Setting{}, err
	}
	if p.Multivalued {
		return model.Setting{Values: splitList(value), List: true}, nil
	}
	return model.Setting{Values: []string{value}}, nil
}

func currentValue(p *model.Parameter) string {
	values, ok := p.Values()
	if !ok {
		return ""
	}
	return strings.Join(values, ",")
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		values = append(values, strings.TrimSpace(part))
	}
	return values
}
