// Package answers persists resolved parameter values to the YAML answer
// file: one top-level key per module, holding either a parameter/value
// mapping or false for a disabled module.
package answers

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/conn-castle/install-layer/internal/exitcode"
	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/model"
)

// Load reads prior answers from path into a resolution layer. When explicit
// is true the file was named by the user and its absence is fatal
// (no_answer_file); otherwise a missing file simply yields no answers.
func Load(path string, explicit bool) (model.Layer, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return nil, exitcode.Fail(exitcode.NoAnswerFile, messages.AnswersMissingFileFmt, path)
			}
			return model.Layer{}, nil
		}
		return nil, fmt.Errorf(messages.AnswersReadFailedFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes YAML answer data into a resolution layer.
func Parse(data []byte, source string) (model.Layer, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf(messages.AnswersParseFailedFmt, source, err)
	}
	layer := model.Layer{}
	for name, entry := range raw {
		settings, err := parseModuleEntry(name, entry)
		if err != nil {
			return nil, err
		}
		layer[name] = settings
	}
	return layer, nil
}

func parseModuleEntry(module string, entry any) (model.ModuleSettings, error) {
	switch v := entry.(type) {
	case bool:
		enabled := v
		return model.ModuleSettings{Enabled: &enabled}, nil
	case nil:
		enabled := true
		return model.ModuleSettings{Enabled: &enabled}, nil
	case map[string]any:
		enabled := true
		settings := model.ModuleSettings{Enabled: &enabled, Params: map[string]model.Setting{}}
		for param, value := range v {
			setting, err := parseValue(module, param, value)
			if err != nil {
				return model.ModuleSettings{}, err
			}
			settings.Params[param] = setting
		}
		return settings, nil
	default:
		return model.ModuleSettings{}, fmt.Errorf(messages.AnswersBadModuleFmt, module)
	}
}

func parseValue(module string, param string, value any) (model.Setting, error) {
	switch v := value.(type) {
	case []any:
		values := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := scalarString(item)
			if !ok {
				return model.Setting{}, fmt.Errorf(messages.AnswersBadValueFmt, module, param, item)
			}
			values = append(values, s)
		}
		return model.Setting{Values: values, List: true}, nil
	default:
		s, ok := scalarString(v)
		if !ok {
			return model.Setting{}, fmt.Errorf(messages.AnswersBadValueFmt, module, param, value)
		}
		return model.Setting{Values: []string{s}}, nil
	}
}

func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), true
	case int:
		return strconv.Itoa(v), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// ExpandPath expands a leading ~ in an answer file path.
func ExpandPath(path string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.AnswersExpandPathFmt, path, err)
	}
	return expanded, nil
}

// TempPath creates a uniquely named temporary answer file for runs with
// --dont-save-answers and returns its path. The caller removes it after the
// run, best effort.
func TempPath() (string, error) {
	f, err := os.CreateTemp("", "il-answers-*.yaml")
	if err != nil {
		return "", fmt.Errorf(messages.AnswersTempFailedFmt, err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		return "", fmt.Errorf(messages.AnswersTempFailedFmt, err)
	}
	return path, nil
}
