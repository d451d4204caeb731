package answers

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/conn-castle/install-layer/internal/messages"
	"github.com/conn-castle/install-layer/internal/model"
)

// Render serializes the module set's resolved values as the answer file
// document: modules in registration order, disabled modules as false,
// enabled modules as a parameter/value mapping. Parameters that resolved to
// "unset" are omitted.
func Render(set *model.ModuleSet) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, m := range set.Modules() {
		doc.Content = append(doc.Content, scalarNode(m.Name))
		if !m.Enabled {
			node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: "false"}
			doc.Content = append(doc.Content, node)
			continue
		}
		doc.Content = append(doc.Content, moduleNode(m))
	}
	return yaml.Marshal(doc)
}

func moduleNode(m *model.Module) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range m.Parameters() {
		values, ok := p.Values()
		if !ok {
			continue
		}
		node.Content = append(node.Content, scalarNode(p.Name))
		if p.Multivalued {
			seq := &yaml.Node{Kind: yaml.SequenceNode}
			for _, v := range values {
				seq.Content = append(seq.Content, scalarNode(v))
			}
			node.Content = append(node.Content, seq)
			continue
		}
		value := ""
		if len(values) > 0 {
			value = values[0]
		}
		node.Content = append(node.Content, scalarNode(value))
	}
	return node
}

func scalarNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// Store writes the rendered answers to path atomically while holding the
// answer file lock so concurrent installer invocations cannot interleave
// partial writes.
func Store(set *model.ModuleSet, path string) error {
	expanded, err := ExpandPath(path)
	if err != nil {
		return err
	}
	data, err := Render(set)
	if err != nil {
		return fmt.Errorf(messages.AnswersWriteFailedFmt, path, err)
	}
	return withFileLock(expanded+".lock", func() error {
		if err := writeFileAtomic(expanded, data, 0o600); err != nil {
			return fmt.Errorf(messages.AnswersWriteFailedFmt, path, err)
		}
		return nil
	})
}

// writeFileAtomic writes data to a sibling temp file and renames it over path.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}
