package answers

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/install-layer/internal/exitcode"
	"github.com/conn-castle/install-layer/internal/logging"
	"github.com/conn-castle/install-layer/internal/model"
)

func TestParseAnswers(t *testing.T) {
	data := []byte(`ntp:
  server: time.example.com
dns:
  nameservers:
    - 10.0.0.1
    - 10.0.0.2
ssh: false
`)
	layer, err := Parse(data, "test")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	ntp := layer["ntp"]
	if ntp.Enabled == nil || !*ntp.Enabled {
		t.Fatalf("ntp enabled = %+v", ntp.Enabled)
	}
	server := ntp.Params["server"]
	if len(server.Values) != 1 || server.Values[0] != "time.example.com" {
		t.Fatalf("server = %+v", server)
	}

	ns := layer["dns"].Params["nameservers"]
	if !ns.List || len(ns.Values) != 2 || ns.Values[1] != "10.0.0.2" {
		t.Fatalf("nameservers = %+v", ns)
	}

	ssh := layer["ssh"]
	if ssh.Enabled == nil || *ssh.Enabled {
		t.Fatal("ssh should be disabled")
	}
}

func TestParseScalarCoercion(t *testing.T) {
	data := []byte(`base:
  port: 8140
  tls: true
  ratio: 0.5
`)
	layer, err := Parse(data, "test")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	params := layer["base"].Params
	if params["port"].Values[0] != "8140" {
		t.Fatalf("port = %+v", params["port"])
	}
	if params["tls"].Values[0] != "true" {
		t.Fatalf("tls = %+v", params["tls"])
	}
	if params["ratio"].Values[0] != "0.5" {
		t.Fatalf("ratio = %+v", params["ratio"])
	}
}

func TestParseRejectsBadModuleEntry(t *testing.T) {
	if _, err := Parse([]byte("ntp: 42\n"), "test"); err == nil {
		t.Fatal("expected error for non-mapping module entry")
	}
}

func TestLoadMissingExplicitFileIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := Load(path, true)
	var exitErr *exitcode.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected ExitError, got %v", err)
	}
	if exitErr.Code != exitcode.Translate(exitcode.NoAnswerFile) {
		t.Fatalf("code = %d, want no_answer_file", exitErr.Code)
	}
}

func TestLoadMissingDefaultFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	layer, err := Load(path, false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(layer) != 0 {
		t.Fatalf("layer = %+v, want empty", layer)
	}
}

func newResolvedSet(t *testing.T) *model.ModuleSet {
	t.Helper()
	logging.Init(logging.LevelError, io.Discard)
	set := model.NewModuleSet()

	ntp := model.NewModule("ntp", "", true)
	ntp.AddParameter(&model.Parameter{Name: "server", Default: "pool.ntp.org", HasDefault: true})
	if err := set.Add(ntp); err != nil {
		t.Fatal(err)
	}

	dns := model.NewModule("dns", "", true)
	dns.AddParameter(&model.Parameter{Name: "nameservers", Multivalued: true})
	if err := set.Add(dns); err != nil {
		t.Fatal(err)
	}

	ssh := model.NewModule("ssh", "", false)
	ssh.AddParameter(&model.Parameter{Name: "port", Default: "22", HasDefault: true})
	if err := set.Add(ssh); err != nil {
		t.Fatal(err)
	}

	cli := model.Layer{"dns": {Params: map[string]model.Setting{
		"nameservers": {Values: []string{"10.0.0.1", "10.0.0.2"}, List: true},
	}}}
	if err := model.Resolve(set, model.Layer{}, cli); err != nil {
		t.Fatal(err)
	}
	return set
}

func TestStoreAndReload(t *testing.T) {
	set := newResolvedSet(t)
	path := filepath.Join(t.TempDir(), "answers.yaml")

	if err := Store(set, path); err != nil {
		t.Fatalf("store: %v", err)
	}

	layer, err := Load(path, true)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if v := layer["ntp"].Params["server"].Values[0]; v != "pool.ntp.org" {
		t.Fatalf("ntp server = %q", v)
	}
	ns := layer["dns"].Params["nameservers"]
	if !ns.List || len(ns.Values) != 2 {
		t.Fatalf("nameservers = %+v", ns)
	}
	ssh := layer["ssh"]
	if ssh.Enabled == nil || *ssh.Enabled {
		t.Fatal("disabled module must round-trip as false")
	}
	if len(ssh.Params) != 0 {
		t.Fatalf("disabled module must not persist values, got %+v", ssh.Params)
	}
}

func TestRenderDisabledModuleEvenWithOverrides(t *testing.T) {
	logging.Init(logging.LevelError, io.Discard)
	set := model.NewModuleSet()
	m := model.NewModule("ntp", "", true)
	m.AddParameter(&model.Parameter{Name: "server", Default: "pool.ntp.org", HasDefault: true})
	if err := set.Add(m); err != nil {
		t.Fatal(err)
	}
	disabled := false
	cli := model.Layer{"ntp": {
		Enabled: &disabled,
		Params:  map[string]model.Setting{"server": {Values: []string{"time.example.com"}}},
	}}
	if err := model.Resolve(set, model.Layer{}, cli); err != nil {
		t.Fatal(err)
	}

	data, err := Render(set)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(data) != "ntp: false\n" {
		t.Fatalf("render = %q, want disabled representation", data)
	}
}

func TestStoreOverwritesExisting(t *testing.T) {
	set := newResolvedSet(t)
	path := filepath.Join(t.TempDir(), "answers.yaml")
	if err := os.WriteFile(path, []byte("stale: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Store(set, path); err != nil {
		t.Fatalf("store: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) == "stale: true\n" {
		t.Fatal("store did not replace the file")
	}
}

func TestTempPath(t *testing.T) {
	path, err := TempPath()
	if err != nil {
		t.Fatalf("temp path: %v", err)
	}
	defer os.Remove(path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("temp answer file missing: %v", err)
	}
}
