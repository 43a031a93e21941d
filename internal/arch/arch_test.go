// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../.."
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"seqgen/internal/writers", "seqgen/internal/export",
		"seqgen/internal/cli", "seqgen/internal/config",
		"seqgen/internal/app", "seqgen/cmd/",
	}
	bans := map[string][]string{
		"seqgen/internal/trays":    append([]string{"seqgen/internal/sequence"}, outer...),
		"seqgen/internal/sequence": outer,
		"seqgen/internal/writers": {
			"seqgen/internal/export", "seqgen/internal/cli",
			"seqgen/internal/app", "seqgen/cmd/",
		},
		"seqgen/internal/export": {
			"seqgen/internal/cli", "seqgen/internal/app", "seqgen/cmd/",
		},
		"seqgen/pkg/api": {"seqgen/internal/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "seqgen/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
