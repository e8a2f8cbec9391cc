package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
	k8syaml "sigs.k8s.io/yaml"
)

// fieldComments documents the top-level keys written by EncodeYAML.
var fieldComments = map[string]string{
	"solanaVersion":      "Solana runtime version the project targets.",
	"cargoDependencies":  "Crates added to Cargo.toml [dependencies]. Quote numeric-looking versions such as \"2.10\".",
	"npmDevDependencies": "Packages installed with npm install --save-dev. Set to {} to skip.",
	"npmDependencies":    "Packages installed with npm install. Set to {} to skip.",
	"typescript":         "tsconfig.json compilerOptions.",
	"jest":               "jest.config.js settings. The preset also transforms .ts files.",
	"programTemplate":    "Program template for src/lib.rs (see solanainit templates).",
	"cargo":              "Cargo.toml cargo-features and [lib] crate-type values.",
	"commands":           "Executables used for cargo and npm.",
}

// EncodeYAML renders cfg as a commented YAML document that Load reads back unchanged.
func EncodeYAML(cfg ProjectConfig) ([]byte, error) {
	plain, err := k8syaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(plain, &doc); err != nil {
		return nil, fmt.Errorf("parsing marshaled config: %w", err)
	}

	if len(doc.Content) == 1 && doc.Content[0].Kind == yaml.MappingNode {
		mapping := doc.Content[0]
		for i := 0; i+1 < len(mapping.Content); i += 2 {
			key := mapping.Content[i]
			if comment, ok := fieldComments[key.Value]; ok {
				key.HeadComment = comment
			}
		}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}

	return buf.Bytes(), nil
}
