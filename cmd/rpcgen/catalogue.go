package main

import (
	"bytes"
	"go/token"
	"os"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Catalogue lists the RPC methods to wrap.
type Catalogue struct {
	Package  string   `yaml:"package"`
	Receiver string   `yaml:"receiver"`
	Methods  []Method `yaml:"methods"`
}

type Method struct {
	Name   string  `yaml:"name"`
	Doc    string  `yaml:"doc"`
	Params []Param `yaml:"params"`
	Result string  `yaml:"result"`
}

// Param is a positional parameter. Optional params are taken as pointers,
// or as nil-able slices, and left out of the call when unset.
type Param struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Optional bool   `yaml:"optional"`
}

// Identifiers used by the generated method bodies.
var reserved = map[string]bool{"ctx": true, "c": true, "result": true, "err": true}

func LoadCatalogue(path string) (*Catalogue, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalogue")
	}
	cat, err := ParseCatalogue(b)
	if err != nil {
		return nil, errors.Wrapf(err, "catalogue %s", path)
	}
	return cat, nil
}

func ParseCatalogue(b []byte) (*Catalogue, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	var cat Catalogue
	if err := dec.Decode(&cat); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	if err := cat.Validate(); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *Catalogue) Validate() error {
	if !token.IsIdentifier(c.Package) {
		return errors.Errorf("package %q is not an identifier", c.Package)
	}
	if !token.IsIdentifier(c.Receiver) {
		return errors.Errorf("receiver %q is not an identifier", c.Receiver)
	}
	if len(c.Methods) == 0 {
		return errors.New("no methods")
	}
	seen := make(map[string]bool, len(c.Methods))
	for _, m := range c.Methods {
		if err := m.validate(); err != nil {
			return errors.Wrapf(err, "method %q", m.Name)
		}
		if seen[m.Name] {
			return errors.Errorf("method %q listed twice", m.Name)
		}
		seen[m.Name] = true
	}
	return nil
}

func (m Method) validate() error {
	if !token.IsIdentifier(m.Name) || !unicode.IsLower(rune(m.Name[0])) {
		return errors.New("name must be a lowerCamel identifier")
	}
	if m.Result == "" {
		return errors.New("result type is required")
	}
	seen := make(map[string]bool, len(m.Params))
	optional := false
	for i, p := range m.Params {
		switch {
		case !token.IsIdentifier(p.Name) || token.IsKeyword(p.Name):
			return errors.Errorf("param %d: %q is not an identifier", i, p.Name)
		case reserved[p.Name]:
			return errors.Errorf("param %q is reserved", p.Name)
		case seen[p.Name]:
			return errors.Errorf("param %q listed twice", p.Name)
		case p.Type == "":
			return errors.Errorf("param %q has no type", p.Name)
		case p.Optional && strings.HasPrefix(p.Type, "*"):
			return errors.Errorf("optional param %q: give the element type, not a pointer", p.Name)
		case optional && !p.Optional:
			return errors.Errorf("required param %q follows an optional one", p.Name)
		}
		seen[p.Name] = true
		optional = optional || p.Optional
	}
	return nil
}
