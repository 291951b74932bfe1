// Copyright 2026 Illuminare Solutions
// SPDX-License-Identifier: Apache-2.0

package gateway

import (
	"fmt"
	"os"
	"strings"

	"github.com/illuminaresolutions/n8n-mcp-server/lib/secret"
)

// CredentialSource yields an API key in locked memory. The caller owns
// the returned buffer and must Close it (or hand it to something that
// will, like ConnectWithKey).
type CredentialSource interface {
	Read() (*secret.Buffer, error)
}

// EnvCredential reads the key from an environment variable. The env var
// string briefly touches the heap during os.Getenv; the returned copy
// is protected.
type EnvCredential struct {
	// Name is the environment variable name, used verbatim.
	Name string
}

// Read returns the variable's value in a locked buffer.
func (c EnvCredential) Read() (*secret.Buffer, error) {
	value := os.Getenv(c.Name)
	if value == "" {
		return nil, fmt.Errorf("environment variable %s is not set", c.Name)
	}
	return secret.NewFromBytes([]byte(value))
}

// FileCredential reads the key from a file. This keeps the key out of
// /proc/*/environ and lets file permissions guard it.
type FileCredential struct {
	// Path is the file to read. Surrounding whitespace is stripped, so
	// a file ending in a newline works. "-" reads one line from stdin.
	Path string
}

// Read returns the file contents in a locked buffer.
func (c FileCredential) Read() (*secret.Buffer, error) {
	return secret.ReadFromPath(c.Path)
}

// LiteralCredential carries the key inline. Fine for development;
// anything that can read the config file can read the key.
type LiteralCredential struct {
	Value string
}

// Read returns the literal value in a locked buffer.
func (c LiteralCredential) Read() (*secret.Buffer, error) {
	if c.Value == "" {
		return nil, fmt.Errorf("credential is empty")
	}
	return secret.NewFromBytes([]byte(c.Value))
}

// ParseCredentialSource parses the config notation for credentials:
// "env:NAME" reads an environment variable, "file:PATH" reads a file,
// anything else is the literal key. A literal key can therefore never
// begin with "env:" or "file:"; nothing n8n issues does.
func ParseCredentialSource(spec string) CredentialSource {
	if name, ok := strings.CutPrefix(spec, "env:"); ok {
		return EnvCredential{Name: name}
	}
	if path, ok := strings.CutPrefix(spec, "file:"); ok {
		return FileCredential{Path: path}
	}
	return LiteralCredential{Value: spec}
}
