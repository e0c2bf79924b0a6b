// Package manifest reads and patches the host project's composer.json.
//
// Edits are spliced into the original bytes so that everything outside the
// patched key keeps its key order, indentation and values. The patched subtree
// is re-indented to match the document.
package manifest

import (
	"bytes"
	"errors"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	oerrors "github.com/wpscaffold/cli/internal/errors"
)

const (
	// PluginPackageType is the composer package type of WordPress plugins.
	PluginPackageType = "wordpress-plugin"

	autoloadSection = "autoload"
	psr4Section     = "psr-4"
	defaultIndent   = "    "

	defaultVendorDir   = "vendor"
	defaultPluginsPath = "wp-content/plugins/{$name}/"
	namePlaceholder    = "{$name}"
)

var errNotObject = errors.New("not a valid JSON object")

// Document is a parsed composer.json.
type Document struct {
	raw []byte
}

// Empty returns a document with no keys; lookups fall back to defaults.
func Empty() *Document {
	return &Document{raw: []byte("{}")}
}

// Parse wraps raw manifest bytes after checking they hold a JSON object.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, errNotObject
	}
	return &Document{raw: data}, nil
}

// Read loads and parses the manifest at path.
func Read(fs afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, oerrors.NewManifestError("reading composer.json", path, err)
	}

	doc, err := Parse(data)
	if err != nil {
		return nil, oerrors.NewManifestError("parsing composer.json", path, err)
	}
	return doc, nil
}

// Write persists doc to path, keeping the existing file mode when there is one.
func Write(fs afero.Fs, path string, doc *Document) error {
	mode := os.FileMode(0o644)
	if info, err := fs.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := afero.WriteFile(fs, path, doc.raw, mode); err != nil {
		return oerrors.NewManifestError("writing composer.json", path, err)
	}
	return nil
}

// Bytes returns the current manifest content.
func (d *Document) Bytes() []byte {
	return d.raw
}

// Get returns the value at a gjson path.
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.raw, path)
}

// AutoloadPath returns the directory mapped to a PSR-4 namespace prefix.
// The prefix is given without its trailing separator.
func (d *Document) AutoloadPath(namespace string) (string, bool) {
	r := d.Get(autoloadKey(namespace))
	return r.String(), r.Exists()
}

// RegisterAutoload sets autoload.psr-4["<namespace>\\"] to dir, overwriting any
// previous mapping and creating the intermediate objects when missing.
func (d *Document) RegisterAutoload(namespace, dir string) error {
	namespace = strings.TrimRight(namespace, `\`)
	if namespace == "" {
		return oerrors.NewValidationError("namespace must not be empty", "", "")
	}

	indent := d.indent()
	if indent == "" {
		out, err := sjson.SetBytes(d.raw, autoloadKey(namespace), dir)
		if err != nil {
			return oerrors.NewManifestError("updating autoload.psr-4", "", err)
		}
		d.raw = out
		return nil
	}

	current := d.Get(autoloadSection)
	autoload := []byte("{}")
	if current.IsObject() {
		autoload = []byte(current.Raw)
	}
	autoload, err := sjson.SetBytes(autoload, psr4Section+"."+escapePathComponent(namespace+`\`), dir)
	if err != nil {
		return oerrors.NewManifestError("updating autoload.psr-4", "", err)
	}

	formatted := pretty.PrettyOptions(autoload, &pretty.Options{Width: 80, Prefix: indent, Indent: indent})
	formatted = bytes.TrimRight(bytes.TrimPrefix(formatted, []byte(indent)), "\n")

	switch {
	case current.Exists() && current.Index > 0:
		d.raw = splice(d.raw, current.Index, current.Index+len(current.Raw), formatted)
	case current.Exists():
		out, err := sjson.SetRawBytes(d.raw, autoloadSection, formatted)
		if err != nil {
			return oerrors.NewManifestError("updating autoload.psr-4", "", err)
		}
		d.raw = out
	default:
		d.raw = appendTopLevelKey(d.raw, autoloadSection, formatted, indent)
	}
	return nil
}

// indent returns the indentation unit of a multi-line document, or "" when
// the document is written on a single line.
func (d *Document) indent() string {
	if !bytes.ContainsRune(d.raw, '\n') {
		return ""
	}
	for _, line := range strings.Split(string(d.raw), "\n")[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if strings.HasPrefix(trimmed, `"`) && len(trimmed) < len(line) {
			return line[:len(line)-len(trimmed)]
		}
	}
	return defaultIndent
}

// splice replaces raw[start:end] with value.
func splice(raw []byte, start, end int, value []byte) []byte {
	out := make([]byte, 0, len(raw)-(end-start)+len(value))
	out = append(out, raw[:start]...)
	out = append(out, value...)
	return append(out, raw[end:]...)
}

// appendTopLevelKey adds key as the last member of the root object, on its
// own line. The whitespace before the closing brace is kept.
func appendTopLevelKey(raw []byte, key string, value []byte, indent string) []byte {
	closing := bytes.LastIndexByte(raw, '}')
	last := len(bytes.TrimRight(raw[:closing], " \t\r\n")) - 1

	member := []byte("\n" + indent + `"` + key + `": `)
	member = append(member, value...)

	if raw[last] == '{' {
		return splice(raw, last+1, closing, append(member, '\n'))
	}
	return splice(raw, last+1, last+1, append([]byte(","), member...))
}

// VendorDir returns config.vendor-dir, defaulting to "vendor".
func (d *Document) VendorDir() string {
	if v := d.Get("config.vendor-dir").String(); v != "" {
		return strings.TrimRight(v, "/")
	}
	return defaultVendorDir
}

// InstallPath resolves where composer/installers would place a package of the
// given name and type, following extra.installer-paths. Entries match on
// "type:<type>" or "<vendor>/<name>". The result is slash-separated, relative
// to the manifest directory and ends with "/".
func (d *Document) InstallPath(name, packageType string) string {
	var found string

	d.Get("extra.installer-paths").ForEach(func(key, value gjson.Result) bool {
		for _, selector := range value.Array() {
			s := selector.String()
			if s == "type:"+packageType || strings.HasSuffix(s, "/"+name) {
				found = key.String()
				return false
			}
		}
		return true
	})

	if found == "" {
		found = defaultPluginsPath
	}

	path := strings.ReplaceAll(found, namePlaceholder, name)
	return strings.TrimRight(path, "/") + "/"
}

// autoloadKey builds the gjson/sjson path of a PSR-4 entry.
func autoloadKey(namespace string) string {
	return autoloadSection + "." + psr4Section + "." + escapePathComponent(namespace+`\`)
}

// escapePathComponent escapes gjson/sjson path syntax in a single key.
func escapePathComponent(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@', '!', '=', '<', '>', '%', ':':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
