package config

import (
	"errors"
	"strings"

	"gopkg.in/ini.v1"
)

// iniSection is the named section read in addition to the unnamed one.
const iniSection = "hkid"

// INIFile is a koanf.Provider reading flat keys from an INI file. Keys in the
// unnamed section and in an [hkid] section are loaded, the latter winning;
// other sections are ignored.
type INIFile struct {
	path string
}

// INIProvider returns a provider for the INI file at path.
func INIProvider(path string) *INIFile { return &INIFile{path: path} }

// ReadBytes is not supported; the INI file is parsed by Read.
func (p *INIFile) ReadBytes() ([]byte, error) {
	return nil, errors.New("ini provider does not support ReadBytes")
}

// Read parses the file and returns its keys lower-cased.
func (p *INIFile) Read() (map[string]any, error) {
	f, err := ini.Load(p.path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any)
	for _, name := range []string{ini.DefaultSection, iniSection} {
		sec, err := f.GetSection(name)
		if err != nil {
			continue
		}
		for _, key := range sec.Keys() {
			out[strings.ToLower(key.Name())] = key.String()
		}
	}
	return out, nil
}

// mapProvider serves already-flat values, used for CLI overrides.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("map provider does not support ReadBytes")
}

func (m mapProvider) Read() (map[string]any, error) {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}
