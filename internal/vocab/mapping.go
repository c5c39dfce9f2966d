package vocab

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"
)

// Entry is one alias and the catalog id it resolves to.
type Entry struct {
	Alias string
	ID    string
}

// Mapping is an insertion-ordered alias table. The zero value is empty and
// ready to use. A Mapping is not safe for concurrent mutation; once loaded it
// is only read.
type Mapping struct {
	index   map[string]int
	entries []Entry
}

// Load reads `alias : id` lines from r. Only I/O errors are returned.
func Load(r io.Reader) (*Mapping, error) {
	m := &Mapping{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}
		alias, id, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		m.set(alias, id)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadFile loads a mapping from a file on disk.
func LoadFile(path string) (*Mapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// NewMapping builds a mapping from entries using the same normalization and
// last-write-wins rule as Load.
func NewMapping(entries ...Entry) *Mapping {
	m := &Mapping{}
	for _, e := range entries {
		m.set(e.Alias, e.ID)
	}
	return m
}

func (m *Mapping) set(alias, id string) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	id = strings.TrimSpace(id)
	if alias == "" || id == "" {
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if pos, ok := m.index[alias]; ok {
		m.entries[pos].ID = id
		return
	}
	m.index[alias] = len(m.entries)
	m.entries = append(m.entries, Entry{Alias: alias, ID: id})
}

// Lookup returns the id for alias, matching case-insensitively.
func (m *Mapping) Lookup(alias string) (string, bool) {
	if m == nil {
		return "", false
	}
	pos, ok := m.index[strings.ToLower(strings.TrimSpace(alias))]
	if !ok {
		return "", false
	}
	return m.entries[pos].ID, true
}

// Len reports the number of aliases.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Entries returns a copy of the entries in file order.
func (m *Mapping) Entries() []Entry {
	if m == nil {
		return nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Aliases returns the aliases in file order.
func (m *Mapping) Aliases() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Alias
	}
	return out
}

// AliasesByLength returns the aliases longest first. Equal lengths are
// ordered lexically so the result is deterministic.
func (m *Mapping) AliasesByLength() []string {
	out := m.Aliases()
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// AliasFor returns the first alias that maps to id.
func (m *Mapping) AliasFor(id string) (string, bool) {
	if m == nil {
		return "", false
	}
	id = strings.TrimSpace(id)
	for _, e := range m.entries {
		if e.ID == id {
			return e.Alias, true
		}
	}
	return "", false
}

// Equal reports whether both mappings hold the same entries in the same
// order.
func (m *Mapping) Equal(other *Mapping) bool {
	if m.Len() != other.Len() {
		return false
	}
	for i := 0; i < m.Len(); i++ {
		if m.entries[i] != other.entries[i] {
			return false
		}
	}
	return true
}

// Lines renders the mapping as `alias: id` lines in file order.
func (m *Mapping) Lines() string {
	var b strings.Builder
	for i, e := range m.Entries() {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e.Alias)
		b.WriteString(": ")
		b.WriteString(e.ID)
	}
	return b.String()
}
