// internal/merger/selection.go
package merger

import "sort"

// Selection holds which folders and extensions of a catalog are checked.
// Entries are addressed by name, never by position. It holds no file data;
// callers recompute the file list after changing it.
type Selection struct {
	folderOrder []string
	extOrder    []string
	folders     map[string]bool
	extensions  map[string]bool
}

// NewSelection starts from the selection flags stored in the catalog.
func NewSelection(c Catalog) *Selection {
	s := &Selection{
		folders:    make(map[string]bool, len(c.Folders)),
		extensions: make(map[string]bool, len(c.Extensions)),
	}
	for _, f := range c.Folders {
		if _, dup := s.folders[f.Name]; !dup {
			s.folderOrder = append(s.folderOrder, f.Name)
		}
		s.folders[f.Name] = f.Selected
	}
	for _, e := range c.Extensions {
		if _, dup := s.extensions[e.Ext]; !dup {
			s.extOrder = append(s.extOrder, e.Ext)
		}
		s.extensions[e.Ext] = e.Selected
	}
	return s
}

// SetFolderSelected checks or unchecks a folder. Unknown names are ignored;
// the result reports whether the name was known.
func (s *Selection) SetFolderSelected(name string, selected bool) bool {
	if _, ok := s.folders[name]; !ok {
		return false
	}
	s.folders[name] = selected
	return true
}

// SetExtensionSelected checks or unchecks an extension. Unknown extensions
// are ignored; the result reports whether the extension was known.
func (s *Selection) SetExtensionSelected(ext string, selected bool) bool {
	if _, ok := s.extensions[ext]; !ok {
		return false
	}
	s.extensions[ext] = selected
	return true
}

// SelectedFolders returns the checked folder names, sorted.
func (s *Selection) SelectedFolders() []string { return selectedKeys(s.folders) }

// SelectedExtensions returns the checked extensions, sorted.
func (s *Selection) SelectedExtensions() []string { return selectedKeys(s.extensions) }

// Folders returns every known folder with its current state, in catalog order.
func (s *Selection) Folders() []FolderEntry {
	out := make([]FolderEntry, len(s.folderOrder))
	for i, name := range s.folderOrder {
		out[i] = FolderEntry{Name: name, Selected: s.folders[name]}
	}
	return out
}

// Extensions returns every known extension with its current state, in
// catalog order.
func (s *Selection) Extensions() []ExtensionEntry {
	out := make([]ExtensionEntry, len(s.extOrder))
	for i, ext := range s.extOrder {
		out[i] = ExtensionEntry{Ext: ext, Selected: s.extensions[ext]}
	}
	return out
}

func selectedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k, on := range m {
		if on {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
