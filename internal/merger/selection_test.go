// internal/merger/selection_test.go
package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testCatalog() Catalog {
	return Catalog{
		Root:       "/project",
		Folders:    []FolderEntry{{Name: "src"}, {Name: "docs"}, {Name: "assets"}},
		Extensions: []ExtensionEntry{{Ext: ".md"}, {Ext: ".py"}, {Ext: ".txt"}},
	}
}

func TestSelection_StartsFromCatalog(t *testing.T) {
	s := NewSelection(testCatalog())
	assert.Empty(t, s.SelectedFolders())
	assert.Empty(t, s.SelectedExtensions())
	assert.Equal(t, []FolderEntry{{Name: "src"}, {Name: "docs"}, {Name: "assets"}}, s.Folders())
}

func TestSelection_SetIsIdempotent(t *testing.T) {
	s := NewSelection(testCatalog())

	assert.True(t, s.SetFolderSelected("src", true))
	assert.True(t, s.SetFolderSelected("src", true))
	assert.True(t, s.SetFolderSelected("docs", true))
	assert.True(t, s.SetExtensionSelected(".py", true))
	assert.True(t, s.SetExtensionSelected(".py", true))

	assert.Equal(t, []string{"docs", "src"}, s.SelectedFolders())
	assert.Equal(t, []string{".py"}, s.SelectedExtensions())
	assert.Equal(t, []FolderEntry{{Name: "src", Selected: true}, {Name: "docs", Selected: true}, {Name: "assets"}}, s.Folders())
}

func TestSelection_UnknownNamesAreIgnored(t *testing.T) {
	s := NewSelection(testCatalog())

	assert.False(t, s.SetFolderSelected("vendor", true))
	assert.False(t, s.SetExtensionSelected(".go", true))
	assert.False(t, s.SetExtensionSelected("py", true))

	assert.Empty(t, s.SelectedFolders())
	assert.Empty(t, s.SelectedExtensions())
	assert.Len(t, s.Folders(), 3)
	assert.Len(t, s.Extensions(), 3)
}

func TestSelection_ToggleRoundTrip(t *testing.T) {
	s := NewSelection(testCatalog())
	s.SetFolderSelected("docs", true)
	s.SetExtensionSelected(".txt", true)
	s.SetExtensionSelected(".md", true)

	folders, exts := s.SelectedFolders(), s.SelectedExtensions()

	s.SetFolderSelected("docs", false)
	s.SetExtensionSelected(".md", false)
	s.SetFolderSelected("src", true)
	s.SetFolderSelected("src", false)
	s.SetFolderSelected("docs", true)
	s.SetExtensionSelected(".md", true)

	assert.Equal(t, folders, s.SelectedFolders())
	assert.Equal(t, exts, s.SelectedExtensions())
}

func TestSelection_KeepsCatalogFlags(t *testing.T) {
	c := testCatalog()
	c.Extensions[2].Selected = true
	s := NewSelection(c)
	assert.Equal(t, []string{".txt"}, s.SelectedExtensions())
}
