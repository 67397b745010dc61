package state

import (
	"strings"

	"github.com/Dan9191/unidash/internal/models"
)

// Notebook is a note collection, newest first.
type Notebook struct {
	Notes []models.Note
}

// Create prepends a new note.
func (n *Notebook) Create(gen Generator, title, content string) (models.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return models.Note{}, ErrEmptyNote
	}
	note := models.Note{
		ID:      gen.NewID(),
		Title:   title,
		Content: content,
		Date:    gen.Now(),
	}
	n.Notes = append([]models.Note{note}, n.Notes...)
	return note, nil
}

// Update replaces title and content of the note with id and bumps its date.
// The note keeps its position.
func (n *Notebook) Update(gen Generator, id, title, content string) (models.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return models.Note{}, ErrEmptyNote
	}
	for i := range n.Notes {
		if n.Notes[i].ID != id {
			continue
		}
		n.Notes[i].Title = title
		n.Notes[i].Content = content
		n.Notes[i].Date = gen.Now()
		return n.Notes[i], nil
	}
	return models.Note{}, ErrNoteNotFound
}

// Get returns the note with id.
func (n *Notebook) Get(id string) (models.Note, bool) {
	for _, note := range n.Notes {
		if note.ID == id {
			return note, true
		}
	}
	return models.Note{}, false
}

// Delete removes the note with id and reports whether one was removed.
func (n *Notebook) Delete(id string) bool {
	for i := range n.Notes {
		if n.Notes[i].ID == id {
			n.Notes = append(n.Notes[:i:i], n.Notes[i+1:]...)
			return true
		}
	}
	return false
}

// Search returns notes whose title or content contains query, ignoring case.
func (n *Notebook) Search(query string) []models.Note {
	query = strings.ToLower(query)
	result := make([]models.Note, 0, len(n.Notes))
	for _, note := range n.Notes {
		if strings.Contains(strings.ToLower(note.Title), query) ||
			strings.Contains(strings.ToLower(note.Content), query) {
			result = append(result, note)
		}
	}
	return result
}
