package service

import (
	"context"
	"fmt"

	"github.com/Dan9191/unidash/internal/models"
	"github.com/Dan9191/unidash/internal/render"
	"github.com/Dan9191/unidash/internal/session"
	"github.com/Dan9191/unidash/internal/state"
)

// Notes returns the notes of sess, newest first, filtered by query
func (s *Service) Notes(ctx context.Context, sess session.Session, query string) ([]models.Note, error) {
	if !sess.Valid() {
		return nil, ErrUnauthorized
	}
	book := state.Notebook{Notes: s.repo.Notes(ctx, sess)}
	return book.Search(query), nil
}

// CreateNote adds a note at the top of the list
func (s *Service) CreateNote(ctx context.Context, sess session.Session, title, content string) (models.Note, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return models.Note{}, err
	}
	defer unlock()

	book := state.Notebook{Notes: s.repo.Notes(ctx, sess)}
	note, err := book.Create(s.gen, title, content)
	if err != nil {
		return models.Note{}, err
	}
	if err := s.repo.SaveNotes(ctx, sess, book.Notes); err != nil {
		return models.Note{}, fmt.Errorf("failed to save notes: %w", err)
	}
	return note, nil
}

// UpdateNote edits a note in place
func (s *Service) UpdateNote(ctx context.Context, sess session.Session, id, title, content string) (models.Note, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return models.Note{}, err
	}
	defer unlock()

	book := state.Notebook{Notes: s.repo.Notes(ctx, sess)}
	note, err := book.Update(s.gen, id, title, content)
	if err != nil {
		return models.Note{}, err
	}
	if err := s.repo.SaveNotes(ctx, sess, book.Notes); err != nil {
		return models.Note{}, fmt.Errorf("failed to save notes: %w", err)
	}
	return note, nil
}

// DeleteNote removes a note. Deleting an unknown id is a no-op.
func (s *Service) DeleteNote(ctx context.Context, sess session.Session, id string) error {
	unlock, err := s.begin(sess)
	if err != nil {
		return err
	}
	defer unlock()

	book := state.Notebook{Notes: s.repo.Notes(ctx, sess)}
	if !book.Delete(id) {
		return nil
	}
	if err := s.repo.SaveNotes(ctx, sess, book.Notes); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

// NoteHTML renders the content of a note from markdown
func (s *Service) NoteHTML(ctx context.Context, sess session.Session, id string) (string, error) {
	if !sess.Valid() {
		return "", ErrUnauthorized
	}
	book := state.Notebook{Notes: s.repo.Notes(ctx, sess)}
	note, ok := book.Get(id)
	if !ok {
		return "", state.ErrNoteNotFound
	}
	return render.NoteHTML(note.Content)
}

// QuickNote returns the scratch note of sess
func (s *Service) QuickNote(ctx context.Context, sess session.Session) (models.QuickNote, error) {
	if !sess.Valid() {
		return models.QuickNote{}, ErrUnauthorized
	}
	text := s.repo.QuickNote(ctx, sess)
	return models.QuickNote{Text: text, Chars: state.CharCount(text)}, nil
}

// SetQuickNote replaces the scratch note of sess
func (s *Service) SetQuickNote(ctx context.Context, sess session.Session, text string) (models.QuickNote, error) {
	unlock, err := s.begin(sess)
	if err != nil {
		return models.QuickNote{}, err
	}
	defer unlock()

	if err := s.repo.SaveQuickNote(ctx, sess, text); err != nil {
		return models.QuickNote{}, fmt.Errorf("failed to save quick note: %w", err)
	}
	return models.QuickNote{Text: text, Chars: state.CharCount(text)}, nil
}
