package infra

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

// noteTTL keeps abandoned drafts from accumulating forever.
const noteTTL = 30 * 24 * time.Hour

// NoteStore persists assignment note drafts in Valkey so an admin can
// resume a half-written note after a page reload or from another machine.
type NoteStore struct {
	client valkey.Client
}

// NewNoteStore connects to Valkey and verifies the connection.
func NewNoteStore(addr string) (*NoteStore, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, fmt.Errorf("connect to valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pingCmd := client.B().Ping().Build()
	if err := client.Do(ctx, pingCmd).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping valkey: %w", err)
	}

	return &NoteStore{client: client}, nil
}

func noteKey(bookingID uuid.UUID) string {
	return fmt.Sprintf("assignment-note:%s", bookingID)
}

// Save writes the note draft for a booking, replacing any previous draft.
func (s *NoteStore) Save(ctx context.Context, bookingID uuid.UUID, note string) error {
	cmd := s.client.B().Set().Key(noteKey(bookingID)).Value(note).
		Ex(noteTTL).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

// Load returns the saved note draft for a booking, or "" when none exists.
func (s *NoteStore) Load(ctx context.Context, bookingID uuid.UUID) (string, error) {
	cmd := s.client.B().Get().Key(noteKey(bookingID)).Build()
	resp := s.client.Do(ctx, cmd)
	if err := resp.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return "", nil
		}
		return "", fmt.Errorf("load note: %w", err)
	}
	return resp.ToString()
}

// Clear removes the draft after the note is committed to the timeline.
func (s *NoteStore) Clear(ctx context.Context, bookingID uuid.UUID) error {
	cmd := s.client.B().Del().Key(noteKey(bookingID)).Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("clear note: %w", err)
	}
	return nil
}

// Close releases the Valkey connection.
func (s *NoteStore) Close() {
	s.client.Close()
}
