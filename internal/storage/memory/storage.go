package memory

import (
	"context"
	"sync"

	"batepapo/internal/model"
	"batepapo/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	participants map[string]*model.Participant
	messages     map[string]*model.Message
	messageOrder []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		participants: make(map[string]*model.Participant),
		messages:     make(map[string]*model.Message),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Participant operations

func (s *Storage) CreateParticipant(ctx context.Context, p *model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.participants[p.Name]; ok {
		return model.ErrParticipantExists
	}
	cp := *p
	s.participants[p.Name] = &cp
	return nil
}

func (s *Storage) SaveParticipant(ctx context.Context, p *model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.participants[p.Name] = &cp
	return nil
}

func (s *Storage) GetParticipant(ctx context.Context, name string) (*model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.participants[name]
	if !ok {
		return nil, model.ErrParticipantNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Storage) ListParticipants(ctx context.Context) ([]*model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	participants := make([]*model.Participant, 0, len(s.participants))
	for _, p := range s.participants {
		cp := *p
		participants = append(participants, &cp)
	}
	return participants, nil
}

func (s *Storage) DeleteParticipant(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.participants, name)
	return nil
}

// Message operations

func (s *Storage) AppendMessage(ctx context.Context, msg *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *msg
	s.messages[msg.ID] = &cp
	s.messageOrder = append(s.messageOrder, msg.ID)
	return nil
}

func (s *Storage) GetMessage(ctx context.Context, id string) (*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	msg, ok := s.messages[id]
	if !ok {
		return nil, model.ErrMessageNotFound
	}
	cp := *msg
	return &cp, nil
}

func (s *Storage) SaveMessage(ctx context.Context, msg *model.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[msg.ID]; !ok {
		return model.ErrMessageNotFound
	}
	cp := *msg
	s.messages[msg.ID] = &cp
	return nil
}

func (s *Storage) DeleteMessage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.messages[id]; !ok {
		return model.ErrMessageNotFound
	}
	delete(s.messages, id)
	for i, mid := range s.messageOrder {
		if mid == id {
			s.messageOrder = append(s.messageOrder[:i], s.messageOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Storage) ListMessages(ctx context.Context) ([]*model.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	messages := make([]*model.Message, 0, len(s.messageOrder))
	for _, id := range s.messageOrder {
		if msg, ok := s.messages[id]; ok {
			cp := *msg
			messages = append(messages, &cp)
		}
	}
	return messages, nil
}
