package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"batepapo/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Participant tests

func (s *StorageSuite) TestCreateAndGetParticipant() {
	p := &model.Participant{Name: "Ana", LastSeenAt: time.Now()}

	err := s.storage.CreateParticipant(s.ctx, p)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetParticipant(s.ctx, "Ana")
	s.Require().NoError(err)
	s.Equal("Ana", retrieved.Name)
}

func (s *StorageSuite) TestCreateParticipantRefusesDuplicate() {
	p := &model.Participant{Name: "Ana"}
	s.Require().NoError(s.storage.CreateParticipant(s.ctx, p))

	err := s.storage.CreateParticipant(s.ctx, &model.Participant{Name: "Ana"})
	s.ErrorIs(err, model.ErrParticipantExists)
}

func (s *StorageSuite) TestGetParticipantNotFound() {
	_, err := s.storage.GetParticipant(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrParticipantNotFound)
}

func (s *StorageSuite) TestSaveParticipantRefreshesLastSeen() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.CreateParticipant(s.ctx, &model.Participant{Name: "Ana", LastSeenAt: base})

	err := s.storage.SaveParticipant(s.ctx, &model.Participant{Name: "Ana", LastSeenAt: base.Add(time.Minute)})
	s.Require().NoError(err)

	retrieved, err := s.storage.GetParticipant(s.ctx, "Ana")
	s.Require().NoError(err)
	s.Equal(base.Add(time.Minute), retrieved.LastSeenAt)
}

func (s *StorageSuite) TestListParticipants() {
	_ = s.storage.CreateParticipant(s.ctx, &model.Participant{Name: "Ana"})
	_ = s.storage.CreateParticipant(s.ctx, &model.Participant{Name: "Bob"})

	participants, err := s.storage.ListParticipants(s.ctx)
	s.Require().NoError(err)
	s.Len(participants, 2)
}

func (s *StorageSuite) TestDeleteParticipant() {
	_ = s.storage.CreateParticipant(s.ctx, &model.Participant{Name: "Ana"})

	err := s.storage.DeleteParticipant(s.ctx, "Ana")
	s.Require().NoError(err)

	_, err = s.storage.GetParticipant(s.ctx, "Ana")
	s.ErrorIs(err, model.ErrParticipantNotFound)
}

func (s *StorageSuite) TestDeletedNameCanRejoin() {
	_ = s.storage.CreateParticipant(s.ctx, &model.Participant{Name: "Ana"})
	_ = s.storage.DeleteParticipant(s.ctx, "Ana")

	err := s.storage.CreateParticipant(s.ctx, &model.Participant{Name: "Ana"})
	s.NoError(err)
}

// Message tests

func (s *StorageSuite) TestAppendAndGetMessage() {
	msg := &model.Message{
		ID:   "m1",
		From: "Ana",
		To:   model.BroadcastTarget,
		Text: "hello",
		Type: model.MessageTypeBroadcast,
		Time: "12:00:00",
	}

	err := s.storage.AppendMessage(s.ctx, msg)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMessage(s.ctx, "m1")
	s.Require().NoError(err)
	s.Equal(msg.Text, retrieved.Text)
	s.Equal(msg.Type, retrieved.Type)
}

func (s *StorageSuite) TestGetMessageNotFound() {
	_, err := s.storage.GetMessage(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMessageNotFound)
}

func (s *StorageSuite) TestSaveMessageUpdatesInPlace() {
	_ = s.storage.AppendMessage(s.ctx, &model.Message{ID: "m1", From: "Ana", Text: "hi"})

	err := s.storage.SaveMessage(s.ctx, &model.Message{ID: "m1", From: "Ana", Text: "edited"})
	s.Require().NoError(err)

	retrieved, _ := s.storage.GetMessage(s.ctx, "m1")
	s.Equal("edited", retrieved.Text)
}

func (s *StorageSuite) TestSaveMessageNotFound() {
	err := s.storage.SaveMessage(s.ctx, &model.Message{ID: "ghost"})
	s.ErrorIs(err, model.ErrMessageNotFound)
}

func (s *StorageSuite) TestDeleteMessage() {
	_ = s.storage.AppendMessage(s.ctx, &model.Message{ID: "m1"})

	err := s.storage.DeleteMessage(s.ctx, "m1")
	s.Require().NoError(err)

	_, err = s.storage.GetMessage(s.ctx, "m1")
	s.ErrorIs(err, model.ErrMessageNotFound)
}

func (s *StorageSuite) TestDeleteMessageNotFound() {
	err := s.storage.DeleteMessage(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMessageNotFound)
}

func (s *StorageSuite) TestListMessagesKeepsAppendOrder() {
	_ = s.storage.AppendMessage(s.ctx, &model.Message{ID: "m1"})
	_ = s.storage.AppendMessage(s.ctx, &model.Message{ID: "m2"})
	_ = s.storage.AppendMessage(s.ctx, &model.Message{ID: "m3"})

	messages, err := s.storage.ListMessages(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(messages, 3)
	s.Equal("m1", messages[0].ID)
	s.Equal("m2", messages[1].ID)
	s.Equal("m3", messages[2].ID)
}

func (s *StorageSuite) TestListMessagesOrderSurvivesDelete() {
	_ = s.storage.AppendMessage(s.ctx, &model.Message{ID: "m1"})
	_ = s.storage.AppendMessage(s.ctx, &model.Message{ID: "m2"})
	_ = s.storage.AppendMessage(s.ctx, &model.Message{ID: "m3"})
	_ = s.storage.DeleteMessage(s.ctx, "m2")

	messages, err := s.storage.ListMessages(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(messages, 2)
	s.Equal("m1", messages[0].ID)
	s.Equal("m3", messages[1].ID)
}
