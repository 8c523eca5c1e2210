package mocks

import (
	"context"
	"time"

	"github.com/rpggio/timewizard/internal/domain/backup"
	"github.com/rpggio/timewizard/internal/domain/entry"
	"github.com/rpggio/timewizard/internal/domain/line"
	"github.com/rpggio/timewizard/internal/domain/note"
	"github.com/rpggio/timewizard/internal/domain/setting"
	"github.com/stretchr/testify/mock"
)

// EntryRepository is a mock for entry.Repository.
type EntryRepository struct {
	mock.Mock
}

func (m *EntryRepository) Upsert(ctx context.Context, e *entry.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *EntryRepository) List(ctx context.Context, opts entry.ListOptions) ([]entry.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]entry.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// LineRepository is a mock for line.Repository.
type LineRepository struct {
	mock.Mock
}

func (m *LineRepository) List(ctx context.Context) ([]line.Line, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]line.Line); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LineRepository) Get(ctx context.Context, code string) (*line.Line, error) {
	args := m.Called(ctx, code)
	if l, ok := args.Get(0).(*line.Line); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *LineRepository) Create(ctx context.Context, l *line.Line) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *LineRepository) CreateIfAbsent(ctx context.Context, l *line.Line) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *LineRepository) SetVisibility(ctx context.Context, code string, visible bool) error {
	args := m.Called(ctx, code, visible)
	return args.Error(0)
}

func (m *LineRepository) Delete(ctx context.Context, code string) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

// SettingRepository is a mock for setting.Repository.
type SettingRepository struct {
	mock.Mock
}

func (m *SettingRepository) List(ctx context.Context) ([]setting.Setting, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]setting.Setting); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SettingRepository) Get(ctx context.Context, key string) (*setting.Setting, error) {
	args := m.Called(ctx, key)
	if s, ok := args.Get(0).(*setting.Setting); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *SettingRepository) Put(ctx context.Context, s *setting.Setting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *SettingRepository) PutIfAbsent(ctx context.Context, s *setting.Setting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// NoteRepository is a mock for note.Repository.
type NoteRepository struct {
	mock.Mock
}

func (m *NoteRepository) Upsert(ctx context.Context, n *note.Note) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *NoteRepository) Delete(ctx context.Context, workDate, lineCode string) error {
	args := m.Called(ctx, workDate, lineCode)
	return args.Error(0)
}

func (m *NoteRepository) List(ctx context.Context, opts note.ListOptions) ([]note.Note, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]note.Note); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// BackupRepository is a mock for backup.Repository.
type BackupRepository struct {
	mock.Mock
}

func (m *BackupRepository) Snapshot(ctx context.Context, rng *backup.DateRange) (*backup.Document, error) {
	args := m.Called(ctx, rng)
	if doc, ok := args.Get(0).(*backup.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BackupRepository) Restore(ctx context.Context, doc *backup.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// AnchorSource is a mock pay-week anchor provider.
type AnchorSource struct {
	mock.Mock
}

func (m *AnchorSource) Anchor(ctx context.Context) (time.Time, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Time), args.Error(1)
}
