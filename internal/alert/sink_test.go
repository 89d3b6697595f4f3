package alert

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/subuhana2303/vaanirakshak/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// mockRepo records persisted alerts and can be told to fail.
type mockRepo struct {
	mu     sync.Mutex
	alerts []models.AlertRecord
	fail   bool
}

func (m *mockRepo) Add(ctx context.Context, a *models.AlertRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("transport down")
	}
	m.alerts = append(m.alerts, *a)
	return nil
}

func (m *mockRepo) List(ctx context.Context, limit int) ([]models.AlertRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AlertRecord(nil), m.alerts...), nil
}

func (m *mockRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.alerts), nil
}

func (m *mockRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.alerts)
}

func testLocation() models.Location {
	return models.Location{Latitude: 28.6139, Longitude: 77.2090, Timestamp: time.Now()}
}

func TestLogSink_EmitDelivers(t *testing.T) {
	repo := &mockRepo{}
	sink := NewLogSink(repo, 2, 10)
	sink.Start(context.Background())

	if ok := sink.Emit(models.CategoryFire, "Fire emergency - evacuation required", testLocation()); !ok {
		t.Error("expected Emit to accept the alert")
	}

	sink.Stop() // drains the queue

	if repo.count() != 1 {
		t.Fatalf("expected 1 persisted alert, got %d", repo.count())
	}
	got, _ := repo.List(context.Background(), 10)
	if got[0].Category != models.CategoryFire {
		t.Errorf("expected fire category, got %s", got[0].Category)
	}
	if got[0].ID == "" {
		t.Error("expected a generated alert ID")
	}
}

func TestLogSink_FullQueueReturnsFalse(t *testing.T) {
	// Workers never started, so the buffer fills up.
	sink := NewLogSink(nil, 1, 2)

	if !sink.Emit(models.CategoryHelp, "one", testLocation()) {
		t.Error("first emit should fit in the buffer")
	}
	if !sink.Emit(models.CategoryHelp, "two", testLocation()) {
		t.Error("second emit should fit in the buffer")
	}
	if sink.Emit(models.CategoryHelp, "three", testLocation()) {
		t.Error("expected false once the delivery queue is full")
	}

	// Drain so Stop doesn't hang on buffered records.
	sink.Start(context.Background())
	sink.Stop()
}

func TestLogSink_PersistFailureDoesNotPropagate(t *testing.T) {
	repo := &mockRepo{fail: true}
	sink := NewLogSink(repo, 1, 4)
	sink.Start(context.Background())

	// The caller only sees enqueue success; the persist error stays inside
	// the delivery path.
	if ok := sink.Emit(models.CategoryMedical, "Medical emergency", testLocation()); !ok {
		t.Error("expected Emit to succeed even with a failing repository")
	}

	sink.Stop()
}

func TestLogSink_NilRepo(t *testing.T) {
	sink := NewLogSink(nil, 1, 4)
	sink.Start(context.Background())

	if ok := sink.Emit(models.CategoryFlood, "Flood emergency", testLocation()); !ok {
		t.Error("expected log-only sink to accept alerts")
	}

	sink.Stop()
}
