package service

import (
	"context"
	"errors"
	"testing"

	"github.com/vitalsync/backend/internal/models"
)

func newRecordFixture() (*summaryFixture, RecordService) {
	f := newSummaryFixture()
	records := NewRecordService(f.physical, f.mental, f.sleep, f.service)
	return f, records
}

func TestAddPhysical_StoresWellnessSnapshot(t *testing.T) {
	f, records := newRecordFixture()

	record, err := records.AddPhysical(context.Background(), &models.CreatePhysicalRequest{
		UserID:    1,
		HeartRate: ptrInt(72),
		Steps:     ptrInt(8500),
	})
	if err != nil {
		t.Fatalf("AddPhysical failed: %v", err)
	}
	if record.ID == 0 {
		t.Error("Expected a record ID")
	}
	if record.RecordedAt.IsZero() {
		t.Error("Expected a recorded_at timestamp")
	}

	if len(f.scores.snapshots) != 1 {
		t.Fatalf("Expected 1 wellness snapshot after the write, got %d", len(f.scores.snapshots))
	}
	if f.scores.snapshots[0].UserID != 1 {
		t.Errorf("Snapshot stored for wrong user: %d", f.scores.snapshots[0].UserID)
	}
}

func TestAddMental_SleepQualitySideRecord(t *testing.T) {
	f, records := newRecordFixture()

	_, err := records.AddMental(context.Background(), &models.CreateMentalRequest{
		UserID:       1,
		MoodScore:    ptrInt(7),
		StressLevel:  ptrInt(4),
		SleepQuality: ptrInt(8),
	})
	if err != nil {
		t.Fatalf("AddMental failed: %v", err)
	}

	if len(f.mental.records) != 1 {
		t.Fatalf("Expected 1 mental record, got %d", len(f.mental.records))
	}
	if len(f.sleep.records) != 1 {
		t.Fatalf("Expected a sleep record from sleep_quality, got %d", len(f.sleep.records))
	}
	side := f.sleep.records[0]
	if side.SleepQuality == nil || *side.SleepQuality != 8 {
		t.Errorf("Expected sleep quality 8 on side record, got %v", side.SleepQuality)
	}
	if side.SleepDurationHours != nil {
		t.Error("Side record must not carry a duration")
	}
}

func TestAddMental_NoSleepQualityNoSideRecord(t *testing.T) {
	f, records := newRecordFixture()

	_, err := records.AddMental(context.Background(), &models.CreateMentalRequest{
		UserID:    1,
		MoodScore: ptrInt(6),
	})
	if err != nil {
		t.Fatalf("AddMental failed: %v", err)
	}

	if len(f.sleep.records) != 0 {
		t.Errorf("Expected no sleep record, got %d", len(f.sleep.records))
	}
}

func TestAddSleep_StoresWellnessSnapshot(t *testing.T) {
	f, records := newRecordFixture()

	record, err := records.AddSleep(context.Background(), &models.CreateSleepRequest{
		UserID:             1,
		SleepDurationHours: ptrFloat(7.2),
		SleepQuality:       ptrInt(7),
	})
	if err != nil {
		t.Fatalf("AddSleep failed: %v", err)
	}
	if record.CreatedAt.IsZero() {
		t.Error("Expected a created_at timestamp")
	}
	if len(f.scores.snapshots) != 1 {
		t.Errorf("Expected 1 wellness snapshot, got %d", len(f.scores.snapshots))
	}
}

func TestGetPhysical_LimitsToTen(t *testing.T) {
	f, records := newRecordFixture()

	for i := 0; i < 15; i++ {
		if _, err := records.AddPhysical(context.Background(), &models.CreatePhysicalRequest{
			UserID: 1,
			Steps:  ptrInt(1000 * i),
		}); err != nil {
			t.Fatalf("AddPhysical %d failed: %v", i, err)
		}
	}
	got, err := records.GetPhysical(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetPhysical failed: %v", err)
	}
	if len(got) != 10 {
		t.Errorf("Expected 10 records, got %d", len(got))
	}
	if len(f.physical.records) != 15 {
		t.Errorf("Expected all 15 records stored, got %d", len(f.physical.records))
	}
}

func TestAddPhysical_WellnessStoreFailureDoesNotFailWrite(t *testing.T) {
	f, records := newRecordFixture()
	f.scores.err = errors.New("table locked")

	record, err := records.AddPhysical(context.Background(), &models.CreatePhysicalRequest{
		UserID: 1,
		Steps:  ptrInt(5000),
	})
	if err != nil {
		t.Fatalf("Expected record write to succeed despite wellness store failure, got %v", err)
	}
	if record == nil || record.ID == 0 {
		t.Error("Expected a created record")
	}
}
