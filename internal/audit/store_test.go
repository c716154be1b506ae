package audit

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matthewtax/ngtax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	result := &domain.TaxResult{TaxType: domain.CategoryCIT, TotalTax: decimal.NewFromInt(1525000)}
	schedule := &domain.PaymentSchedule{
		TotalAmount:      decimal.NewFromInt(1525000),
		DueDate:          time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		InstallmentCount: 4,
	}

	record := NewRecord(result, schedule)

	assert.True(t, strings.HasPrefix(record.ID, "PS-"))
	assert.Equal(t, "CIT", record.TaxType)
	assert.Equal(t, "₦1,525,000", record.TotalAmount)
	assert.Equal(t, "2026-03-31", record.DueDate)
	assert.Equal(t, domain.StatusPending, record.Status)
	assert.Equal(t, 4, record.Installments)
}

func TestNewRecord_UniqueIDs(t *testing.T) {
	result := &domain.TaxResult{TaxType: domain.CategoryCGT, TotalTax: decimal.NewFromInt(100)}
	schedule := &domain.PaymentSchedule{TotalAmount: decimal.NewFromInt(100), DueDate: time.Now(), InstallmentCount: 1}

	first := NewRecord(result, schedule)
	second := NewRecord(result, schedule)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestStore_PutGet(t *testing.T) {
	store := NewStore()
	record := domain.ScheduleRecord{ID: "PS-1", TaxType: "PAYE", Status: domain.StatusPending}

	store.Put(record)

	got, ok := store.Get("PS-1")
	require.True(t, ok)
	assert.Equal(t, record, got)

	_, ok = store.Get("PS-2")
	assert.False(t, ok)
}

func TestStore_UpdateStatus(t *testing.T) {
	store := NewStore()
	store.Put(domain.ScheduleRecord{ID: "PS-1", Status: domain.StatusPending})

	require.True(t, store.UpdateStatus("PS-1", domain.StatusVerified))

	got, _ := store.Get("PS-1")
	assert.Equal(t, domain.StatusVerified, got.Status)

	assert.False(t, store.UpdateStatus("missing", domain.StatusFailed))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			store.Put(domain.ScheduleRecord{ID: "PS-shared", Status: domain.StatusPending})
		}()
		go func() {
			defer wg.Done()
			store.Get("PS-shared")
		}()
	}
	wg.Wait()

	_, ok := store.Get("PS-shared")
	assert.True(t, ok)
}
