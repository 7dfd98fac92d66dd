package postgres

import (
	"sync"
	"testing"
	"time"

	"guardian/internal/domain/entity"
	"guardian/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestAlertModel_CoordinateColumns(t *testing.T) {
	s, err := schema.Parse(&model.AlertModel{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"Latitude", "Longitude"} {
		field := s.LookUpField(name)
		require.NotNil(t, field, name)
		assert.Equal(t, schema.DataType("double precision"), field.DataType, name)
	}
}

func TestAlertMapping_RoundTrip(t *testing.T) {
	accuracy := 4.5
	taipei := time.FixedZone("CST", 8*60*60)
	fixAt := time.Date(2026, 3, 14, 9, 26, 53, 589793000, time.UTC)
	raisedAt := fixAt.Add(2 * time.Second)

	alert := &entity.Alert{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Type:   entity.AlertTypeSOS,
		Location: entity.Location{
			Latitude:  25.033964123456789,
			Longitude: 121.564468987654321,
			Timestamp: fixAt,
			Accuracy:  &accuracy,
		},
		Timestamp:         raisedAt,
		Status:            entity.AlertStatusActive,
		ContactsNotified:  []uuid.UUID{uuid.New()},
		NotificationsSent: []*entity.NotificationLog{},
	}

	row := fromAlertDomain(alert)
	// The driver hands timestamptz back in the session zone.
	row.LocationTimestamp = row.LocationTimestamp.In(taipei)
	row.Timestamp = row.Timestamp.In(taipei)

	got := toAlertDomain(row)

	assert.Equal(t, alert.Location, got.Location)
	assert.Equal(t, alert.Timestamp, got.Timestamp)
	assert.Equal(t, alert.ContactsNotified, got.ContactsNotified)
	assert.Equal(t, alert.Status, got.Status)
}
