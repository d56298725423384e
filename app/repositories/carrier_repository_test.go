package repositories

import (
	"context"
	"testing"

	"github.com/Rakhulsr/go-logistics/app/models"
	"github.com/Rakhulsr/go-logistics/app/services/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarrierRepository_Catalog(t *testing.T) {
	db := setupSeededDB(t)
	repo := NewCarrierRepository(db)
	ctx := context.Background()

	catalog, err := repo.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 4)

	ids := make([]string, 0, len(catalog))
	for _, c := range catalog {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"bluedart", "delhivery", "ecom_express", "gati"}, ids)

	bluedart := catalog[0]
	assert.Equal(t, "BlueDart", bluedart.Name)
	assert.Equal(t, []rating.Segment{rating.SegmentD2C, rating.SegmentB2B}, bluedart.Segments)
	assert.Empty(t, bluedart.Zones)
	assert.Equal(t, "500", bluedart.MaxWeightKg.String())
	assert.Equal(t, "12", bluedart.FuelSurchargePercent.String())

	assert.Equal(t, []rating.Zone{"A", "B", "C", "D", "E"}, catalog[3].Zones)
}

func TestCarrierRepository_InactiveCarriersLeaveCatalog(t *testing.T) {
	db := setupSeededDB(t)
	repo := NewCarrierRepository(db)
	ctx := context.Background()

	require.NoError(t, db.Model(&models.Carrier{}).Where("code = ?", "gati").Update("active", false).Error)

	catalog, err := repo.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, 3)
	for _, c := range catalog {
		assert.NotEqual(t, "gati", c.ID)
	}
}

func TestCarrierRepository_GetByCode(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCarrierRepository(db)
	ctx := context.Background()

	carrier := &models.Carrier{Code: "xpress", Name: "Xpress", Segments: "D2C", Active: true}
	require.NoError(t, repo.Create(ctx, carrier))
	assert.NotEmpty(t, carrier.ID)

	found, err := repo.GetByCode(ctx, "xpress")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, carrier.ID, found.ID)

	missing, err := repo.GetByCode(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
