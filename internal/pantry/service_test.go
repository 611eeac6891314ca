package pantry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitfeast/internal/catalog"
	"fitfeast/internal/database"
)

type fixture struct {
	svc     *Service
	catalog *catalog.Repository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "pantry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return fixture{
		svc:     NewService(NewRepository(db.SQL)),
		catalog: catalog.NewRepository(db.SQL),
	}
}

func (f fixture) ingredient(t *testing.T, name string) *catalog.Ingredient {
	t.Helper()
	ing, err := f.catalog.SaveIngredient(context.Background(), catalog.Ingredient{Name: name, Category: "Protein", ProteinPer100: 13})
	require.NoError(t, err)
	return ing
}

func TestAddIngredientMerges(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	egg := f.ingredient(t, "egg")

	first, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 5, Unit: "piece"})
	require.NoError(t, err)
	assert.Equal(t, 5.0, first.Quantity)
	assert.Equal(t, StatusAvailable, first.Status)
	assert.Equal(t, "egg", first.Ingredient.Name)

	second, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 10, Unit: "piece"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 15.0, second.Quantity)

	all, err := f.svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAddIngredientRestocksUsedEntry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	egg := f.ingredient(t, "egg")

	exp := time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC)
	e, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 5, Unit: "piece", ExpirationDate: &exp})
	require.NoError(t, err)
	require.NotNil(t, e.ExpirationDate)
	assert.True(t, exp.Equal(*e.ExpirationDate))

	_, err = f.svc.MarkAsUsed(ctx, e.ID)
	require.NoError(t, err)

	available, err := f.svc.ListAvailable(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, available)

	restocked, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 10, Unit: "piece"})
	require.NoError(t, err)
	assert.Equal(t, e.ID, restocked.ID)
	assert.Equal(t, 10.0, restocked.Quantity)
	assert.Equal(t, StatusAvailable, restocked.Status)
	assert.Nil(t, restocked.ExpirationDate)
}

func TestAddIngredientSeparatesOwners(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	egg := f.ingredient(t, "egg")

	_, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 1, Unit: "piece"})
	require.NoError(t, err)
	_, err = f.svc.AddIngredient(ctx, "user-2", egg.ID, AddRequest{Quantity: 2, Unit: "piece"})
	require.NoError(t, err)

	mine, err := f.svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, 1.0, mine[0].Quantity)
}

func TestAddIngredientRejectsInvalidInput(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	egg := f.ingredient(t, "egg")

	_, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 0, Unit: "piece"})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = f.svc.AddIngredient(ctx, "user-1", "no-such-ingredient", AddRequest{Quantity: 1, Unit: "piece"})
	assert.Error(t, err)
}

func TestMarkAsUsedTwice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	egg := f.ingredient(t, "egg")

	e, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 2, Unit: "piece"})
	require.NoError(t, err)

	used, err := f.svc.MarkAsUsed(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusUsed, used.Status)
	assert.Equal(t, 2.0, used.Quantity)

	_, err = f.svc.MarkAsUsed(ctx, e.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.svc.MarkAsUsed(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatesAndRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	egg := f.ingredient(t, "egg")

	e, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 2, Unit: "piece"})
	require.NoError(t, err)

	updated, err := f.svc.UpdateQuantity(ctx, e.ID, 6, "whites")
	require.NoError(t, err)
	assert.Equal(t, 6.0, updated.Quantity)
	assert.Equal(t, "whites", updated.Unit)

	_, err = f.svc.UpdateQuantity(ctx, e.ID, -1, "piece")
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	exp := time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC)
	updated, err = f.svc.UpdateExpiration(ctx, e.ID, &exp)
	require.NoError(t, err)
	require.NotNil(t, updated.ExpirationDate)
	assert.True(t, exp.Equal(*updated.ExpirationDate))

	updated, err = f.svc.UpdateExpiration(ctx, e.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, updated.ExpirationDate)

	require.NoError(t, f.svc.Remove(ctx, e.ID))
	_, err = f.svc.Get(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, f.svc.Remove(ctx, e.ID), ErrNotFound)
}

func TestExpirationStoredAsCalendarDate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	egg := f.ingredient(t, "egg")

	// Early May 1st east of UTC is still April 30th in UTC.
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	exp := time.Date(2030, time.May, 1, 1, 0, 0, 0, tokyo)
	e, err := f.svc.AddIngredient(ctx, "user-1", egg.ID, AddRequest{Quantity: 1, Unit: "piece", ExpirationDate: &exp})
	require.NoError(t, err)
	require.NotNil(t, e.ExpirationDate)
	assert.True(t, time.Date(2030, time.May, 1, 0, 0, 0, 0, time.UTC).Equal(*e.ExpirationDate), "got %v", *e.ExpirationDate)

	updated, err := f.svc.UpdateExpiration(ctx, e.ID, &exp)
	require.NoError(t, err)
	require.NotNil(t, updated.ExpirationDate)
	assert.Equal(t, 2030, updated.ExpirationDate.Year())
	assert.Equal(t, time.May, updated.ExpirationDate.Month())
	assert.Equal(t, 1, updated.ExpirationDate.Day())
}
