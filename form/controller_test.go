package form

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type activity struct {
	ID     uint
	Title  string
	Price  int
	Rating int
}

func activityConfig() Config[activity] {
	return Config[activity]{
		Defaults: map[string]any{
			"title":  "",
			"price":  0,
			"rating": 4,
		},
		ID: func(a activity) uint { return a.ID },
	}
}

func TestOpenCreateResetsToDefaults(t *testing.T) {
	c := NewController(activityConfig())

	c.OpenCreate()
	assert.Equal(t, OpenCreate, c.State())
	assert.Equal(t, "", c.Field("title"))
	assert.Equal(t, 0, c.Field("price"))
	assert.Equal(t, 4, c.Field("rating"))
}

func TestOpenEditFallsBackPerField(t *testing.T) {
	c := NewController(activityConfig())

	// rating is absent from the snapshot and must get its default.
	c.OpenEdit(7, map[string]any{
		"title": "Snorkeling",
		"price": 500000,
	})

	assert.Equal(t, OpenEdit, c.State())
	assert.Equal(t, "Snorkeling", c.Field("title"))
	assert.Equal(t, 500000, c.Field("price"))
	assert.Equal(t, 4, c.Field("rating"))
}

func TestOpenEditIgnoresNilValues(t *testing.T) {
	c := NewController(activityConfig())

	c.OpenEdit(7, map[string]any{
		"title": nil,
	})

	assert.Equal(t, "", c.Field("title"))
}

func TestUpdateFieldRequiresOpenForm(t *testing.T) {
	c := NewController(activityConfig())

	err := c.UpdateField("title", "x")
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestUpdateFieldCoercesNumerics(t *testing.T) {
	c := NewController(activityConfig())
	c.OpenCreate()

	require.NoError(t, c.UpdateField("price", "150000"))
	assert.Equal(t, 150000, c.Field("price"))

	require.NoError(t, c.UpdateField("price", "not a number"))
	assert.Equal(t, 0, c.Field("price"))

	require.NoError(t, c.UpdateField("title", "123"))
	assert.Equal(t, "123", c.Field("title"))
}

func TestSubmitCreateAppendsAndCloses(t *testing.T) {
	c := NewController(activityConfig())
	c.SetSource([]activity{{ID: 1, Title: "Old"}})

	c.OpenCreate()
	require.NoError(t, c.UpdateField("title", "New"))

	err := c.Submit(
		func(fields map[string]any) (activity, error) {
			return activity{ID: 2, Title: fields["title"].(string)}, nil
		},
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, Closed, c.State())
	source := c.Source()
	require.Len(t, source, 2)
	assert.Equal(t, "New", source[1].Title)
}

func TestSubmitEditReplacesById(t *testing.T) {
	c := NewController(activityConfig())
	c.SetSource([]activity{{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}, {ID: 3, Title: "Three"}})

	c.OpenEdit(2, map[string]any{"title": "Two"})
	require.NoError(t, c.UpdateField("title", "Two edited"))

	err := c.Submit(
		nil,
		func(id uint, fields map[string]any) (activity, error) {
			return activity{ID: id, Title: fields["title"].(string)}, nil
		},
	)
	require.NoError(t, err)

	source := c.Source()
	require.Len(t, source, 3)
	assert.Equal(t, "One", source[0].Title)
	assert.Equal(t, "Two edited", source[1].Title)
	assert.Equal(t, "Three", source[2].Title)
}

func TestSubmitFailureReopensForm(t *testing.T) {
	c := NewController(activityConfig())
	c.OpenEdit(2, map[string]any{"title": "Two"})

	boom := errors.New("boom")
	err := c.Submit(
		nil,
		func(uint, map[string]any) (activity, error) {
			return activity{}, boom
		},
	)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, OpenEdit, c.State())
	assert.Equal(t, "Two", c.Field("title"))
}

func TestSubmitWhenClosed(t *testing.T) {
	c := NewController(activityConfig())
	err := c.Submit(nil, nil)
	assert.ErrorIs(t, err, ErrNotOpen)
}

func TestAfterMutateSeesNewSource(t *testing.T) {
	var seen int
	cfg := activityConfig()
	cfg.AfterMutate = func(source []activity) { seen = len(source) }

	c := NewController(cfg)
	c.OpenCreate()
	require.NoError(t, c.Submit(
		func(map[string]any) (activity, error) { return activity{ID: 1}, nil },
		nil,
	))
	assert.Equal(t, 1, seen)
}

func TestDeleteRequiresMatchingConfirmation(t *testing.T) {
	c := NewController(activityConfig())
	c.SetSource([]activity{{ID: 1}, {ID: 2}})

	err := c.ConfirmDelete(1, func(uint) error { return nil })
	assert.ErrorIs(t, err, ErrNothingPendingDelete)

	c.RequestDelete(1)
	err = c.ConfirmDelete(2, func(uint) error { return nil })
	assert.ErrorIs(t, err, ErrDeleteNotConfirmed)
	assert.Len(t, c.Source(), 2)
}

func TestConfirmDeleteRemovesExactlyOne(t *testing.T) {
	c := NewController(activityConfig())
	c.SetSource([]activity{{ID: 1}, {ID: 2}, {ID: 3}})

	c.RequestDelete(2)
	var deleted uint
	err := c.ConfirmDelete(2, func(id uint) error {
		deleted = id
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint(2), deleted)

	source := c.Source()
	require.Len(t, source, 2)
	assert.Equal(t, uint(1), source[0].ID)
	assert.Equal(t, uint(3), source[1].ID)
}

func TestConfirmDeleteFailureKeepsSource(t *testing.T) {
	c := NewController(activityConfig())
	c.SetSource([]activity{{ID: 1}})

	c.RequestDelete(1)
	boom := errors.New("boom")
	err := c.ConfirmDelete(1, func(uint) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Len(t, c.Source(), 1)
}

func TestCancelDiscardsEverything(t *testing.T) {
	c := NewController(activityConfig())
	c.OpenEdit(1, map[string]any{"title": "x"})
	c.RequestDelete(1)

	c.Cancel()
	assert.Equal(t, Closed, c.State())
	assert.Nil(t, c.Field("title"))

	err := c.ConfirmDelete(1, func(uint) error { return nil })
	assert.ErrorIs(t, err, ErrNothingPendingDelete)
}

func TestIsNumericField(t *testing.T) {
	assert.True(t, IsNumericField("price"))
	assert.True(t, IsNumericField("price_discount"))
	assert.True(t, IsNumericField("minimum_claim_price"))
	assert.True(t, IsNumericField("rating"))
	assert.True(t, IsNumericField("total_reviews"))
	assert.False(t, IsNumericField("title"))
	assert.False(t, IsNumericField("description"))
}

func TestCoerceValue(t *testing.T) {
	assert.Equal(t, 42, CoerceValue("price", 42))
	assert.Equal(t, 42, CoerceValue("price", int64(42)))
	assert.Equal(t, 42, CoerceValue("price", 42.9))
	assert.Equal(t, 42, CoerceValue("price", " 42 "))
	assert.Equal(t, 0, CoerceValue("price", "abc"))
	assert.Equal(t, 0, CoerceValue("price", nil))
	assert.Equal(t, "abc", CoerceValue("title", "abc"))
}
