package table

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendor-admin/internal/models"
)

func TestOpenEditCapturesCurrentValue(t *testing.T) {
	s := OpenEdit(7, FieldStatus, "active")
	assert.True(t, s.IsOpen())
	assert.Equal(t, "active", s.Value)
	assert.Equal(t, "active", s.Original)
	assert.Equal(t, 7, s.VendorID)
}

func TestSaveUnchangedValueClosesWithoutCall(t *testing.T) {
	s := OpenEdit(7, FieldStatus, "active")
	s.SetValue("active")
	assert.False(t, s.BeginSave(), "unchanged value must not reach the network")
	assert.False(t, s.IsOpen())
}

func TestSaveEmptyValueClosesWithoutCall(t *testing.T) {
	s := OpenEdit(7, FieldOwner, "Jane Doe")
	s.SetValue("   ")
	assert.False(t, s.BeginSave())
	assert.False(t, s.IsOpen())
}

func TestSaveChangedValue(t *testing.T) {
	s := OpenEdit(7, FieldStatus, "active")
	s.SetValue("inactive")
	require.True(t, s.BeginSave())
	assert.True(t, s.Saving)

	assert.True(t, s.FinishSave(nil))
	assert.False(t, s.IsOpen())
	assert.False(t, s.Saving)
}

func TestSaveFailureKeepsSessionOpen(t *testing.T) {
	s := OpenEdit(7, FieldDepartment, "Sales")
	s.SetValue("Engineering")
	require.True(t, s.BeginSave())

	assert.False(t, s.FinishSave(errors.New("503")))
	assert.True(t, s.IsOpen())
	assert.Equal(t, ErrUpdateFailed, s.Err)
	assert.Equal(t, "Engineering", s.Value, "entered value stays for retry")

	// a retry can then succeed
	require.True(t, s.BeginSave())
	assert.True(t, s.FinishSave(nil))
	assert.False(t, s.IsOpen())
}

func TestCloseClearsTransientState(t *testing.T) {
	s := OpenEdit(7, FieldOwner, "Jane")
	s.SetValue("John")
	s.Err = ErrUpdateFailed
	s.Close()
	assert.False(t, s.IsOpen())
	assert.Empty(t, s.Value)
	assert.Empty(t, s.Err)
}

func TestSetValueClearsError(t *testing.T) {
	s := OpenEdit(7, FieldOwner, "Jane")
	s.Err = ErrUpdateFailed
	s.SetValue("John")
	assert.Empty(t, s.Err)
}

func TestFieldUpdateBuildsPartialBody(t *testing.T) {
	upd := FieldStatus.Update("inactive")
	require.NotNil(t, upd.Status)
	assert.Equal(t, models.StatusInactive, *upd.Status)
	assert.Nil(t, upd.Owner)
	assert.Nil(t, upd.Department)

	upd = FieldOwner.Update("Jane Doe")
	require.NotNil(t, upd.Owner)
	assert.Equal(t, "Jane Doe", *upd.Owner)

	upd = FieldDepartment.Update("Engineering")
	require.NotNil(t, upd.Department)
	assert.Equal(t, "Engineering", *upd.Department)
}

func TestStatusFieldOptions(t *testing.T) {
	require.Len(t, FieldStatus.Options, 2)
	assert.Equal(t, "active", FieldStatus.Options[0].Value)
	assert.Equal(t, "inactive", FieldStatus.Options[1].Value)
	assert.Equal(t, FieldSelect, FieldStatus.Kind)
	assert.Equal(t, FieldText, FieldOwner.Kind)
}
