package devices

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBroken = errors.New("broken")

type testDevice struct {
	id      ID
	fail    bool
	started int
	stopped int
}

func (d *testDevice) ID() ID { return d.id }

func (d *testDevice) Startup() error {
	d.started++
	if d.fail {
		return errBroken
	}
	return nil
}

func (d *testDevice) Shutdown() error {
	d.stopped++
	if d.fail {
		return errBroken
	}
	return nil
}

func TestID(t *testing.T) {
	id := NewID(Vendor, ModelKeypad)
	assert.Equal(t, Vendor, id.Vendor())
	assert.Equal(t, ModelKeypad, id.Model())
	assert.Equal(t, "00c8:0003", id.String())
}

func TestMapConnect(t *testing.T) {
	var dm Map
	a := &testDevice{id: NewID(Vendor, 1)}
	b := &testDevice{id: NewID(Vendor, 2)}

	assert.True(t, dm.Connect(a))
	assert.True(t, dm.Connect(b))
	assert.False(t, dm.Connect(&testDevice{id: a.id}))
	assert.Equal(t, 1, dm.Find(b.id))
	assert.Equal(t, -1, dm.Find(NewID(Vendor, 9)))
}

func TestMapStartupShutdown(t *testing.T) {
	ok := &testDevice{id: NewID(Vendor, 1)}
	bad := &testDevice{id: NewID(Vendor, 2), fail: true}
	dm := Map{ok, bad}

	err := dm.Startup()
	require.Error(t, err)
	assert.ErrorIs(t, err, errBroken)
	assert.Contains(t, err.Error(), bad.id.String())
	assert.Equal(t, 1, ok.started)
	assert.Equal(t, 1, bad.started)

	require.Error(t, dm.Shutdown())
	assert.Equal(t, 1, ok.stopped)

	assert.NoError(t, Map{ok}.Startup())
	assert.NoError(t, Map{ok}.Shutdown())
}
