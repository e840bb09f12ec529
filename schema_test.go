package candbc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabase_GetMessage(t *testing.T) {
	db := motohawkDB()

	msg, ok := db.GetMessage("ExampleMessage")
	assert.True(t, ok)
	assert.Equal(t, uint32(0x1F0), msg.ID)

	_, ok = db.GetMessage("NoSuchMessage")
	assert.False(t, ok)
}

func TestDatabase_GetMessageByID(t *testing.T) {
	db := motohawkDB()

	msg, ok := db.GetMessageByID(0x1F0)
	assert.True(t, ok)
	assert.Equal(t, "ExampleMessage", msg.Name)

	_, ok = db.GetMessageByID(0xDEAD)
	assert.False(t, ok)
}

func TestMessageSpec_GetSignal(t *testing.T) {
	db := motohawkDB()
	msg, _ := db.GetMessage("ExampleMessage")

	sig, ok := msg.GetSignal("Temperature")
	assert.True(t, ok)
	assert.Equal(t, uint8(12), sig.Size)

	_, ok = msg.GetSignal("NoSuchSignal")
	assert.False(t, ok)
}
