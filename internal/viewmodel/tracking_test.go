package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCarrier(t *testing.T) {
	ups := ResolveCarrier("1Z999AA10123456784")
	assert.Equal(t, CarrierUPS, ups.Carrier)
	assert.Equal(t, "1Z999AA10123456784", ups.Token)
	assert.Equal(t, "https://www.ups.com/track?tracknum=1Z999AA10123456784", ups.URL)
	assert.True(t, ups.Linked())

	upsNote := ResolveCarrier("1Z999AA1 second box")
	assert.Equal(t, "1Z999AA1", upsNote.Token)
	assert.Equal(t, "1Z999AA1 second box", upsNote.TrackingNumber)

	fedex := ResolveCarrier("7812345678")
	assert.Equal(t, CarrierFedEx, fedex.Carrier)
	assert.Equal(t, "7812345678", fedex.Token)
	assert.Equal(t, "https://www.fedex.com/apps/fedextrack/?tracknumbers=7812345678", fedex.URL)

	unknown := ResolveCarrier("ABC123")
	assert.Equal(t, CarrierUnknown, unknown.Carrier)
	assert.False(t, unknown.Linked())
	assert.Empty(t, unknown.Token)

	assert.Equal(t, CarrierUnknown, ResolveCarrier("").Carrier)
}
