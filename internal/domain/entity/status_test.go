package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_IsActive(t *testing.T) {
	assert.True(t, StatusPlanned.IsActive())
	assert.True(t, StatusInProgress.IsActive())

	// Completed and cancelled deliveries neither count toward vehicle
	// capacity nor block deletion of their courier, vehicle or products.
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestDeliveryStatus_IsValid(t *testing.T) {
	for _, status := range []DeliveryStatus{StatusPlanned, StatusInProgress, StatusCompleted, StatusCancelled} {
		assert.True(t, status.IsValid(), "expected %s to be valid", status)
	}

	assert.False(t, DeliveryStatus("parked").IsValid())
}
