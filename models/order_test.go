package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/venkatakrishna06/restaurant-pos/models"
)

func TestItemsTotalSkipsCancelledLines(t *testing.T) {
	items := []models.OrderItem{
		{Quantity: 2, Price: 150, Status: models.ItemPlaced},
		{Quantity: 1, Price: 80, Status: models.ItemPreparing},
		{Quantity: 3, Price: 999, Status: models.ItemCancelled},
	}

	assert.Equal(t, 380.0, models.ItemsTotal(items))
}

func TestComputeTotalMatchesItemsTotal(t *testing.T) {
	order := models.Order{
		Items: []models.OrderItem{
			{Quantity: 4, Price: 25.5, Status: models.ItemServed},
		},
	}

	assert.Equal(t, 102.0, order.ComputeTotal())
	assert.Equal(t, models.ItemsTotal(order.Items), order.ComputeTotal())
}

func TestIsActive(t *testing.T) {
	active := []string{models.OrderPlaced, models.OrderPreparing, models.OrderServed}
	for _, status := range active {
		order := models.Order{Status: status}
		assert.True(t, order.IsActive(), status)
	}

	for _, status := range []string{models.OrderPaid, models.OrderCancelled} {
		order := models.Order{Status: status}
		assert.False(t, order.IsActive(), status)
	}
}

func TestPayableOnlyWhenServed(t *testing.T) {
	for _, status := range []string{models.OrderPlaced, models.OrderPreparing, models.OrderPaid, models.OrderCancelled} {
		order := models.Order{Status: status}
		assert.False(t, order.Payable(), status)
	}

	order := models.Order{Status: models.OrderServed}
	assert.True(t, order.Payable())
}

func TestOrderItemEditable(t *testing.T) {
	placed := models.OrderItem{Status: models.ItemPlaced}
	preparing := models.OrderItem{Status: models.ItemPreparing}
	served := models.OrderItem{Status: models.ItemServed}
	cancelled := models.OrderItem{Status: models.ItemCancelled}

	assert.True(t, placed.Editable())
	assert.True(t, preparing.Editable())
	assert.False(t, served.Editable())
	assert.False(t, cancelled.Editable())
}
