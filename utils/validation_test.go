package utils

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name          string  `form:"name" binding:"required,notblank"`
	Price         float64 `json:"price" binding:"gt=0"`
	StockQuantity int     `json:"stock_quantity" binding:"min=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=pending paid"`
}

func TestBindingMessage(t *testing.T) {
	RegisterValidators()

	err := binding.Validator.ValidateStruct(&sampleForm{Name: "   ", Price: 0, StockQuantity: -1, Status: "lost"})
	require.Error(t, err)
	assert.Equal(t,
		"name is required; price must be greater than 0; status must be one of: pending paid; stock_quantity must be at least 0",
		BindingMessage(err))

	assert.NoError(t, binding.Validator.ValidateStruct(&sampleForm{Name: "Tee", Price: 10}))
}

func TestBindingMessageOtherErrors(t *testing.T) {
	assert.Equal(t, "Invalid request body", BindingMessage(errors.New("unexpected EOF")))
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "stock_quantity", toSnake("StockQuantity"))
	assert.Equal(t, "id", toSnake("ID"))
	assert.Equal(t, "price", toSnake("price"))
}
