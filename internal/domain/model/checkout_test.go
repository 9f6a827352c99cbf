package model_test

import (
	"testing"

	"app/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutState_AllowedTransitions(t *testing.T) {
	assert.True(t, model.CheckoutStateIdle.CanTransitionTo(model.CheckoutStateSubmitting))
	assert.True(t, model.CheckoutStateSubmitting.CanTransitionTo(model.CheckoutStateItemsSubmitting))
	assert.True(t, model.CheckoutStateSubmitting.CanTransitionTo(model.CheckoutStateIdle))
	assert.True(t, model.CheckoutStateItemsSubmitting.CanTransitionTo(model.CheckoutStatePlaced))
	assert.True(t, model.CheckoutStateItemsSubmitting.CanTransitionTo(model.CheckoutStateIdle))
	assert.True(t, model.CheckoutStatePlaced.CanTransitionTo(model.CheckoutStateDeleting))
	assert.True(t, model.CheckoutStateDeleting.CanTransitionTo(model.CheckoutStateIdle))
	assert.True(t, model.CheckoutStateDeleting.CanTransitionTo(model.CheckoutStatePlaced))
}

func TestCheckoutState_ForbiddenTransitions(t *testing.T) {
	//Placedから再送は不可（先に削除が要る）
	assert.False(t, model.CheckoutStatePlaced.CanTransitionTo(model.CheckoutStateSubmitting))
	//Idleからいきなり明細送信は不可
	assert.False(t, model.CheckoutStateIdle.CanTransitionTo(model.CheckoutStateItemsSubmitting))
	assert.False(t, model.CheckoutStateSubmitting.CanTransitionTo(model.CheckoutStatePlaced))
	assert.False(t, model.CheckoutStateIdle.CanTransitionTo(model.CheckoutStateDeleting))
}
