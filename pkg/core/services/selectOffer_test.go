package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/skip-hire/pkg/core/offers"
)

func TestToggleSelection(t *testing.T) {
	assert.Equal(t, "skip-4", ToggleSelection("", "skip-4"))
	assert.Equal(t, "skip-6", ToggleSelection("skip-4", "skip-6"))
	assert.Equal(t, "", ToggleSelection("skip-6", "skip-6"))
}

func TestFindOffer(t *testing.T) {
	skipOffers := offers.Fallback()

	offer, ok := FindOffer(skipOffers, "skip-12")
	require.True(t, ok)
	assert.Equal(t, "12", offer.Size)

	_, ok = FindOffer(skipOffers, "skip-99")
	assert.False(t, ok)
}

func TestConfirmSelection(t *testing.T) {
	summary, err := ConfirmSelection(offers.Fallback(), "skip-8")
	require.NoError(t, err)

	assert.Equal(t, "skip-8", summary.Offer.ID)
	assert.Equal(t, "You selected: 8 Yard Skip for £205/week", summary.Message)

	_, err = uuid.Parse(summary.Reference)
	assert.NoError(t, err)
}

func TestConfirmSelection_UniqueReferences(t *testing.T) {
	first, err := ConfirmSelection(offers.Fallback(), "skip-4")
	require.NoError(t, err)
	second, err := ConfirmSelection(offers.Fallback(), "skip-4")
	require.NoError(t, err)

	assert.NotEqual(t, first.Reference, second.Reference)
}

func TestConfirmSelection_NoSelection(t *testing.T) {
	_, err := ConfirmSelection(offers.Fallback(), "")
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestConfirmSelection_UnknownOffer(t *testing.T) {
	_, err := ConfirmSelection(offers.Fallback(), "skip-99")
	assert.ErrorIs(t, err, ErrOfferNotFound)
	assert.Contains(t, err.Error(), "skip-99")
}
