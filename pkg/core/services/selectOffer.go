package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jakechorley/skip-hire/pkg/core/model"
)

var (
	ErrNoSelection   = errors.New("no skip selected")
	ErrOfferNotFound = errors.New("skip offer not found")
)

// ToggleSelection returns the new selected offer ID after the user picks id.
// Picking the currently selected offer clears the selection.
func ToggleSelection(current, id string) string {
	if current == id {
		return ""
	}
	return id
}

// FindOffer looks up an offer by ID
func FindOffer(skipOffers []model.SkipOffer, id string) (model.SkipOffer, bool) {
	for _, o := range skipOffers {
		if o.ID == id {
			return o, true
		}
	}
	return model.SkipOffer{}, false
}

// ConfirmSelection builds the summary for continuing with the selected offer
func ConfirmSelection(skipOffers []model.SkipOffer, selectedID string) (*model.SelectionSummary, error) {
	if selectedID == "" {
		return nil, ErrNoSelection
	}

	offer, ok := FindOffer(skipOffers, selectedID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrOfferNotFound, selectedID)
	}

	return &model.SelectionSummary{
		Reference: uuid.New().String(),
		Offer:     offer,
		Message:   SelectionMessage(offer),
	}, nil
}

// SelectionMessage describes the chosen offer, e.g. "You selected: 4 Yard Skip for £198/week"
func SelectionMessage(offer model.SkipOffer) string {
	return fmt.Sprintf("You selected: %s Yard Skip for £%d/%s", offer.Size, offer.Price, offer.Period)
}
